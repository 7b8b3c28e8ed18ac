package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	kdlschema "github.com/reoring/kdlschema"
	"gopkg.in/yaml.v3"
)

// YAML manifest shape:
//
//	structs:
//	  - name: Plugin
//	    fields:
//	      - name: name
//	        role: argument
//	      - name: options
//	        role: properties
//	enums:
//	  - name: Mode
//	    variants: [ReadOnly, ReadWrite]
//
// Multi-document streams are accepted; declarations accumulate in order.

type yamlDoc struct {
	Structs []yamlStruct `yaml:"structs"`
	Enums   []yamlEnum   `yaml:"enums"`
}

type yamlStruct struct {
	Name   string      `yaml:"name"`
	Fields []yamlField `yaml:"fields"`

	line, col int
}

func (s *yamlStruct) UnmarshalYAML(n *yaml.Node) error {
	type raw yamlStruct
	var r raw
	if err := n.Decode(&r); err != nil {
		return err
	}
	*s = yamlStruct(r)
	s.line, s.col = n.Line, n.Column
	return nil
}

type yamlField struct {
	Name     string `yaml:"name"`
	Role     string `yaml:"role"`
	Optional bool   `yaml:"optional"`

	line, col int
}

func (f *yamlField) UnmarshalYAML(n *yaml.Node) error {
	type raw yamlField
	var r raw
	if err := n.Decode(&r); err != nil {
		return err
	}
	*f = yamlField(r)
	f.line, f.col = n.Line, n.Column
	return nil
}

type yamlEnum struct {
	Name     string        `yaml:"name"`
	Variants []yamlVariant `yaml:"variants"`

	line, col int
}

func (e *yamlEnum) UnmarshalYAML(n *yaml.Node) error {
	type raw yamlEnum
	var r raw
	if err := n.Decode(&r); err != nil {
		return err
	}
	*e = yamlEnum(r)
	e.line, e.col = n.Line, n.Column
	return nil
}

// yamlVariant accepts either a bare string ("ReadOnly") or a mapping with an
// explicit field count ({name: Open, fields: 2}) for declaring non-unit shapes.
type yamlVariant struct {
	Name   string `yaml:"name"`
	Fields int    `yaml:"fields"`

	line, col int
}

func (v *yamlVariant) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		v.Name = n.Value
		v.line, v.col = n.Line, n.Column
		return nil
	}
	type raw yamlVariant
	var r raw
	if err := n.Decode(&r); err != nil {
		return err
	}
	*v = yamlVariant(r)
	v.line, v.col = n.Line, n.Column
	return nil
}

// ParseYAML parses a (possibly multi-document) YAML manifest. Role vocabulary
// violations are reported as Diagnostics with the field's source span.
func ParseYAML(data []byte, filename string) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var out File
	var ds kdlschema.Diagnostics
	for {
		var doc yamlDoc
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("manifest: parsing %s: %w", filename, err)
		}
		for _, s := range doc.Structs {
			sd := kdlschema.StructDecl{Name: s.Name, Span: yamlSpan(filename, s.line, s.col)}
			for _, f := range s.Fields {
				span := yamlSpan(filename, f.line, f.col)
				role, ok := kdlschema.ParseRole(f.Role)
				if !ok {
					ds = kdlschema.AppendDiagnostics(ds, invalidRole(f.Role, f.Name, span))
					continue
				}
				sd.Fields = append(sd.Fields, kdlschema.FieldDecl{
					Name:     f.Name,
					Optional: f.Optional,
					Role:     role,
					Span:     span,
				})
			}
			out.Structs = append(out.Structs, sd)
		}
		for _, e := range doc.Enums {
			ed := kdlschema.EnumDecl{Name: e.Name, Span: yamlSpan(filename, e.line, e.col)}
			for _, v := range e.Variants {
				ed.Variants = append(ed.Variants, kdlschema.VariantDecl{
					Name:   v.Name,
					Fields: v.Fields,
					Span:   yamlSpan(filename, v.line, v.col),
				})
			}
			out.Enums = append(out.Enums, ed)
		}
	}
	if len(ds) > 0 {
		return nil, ds
	}
	return &out, nil
}

func yamlSpan(file string, line, col int) kdlschema.Span {
	return kdlschema.Span{File: file, Line: line, Col: col}
}
