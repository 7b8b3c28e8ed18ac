package gen

// Package gen renders Go source from compiled plans and enum schemas. This
// package is internal; the CLI is its only consumer.

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"

	kdlschema "github.com/reoring/kdlschema"
)

// File describes one generated output file.
type File struct {
	Package string
	Plans   []*kdlschema.DecodePlan
	Enums   []*kdlschema.EnumSchema
}

// RenderFile emits a Go source file containing a decode-plan value per struct
// and a tag-matcher function per enum, formatted with go/format. Output is
// deterministic: declarations appear in input order, plan fields in a fixed
// order.
func RenderFile(f File) ([]byte, error) {
	pkg := f.Package
	if pkg == "" {
		pkg = "main"
	}
	b := &bytes.Buffer{}
	fmt.Fprintf(b, "// Code generated by kdlschema. DO NOT EDIT.\n\n")
	fmt.Fprintf(b, "package %s\n\n", pkg)
	if len(f.Plans) > 0 {
		fmt.Fprintf(b, "import kdlschema %q\n\n", "github.com/reoring/kdlschema")
	}
	for _, p := range f.Plans {
		writePlan(b, p)
	}
	for _, e := range f.Enums {
		writeEnumMatcher(b, e)
	}
	src, err := format.Source(b.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: formatting output: %w", err)
	}
	return src, nil
}

// writePlan emits a package-level DecodePlan composite literal for one struct.
func writePlan(b *bytes.Buffer, p *kdlschema.DecodePlan) {
	name := lowerFirst(p.Name) + "DecodePlan"
	fmt.Fprintf(b, "// %s drives node decoding for %s.\n", name, p.Name)
	fmt.Fprintf(b, "var %s = kdlschema.DecodePlan{\n", name)
	fmt.Fprintf(b, "\tName: %q,\n", p.Name)
	if len(p.Arguments) > 0 {
		fmt.Fprintf(b, "\tArguments: []kdlschema.ArgumentSpec{\n")
		for _, a := range p.Arguments {
			fmt.Fprintf(b, "\t\t{Field: %q, Optional: %v},\n", a.Field, a.Optional)
		}
		fmt.Fprintf(b, "\t},\n")
	}
	if p.VarArguments != nil {
		fmt.Fprintf(b, "\tVarArguments: &kdlschema.FieldRef{Field: %q},\n", p.VarArguments.Field)
	}
	if len(p.Properties) > 0 {
		fmt.Fprintf(b, "\tProperties: []kdlschema.PropertySpec{\n")
		for _, pr := range p.Properties {
			fmt.Fprintf(b, "\t\t{Name: %q, Optional: %v},\n", pr.Name, pr.Optional)
		}
		fmt.Fprintf(b, "\t},\n")
	}
	if p.VarProperties != nil {
		fmt.Fprintf(b, "\tVarProperties: &kdlschema.FieldRef{Field: %q},\n", p.VarProperties.Field)
	}
	if p.Children != nil {
		fmt.Fprintf(b, "\tChildren: &kdlschema.FieldRef{Field: %q},\n", p.Children.Field)
	}
	if p.ChildrenOnly {
		fmt.Fprintf(b, "\tChildrenOnly: true,\n")
	}
	if len(p.Extra) > 0 {
		fmt.Fprintf(b, "\tExtra: []kdlschema.ExtraField{\n")
		for _, x := range p.Extra {
			fmt.Fprintf(b, "\t\t{Field: %q},\n", x.Field)
		}
		fmt.Fprintf(b, "\t},\n")
	}
	fmt.Fprintf(b, "}\n\n")
}

// writeEnumMatcher emits the compiled string-tag dispatch for one enum. The
// switch preserves declaration order semantics because tags are unique per
// case; a shadowed duplicate tag would already be unreachable in the schema.
func writeEnumMatcher(b *bytes.Buffer, e *kdlschema.EnumSchema) {
	name := "match" + upperFirst(e.Name)
	fmt.Fprintf(b, "// %s maps a document string tag to the %s variant identifier.\n", name, e.Name)
	fmt.Fprintf(b, "func %s(tag string) (string, bool) {\n", name)
	fmt.Fprintf(b, "\tswitch tag {\n")
	seen := make(map[string]bool, len(e.Variants))
	for _, v := range e.Variants {
		if seen[v.Tag] {
			continue
		}
		seen[v.Tag] = true
		fmt.Fprintf(b, "\tcase %q:\n\t\treturn %q, true\n", v.Tag, v.Ident)
	}
	fmt.Fprintf(b, "\t}\n\treturn \"\", false\n}\n\n")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
