// Package manifest loads schema manifests — external declarations of structs
// and enums — and compiles them into decode plans and enum schemas. Two
// manifest syntaxes are supported: YAML and KDL itself.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kdlschema "github.com/reoring/kdlschema"
)

// File is a parsed schema manifest: the ordered struct and enum declarations
// of one document set.
type File struct {
	Structs []kdlschema.StructDecl
	Enums   []kdlschema.EnumDecl
}

// Compiled bundles every artifact produced from one manifest.
type Compiled struct {
	Plans []*kdlschema.DecodePlan
	Enums []*kdlschema.EnumSchema
}

// Load reads and parses a manifest file, dispatching on its extension
// (.yaml/.yml or .kdl).
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: reading %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data, path)
	case ".kdl":
		return ParseKDL(strings.NewReader(string(data)), path)
	}
	return nil, fmt.Errorf("manifest: %s: unsupported extension (want .yaml, .yml or .kdl)", path)
}

// Compile compiles every declaration in the manifest. Declarations compile
// independently, so diagnostics from all of them are aggregated rather than
// stopping at the first failing type.
func Compile(f *File) (*Compiled, error) {
	out := &Compiled{}
	var ds kdlschema.Diagnostics
	for _, sd := range f.Structs {
		plan, err := kdlschema.CompileStruct(sd)
		if err != nil {
			if more, ok := kdlschema.AsDiagnostics(err); ok {
				ds = kdlschema.AppendDiagnostics(ds, more...)
				continue
			}
			return nil, err
		}
		out.Plans = append(out.Plans, plan)
	}
	for _, ed := range f.Enums {
		es, err := kdlschema.CompileEnum(ed)
		if err != nil {
			if more, ok := kdlschema.AsDiagnostics(err); ok {
				ds = kdlschema.AppendDiagnostics(ds, more...)
				continue
			}
			return nil, err
		}
		out.Enums = append(out.Enums, es)
	}
	if len(ds) > 0 {
		return nil, ds
	}
	return out, nil
}

// invalidRole builds the diagnostic for a role string outside the closed
// vocabulary, located at the field declaration.
func invalidRole(role, field string, span kdlschema.Span) kdlschema.Diagnostic {
	msg := fmt.Sprintf("unknown role %q for field %q (expected argument, arguments, property, properties, or children)", role, field)
	return kdlschema.Diagnostic{
		Code:    kdlschema.CodeInvalidRole,
		Message: msg,
		Labels:  []kdlschema.Label{{Message: msg, Span: span}},
	}
}

// parseErr builds a single-location parse diagnostic.
func parseErr(msg string, span kdlschema.Span) kdlschema.Diagnostic {
	return kdlschema.Diagnostic{
		Code:    kdlschema.CodeParseError,
		Message: msg,
		Labels:  []kdlschema.Label{{Message: msg, Span: span}},
	}
}
