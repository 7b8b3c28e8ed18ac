package manifest_test

import (
	"strings"
	"testing"

	kdlschema "github.com/reoring/kdlschema"
	"github.com/reoring/kdlschema/manifest"
)

const sampleKDL = `
struct "Plugin" {
    field "name" role="argument"
    field "url" role="argument" optional=true
    field "options" role="properties"
    field "cache"
}
enum "Mode" {
    variant "ReadOnly"
    variant "ReadWrite"
}
`

func TestParseKDL_Declarations(t *testing.T) {
	f, err := manifest.ParseKDL(strings.NewReader(sampleKDL), "schema.kdl")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(f.Structs) != 1 || len(f.Enums) != 1 {
		t.Fatalf("unexpected declarations: %+v", f)
	}
	s := f.Structs[0]
	if s.Name != "Plugin" || len(s.Fields) != 4 {
		t.Fatalf("unexpected struct: %+v", s)
	}
	if s.Fields[1].Role != kdlschema.RoleArgument || !s.Fields[1].Optional {
		t.Fatalf("optional argument lost: %+v", s.Fields[1])
	}
	if s.Fields[2].Role != kdlschema.RoleProperties {
		t.Fatalf("unexpected role: %+v", s.Fields[2])
	}
	if s.Fields[3].Role != kdlschema.RoleNone {
		t.Fatalf("role-less field must be extra: %+v", s.Fields[3])
	}
	if s.Span.File != "schema.kdl" {
		t.Fatalf("missing filename span: %+v", s.Span)
	}
	e := f.Enums[0]
	if e.Name != "Mode" || len(e.Variants) != 2 || e.Variants[1].Name != "ReadWrite" {
		t.Fatalf("unexpected enum: %+v", e)
	}
}

func TestParseKDL_NonUnitVariant(t *testing.T) {
	src := "enum \"Shape\" {\n    variant \"Good\"\n    variant \"Bad\" fields=2\n}\n"
	f, err := manifest.ParseKDL(strings.NewReader(src), "schema.kdl")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	vs := f.Enums[0].Variants
	if len(vs) != 2 || vs[1].Fields != 2 {
		t.Fatalf("unexpected variants: %+v", vs)
	}
	_, err = manifest.Compile(f)
	ds, ok := kdlschema.AsDiagnostics(err)
	if !ok || len(ds) != 1 || ds[0].Code != kdlschema.CodeInvalidVariantShape {
		t.Fatalf("expected invalid_variant_shape, got %v", err)
	}
}

func TestParseKDL_UnknownRole(t *testing.T) {
	src := "struct \"Bad\" {\n    field \"x\" role=\"child\"\n}\n"
	_, err := manifest.ParseKDL(strings.NewReader(src), "schema.kdl")
	ds, ok := kdlschema.AsDiagnostics(err)
	if !ok || len(ds) != 1 || ds[0].Code != kdlschema.CodeInvalidRole {
		t.Fatalf("expected invalid_role diagnostic, got %v", err)
	}
}

func TestParseKDL_UnknownTopLevelNode(t *testing.T) {
	src := "table \"Nope\"\n"
	_, err := manifest.ParseKDL(strings.NewReader(src), "schema.kdl")
	ds, ok := kdlschema.AsDiagnostics(err)
	if !ok || len(ds) != 1 || ds[0].Code != kdlschema.CodeParseError {
		t.Fatalf("expected parse_error diagnostic, got %v", err)
	}
	if !strings.Contains(ds[0].Message, `unknown top-level node "table"`) {
		t.Fatalf("unexpected message: %q", ds[0].Message)
	}
}

func TestParseKDL_RoleConflictEndToEnd(t *testing.T) {
	src := "struct \"Node\" {\n    field \"a\" role=\"arguments\"\n    field \"b\" role=\"arguments\"\n}\n"
	f, err := manifest.ParseKDL(strings.NewReader(src), "schema.kdl")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = manifest.Compile(f)
	ds, ok := kdlschema.AsDiagnostics(err)
	if !ok || len(ds) != 1 || ds[0].Code != kdlschema.CodeRoleConflict {
		t.Fatalf("expected role_conflict, got %v", err)
	}
	if ds[0].Message != "only single `arguments` allowed" {
		t.Fatalf("unexpected message: %q", ds[0].Message)
	}
}
