package gen

import (
	"strings"
	"testing"

	kdlschema "github.com/reoring/kdlschema"
)

func TestRenderFile_PlanLiteral(t *testing.T) {
	plan, err := kdlschema.CompileStruct(kdlschema.StructDecl{
		Name: "Plugin",
		Fields: []kdlschema.FieldDecl{
			{Name: "name", Role: kdlschema.RoleArgument},
			{Name: "url", Role: kdlschema.RoleArgument, Optional: true},
			{Name: "options", Role: kdlschema.RoleProperties},
			{Name: "cache", Role: kdlschema.RoleNone},
		},
	})
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	out, err := RenderFile(File{Package: "foo", Plans: []*kdlschema.DecodePlan{plan}})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	code := string(out)
	if !strings.Contains(code, "package foo") {
		t.Fatalf("missing package clause:\n%s", code)
	}
	if !strings.Contains(code, "pluginDecodePlan") {
		t.Fatalf("missing plan var:\n%s", code)
	}
	if !strings.Contains(code, `{Field: "url", Optional: true}`) {
		t.Fatalf("missing optional argument spec:\n%s", code)
	}
	if !strings.Contains(code, `VarProperties: &kdlschema.FieldRef{Field: "options"}`) {
		t.Fatalf("missing catch-all properties:\n%s", code)
	}
}

func TestRenderFile_EnumMatcher(t *testing.T) {
	es, err := kdlschema.CompileEnum(kdlschema.EnumDecl{
		Name: "Mode",
		Variants: []kdlschema.VariantDecl{
			{Name: "ReadOnly"},
			{Name: "ReadWrite"},
		},
	})
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	out, err := RenderFile(File{Package: "foo", Enums: []*kdlschema.EnumSchema{es}})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	code := string(out)
	if !strings.Contains(code, "func matchMode(tag string) (string, bool)") {
		t.Fatalf("missing matcher func:\n%s", code)
	}
	if !strings.Contains(code, `case "read-only":`) {
		t.Fatalf("missing tag case:\n%s", code)
	}
}

func TestRenderFile_DefaultsToMain(t *testing.T) {
	out, err := RenderFile(File{})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(string(out), "package main") {
		t.Fatalf("expected package main fallback:\n%s", out)
	}
}
