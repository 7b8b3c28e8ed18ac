package kdlschema_test

import (
	"fmt"
	"strings"
	"testing"

	kdlschema "github.com/reoring/kdlschema"
)

func TestDiagnostics_ErrorSummary(t *testing.T) {
	var ds kdlschema.Diagnostics
	for i := 0; i < 5; i++ {
		ds = kdlschema.AppendDiagnostics(ds, kdlschema.Diagnostic{
			Code:    kdlschema.CodeRoleConflict,
			Message: "boom",
			Labels:  []kdlschema.Label{{Message: "boom", Span: kdlschema.Span{File: "a.go", Line: i + 1, Col: 1}}},
		})
	}
	msg := ds.Error()
	if !strings.HasPrefix(msg, "role_conflict at a.go:1:1") {
		t.Fatalf("unexpected summary: %q", msg)
	}
	if !strings.Contains(msg, "(total 5)") {
		t.Fatalf("expected total count, got %q", msg)
	}
}

func TestAsDiagnostics_Wrapped(t *testing.T) {
	inner := kdlschema.Diagnostics{{Code: kdlschema.CodeParseError, Message: "bad"}}
	wrapped := fmt.Errorf("compile: %w", inner)
	ds, ok := kdlschema.AsDiagnostics(wrapped)
	if !ok || len(ds) != 1 || ds[0].Code != kdlschema.CodeParseError {
		t.Fatalf("unwrap failed: %v %v", ds, ok)
	}
	if _, ok := kdlschema.AsDiagnostics(nil); ok {
		t.Fatalf("nil error must not yield diagnostics")
	}
}

func TestSpan_String(t *testing.T) {
	if got := (kdlschema.Span{}).String(); got != "<unknown>" {
		t.Fatalf("zero span: %q", got)
	}
	if got := (kdlschema.Span{File: "s.kdl", Line: 3, Col: 7}).String(); got != "s.kdl:3:7" {
		t.Fatalf("span render: %q", got)
	}
	if got := (kdlschema.Span{Line: 3, Col: 7}).String(); got != "<input>:3:7" {
		t.Fatalf("fileless span render: %q", got)
	}
}
