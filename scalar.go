package kdlschema

import (
	"fmt"
	"strconv"
	"strings"
)

// VariantSpec pairs an enum variant identifier with its derived document tag.
type VariantSpec struct {
	Ident string `json:"ident"`
	Tag   string `json:"tag"`
	Span  Span   `json:"span,omitempty"`
}

// EnumSchema is the compiled scalar decoder for a unit-variant enum. Variants
// keep declaration order; matching is first-declared-wins.
type EnumSchema struct {
	Name     string        `json:"name"`
	Variants []VariantSpec `json:"variants"`
}

// CompileEnum derives the scalar decoding schema for an enum. Every variant
// must be unit (no payload fields); each offending variant is reported with its
// own diagnostic, and no schema is produced if any variant fails.
func CompileEnum(decl EnumDecl) (*EnumSchema, error) {
	es := &EnumSchema{Name: decl.Name}
	var ds Diagnostics
	for _, v := range decl.Variants {
		if v.Fields > 0 {
			ds = AppendDiagnostics(ds, errAt(CodeInvalidVariantShape,
				"only unit variants are allowed for scalar enums", v.Span))
			continue
		}
		es.Variants = append(es.Variants, VariantSpec{Ident: v.Name, Tag: Kebab(v.Name), Span: v.Span})
	}
	if len(ds) > 0 {
		return nil, ds
	}
	return es, nil
}

// Match reports the identifier of the first variant, in declaration order,
// whose tag equals s exactly. Tag collisions are not rejected at compile time,
// so a shadowed later variant is simply unreachable.
func (e *EnumSchema) Match(s string) (string, bool) {
	for _, v := range e.Variants {
		if v.Tag == s {
			return v.Ident, true
		}
	}
	return "", false
}

// valueErrMessage is the fixed no-match message. Up to three variants every
// tag is listed; beyond that only the first two plus a count, so huge enums
// stay readable.
func (e *EnumSchema) valueErrMessage() string {
	if len(e.Variants) <= 3 {
		parts := make([]string, 0, len(e.Variants))
		for _, v := range e.Variants {
			parts = append(parts, "`"+escapeTag(v.Tag)+"`")
		}
		return "expected one of " + strings.Join(parts, ", ")
	}
	return fmt.Sprintf("expected `%s`, `%s`, or %d others",
		escapeTag(e.Variants[0].Tag), escapeTag(e.Variants[1].Tag), len(e.Variants)-2)
}

func (e *EnumSchema) typeErrMessage() string {
	return "unexpected type name for " + e.Name
}

// escapeTag renders a tag for display using Go escaping without the
// surrounding quotes.
func escapeTag(s string) string {
	q := strconv.Quote(s)
	return q[1 : len(q)-1]
}
