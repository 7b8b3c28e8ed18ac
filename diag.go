package kdlschema

import (
	"errors"
	"fmt"
	"strings"
)

// Diagnostic codes (exported consts for IDE completion and type safety by convention)
const (
	CodeRoleConflict        = "role_conflict"
	CodeInvalidVariantShape = "invalid_variant_shape"
	CodeInvalidScalar       = "invalid_scalar"
	CodeUnexpectedTypeName  = "unexpected_type_name"
	CodeInvalidRole         = "invalid_role"
	CodeParseError          = "parse_error"
)

// Span locates a declaration or literal in front-end source. Line and Col are
// 1-based; the zero value means the location is unknown. Producing spans is the
// front end's job; this package only carries and renders them.
type Span struct {
	File string `json:"file,omitempty"`
	Line int    `json:"line,omitempty"`
	Col  int    `json:"col,omitempty"`
}

// IsZero reports whether the span carries no location information.
func (s Span) IsZero() bool { return s.File == "" && s.Line == 0 && s.Col == 0 }

func (s Span) String() string {
	if s.IsZero() {
		return "<unknown>"
	}
	file := s.File
	if file == "" {
		file = "<input>"
	}
	return fmt.Sprintf("%s:%d:%d", file, s.Line, s.Col)
}

// Label pairs a message with a source location.
type Label struct {
	Message string `json:"message"`
	Span    Span   `json:"span"`
}

// Diagnostic is a single reportable problem. Labels carry one entry per source
// location involved; for conflicts the offending declaration comes first and
// the prior declaration that established the constraint second.
type Diagnostic struct {
	Code    string  `json:"code"`
	Message string  `json:"message"`
	Labels  []Label `json:"labels,omitempty"`
}

// Diagnostics is a collection of compile problems that implements error.
type Diagnostics []Diagnostic

// Error summarizes the first few diagnostics.
func (ds Diagnostics) Error() string {
	if len(ds) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(ds)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		d := ds[i]
		at := Span{}
		if len(d.Labels) > 0 {
			at = d.Labels[0].Span
		}
		// e.g. role_conflict at schema.kdl:3:5
		fmt.Fprintf(b, "%s at %s", d.Code, at)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendDiagnostics appends diagnostics to the destination, initializing the
// slice when needed.
func AppendDiagnostics(dst Diagnostics, more ...Diagnostic) Diagnostics {
	if dst == nil {
		dst = Diagnostics{}
	}
	dst = append(dst, more...)
	return dst
}

// AsDiagnostics extracts Diagnostics from an error using errors.As internally.
func AsDiagnostics(err error) (Diagnostics, bool) {
	if err == nil {
		return nil, false
	}
	var ds Diagnostics
	if errors.As(err, &ds) {
		return ds, true
	}
	return nil, false
}

// errAt builds a single-location diagnostic.
func errAt(code, msg string, span Span) Diagnostic {
	return Diagnostic{Code: code, Message: msg, Labels: []Label{{Message: msg, Span: span}}}
}

// errPair builds the dual-location diagnostic used for declaration conflicts:
// the new declaration first, then the prior one it collides with.
func errPair(code, msg string, span Span, prior string, priorSpan Span) Diagnostic {
	return Diagnostic{Code: code, Message: msg, Labels: []Label{
		{Message: msg, Span: span},
		{Message: prior, Span: priorSpan},
	}}
}
