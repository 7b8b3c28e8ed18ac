package kdlschema

import (
	"fmt"
	"strings"

	"github.com/reoring/kdlschema/i18n"
)

// Render formats a diagnostic for terminal output without source context. The
// heading combines the translated code summary with the primary message; each
// label follows on its own line.
func Render(d Diagnostic) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%s: %s\n", i18n.T(d.Code, nil), d.Message)
	for _, l := range d.Labels {
		renderLabelPlain(b, l)
	}
	return b.String()
}

// RenderWithSource formats a diagnostic with caret snippets pointing into src,
// the front-end source text the spans refer to. Labels whose span is unknown
// or out of range fall back to the plain form.
func RenderWithSource(d Diagnostic, src string) string {
	lines := strings.Split(src, "\n")
	b := &strings.Builder{}
	fmt.Fprintf(b, "%s: %s\n", i18n.T(d.Code, nil), d.Message)
	for _, l := range d.Labels {
		if l.Span.Line < 1 || l.Span.Line > len(lines) {
			renderLabelPlain(b, l)
			continue
		}
		fmt.Fprintf(b, "  - %s: %s\n", l.Span, l.Message)
		line := lines[l.Span.Line-1]
		fmt.Fprintf(b, "    %4d | %s\n", l.Span.Line, line)
		col := l.Span.Col
		if col < 1 {
			col = 1
		}
		if col > len(line)+1 {
			col = len(line) + 1
		}
		fmt.Fprintf(b, "    %4s | %s^\n", "", strings.Repeat(" ", col-1))
	}
	return b.String()
}

func renderLabelPlain(b *strings.Builder, l Label) {
	if l.Span.IsZero() {
		fmt.Fprintf(b, "  - %s\n", l.Message)
		return
	}
	fmt.Fprintf(b, "  - %s: %s\n", l.Span, l.Message)
}
