package kdlschema

// LiteralKind identifies the shape of a scalar document literal.
type LiteralKind int

const (
	LiteralString LiteralKind = iota
	LiteralNumber
	LiteralBool
	LiteralNull
)

// TypeAnnotation is a document-level type hint attached to a literal, e.g.
// (u8)123. Scalar enums always reject annotated literals.
type TypeAnnotation struct {
	Name string
	Span Span
}

// Literal is one scalar document value handed over by a front end. String
// holds the literal text when Kind is LiteralString.
type Literal struct {
	Kind   LiteralKind
	String string
	Span   Span
	Type   *TypeAnnotation
}

// DecodeScalar matches a document literal against the enum's derived tags and
// returns the matched variant identifier.
//
// An annotated literal fails unconditionally, located at the annotation rather
// than the value: the enum decoder expects a plain string, and the annotation
// is what contradicts that. Non-string literals fail with a fixed message.
// Otherwise tags are compared by exact string equality in declaration order.
func (e *EnumSchema) DecodeScalar(lit Literal) (string, error) {
	if lit.Type != nil {
		return "", Diagnostics{errAt(CodeUnexpectedTypeName, e.typeErrMessage(), lit.Type.Span)}
	}
	if lit.Kind != LiteralString {
		return "", Diagnostics{errAt(CodeInvalidScalar, "expected string value", lit.Span)}
	}
	if ident, ok := e.Match(lit.String); ok {
		return ident, nil
	}
	return "", Diagnostics{errAt(CodeInvalidScalar, e.valueErrMessage(), lit.Span)}
}
