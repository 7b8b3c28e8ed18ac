package kdlschema

// Role classifies how a declared field participates in document decoding.
type Role int

const (
	RoleNone       Role = iota // no annotation; filled by default construction
	RoleArgument               // one positional argument
	RoleArguments              // catch-all for remaining positional arguments
	RoleProperty               // one named property
	RoleProperties             // catch-all for remaining named properties
	RoleChildren               // catch-all for child nodes
)

func (r Role) String() string {
	switch r {
	case RoleNone:
		return "none"
	case RoleArgument:
		return "argument"
	case RoleArguments:
		return "arguments"
	case RoleProperty:
		return "property"
	case RoleProperties:
		return "properties"
	case RoleChildren:
		return "children"
	}
	return "unknown"
}

// ParseRole maps the closed annotation vocabulary to a Role. The empty string
// maps to RoleNone; anything else unknown reports false.
func ParseRole(s string) (Role, bool) {
	switch s {
	case "":
		return RoleNone, true
	case "argument":
		return RoleArgument, true
	case "arguments":
		return RoleArguments, true
	case "property":
		return RoleProperty, true
	case "properties":
		return RoleProperties, true
	case "children":
		return RoleChildren, true
	}
	return RoleNone, false
}

// FieldDecl is one struct field as reported by a front end. Optional mirrors
// the declared type being an optional wrapper (for Go front ends, a pointer).
type FieldDecl struct {
	Name     string
	Optional bool
	Role     Role
	Span     Span
}

// StructDecl is a product type to classify into a DecodePlan.
type StructDecl struct {
	Name   string
	Fields []FieldDecl
	Span   Span
}

// VariantDecl is one enum variant. Fields counts declared payload fields; any
// nonzero count makes the variant non-unit and invalid for scalar decoding.
type VariantDecl struct {
	Name   string
	Fields int
	Span   Span
}

// EnumDecl is a sum type to compile into an EnumSchema.
type EnumDecl struct {
	Name     string
	Variants []VariantDecl
	Span     Span
}
