package kdlschema

// Package kdlschema compiles type declarations into decode plans for KDL-style
// documents (node name, positional arguments, named properties, nested children).
//
// It provides:
//
// - Role classification of struct fields into a conflict-free DecodePlan
// - Scalar enum compilation: unit variants become kebab-case string-tag matchers
// - A stable diagnostic model (code, message, labeled source spans)
// - Caret-snippet rendering of diagnostics against front-end source text
//
// Design policy:
// - Keep the public API and the core engine in the root package; put the code
//   generator under internal/, manifest front ends under manifest/, and the CLI
//   under cmd/kdlschema.
// - The compiler is pure: a declaration list goes in, a DecodePlan/EnumSchema or
//   Diagnostics come out. Parsing and decoding documents is the job of front
//   ends and generated code, never of this package.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	plan, err := kdlschema.CompileStruct(decl)
//	es, err := kdlschema.CompileEnum(enumDecl)
//	ident, err := es.DecodeScalar(lit)
