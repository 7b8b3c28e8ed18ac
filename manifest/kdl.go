package manifest

import (
	"fmt"
	"io"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"

	kdlschema "github.com/reoring/kdlschema"
)

// KDL manifest shape (the schema language describing itself):
//
//	struct "Plugin" {
//	    field "name" role="argument"
//	    field "url" role="argument" optional=true
//	    field "options" role="properties"
//	}
//	enum "Mode" {
//	    variant "ReadOnly"
//	    variant "ReadWrite"
//	}
//
// kdl-go does not surface node positions, so spans carry the filename only.

// ParseKDL parses a KDL schema manifest. Structural problems (unknown node
// names, missing name arguments, bad role strings) are reported as
// Diagnostics; a document-level syntax error is returned as a wrapped error.
func ParseKDL(r io.Reader, filename string) (*File, error) {
	doc, err := kdl.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("manifest: parsing %s: %w", filename, err)
	}
	var out File
	var ds kdlschema.Diagnostics
	span := kdlschema.Span{File: filename}
	for _, node := range doc.Nodes {
		switch name := node.Name.ValueString(); name {
		case "struct":
			sd, more := parseStructNode(node, span)
			ds = kdlschema.AppendDiagnostics(ds, more...)
			if len(more) == 0 {
				out.Structs = append(out.Structs, sd)
			}
		case "enum":
			ed, more := parseEnumNode(node, span)
			ds = kdlschema.AppendDiagnostics(ds, more...)
			if len(more) == 0 {
				out.Enums = append(out.Enums, ed)
			}
		default:
			ds = kdlschema.AppendDiagnostics(ds, parseErr(
				fmt.Sprintf("unknown top-level node %q (expected struct or enum)", name), span))
		}
	}
	if len(ds) > 0 {
		return nil, ds
	}
	return &out, nil
}

// parseStructNode converts a struct node and its field children.
func parseStructNode(node *document.Node, span kdlschema.Span) (kdlschema.StructDecl, kdlschema.Diagnostics) {
	var ds kdlschema.Diagnostics
	name, err := arg[string](node, 0)
	if err != nil {
		return kdlschema.StructDecl{}, kdlschema.Diagnostics{parseErr("struct requires a string name argument", span)}
	}
	sd := kdlschema.StructDecl{Name: name, Span: span}
	for _, child := range node.Children {
		if cn := child.Name.ValueString(); cn != "field" {
			ds = kdlschema.AppendDiagnostics(ds, parseErr(
				fmt.Sprintf("struct %q: unknown node %q (expected field)", name, cn), span))
			continue
		}
		fname, err := arg[string](child, 0)
		if err != nil {
			ds = kdlschema.AppendDiagnostics(ds, parseErr(
				fmt.Sprintf("struct %q: field requires a string name argument", name), span))
			continue
		}
		roleStr, err := prop[string](child, "role")
		if err != nil {
			ds = kdlschema.AppendDiagnostics(ds, parseErr(
				fmt.Sprintf("struct %q: field %q: role must be a string", name, fname), span))
			continue
		}
		optional, err := prop[bool](child, "optional")
		if err != nil {
			ds = kdlschema.AppendDiagnostics(ds, parseErr(
				fmt.Sprintf("struct %q: field %q: optional must be a boolean", name, fname), span))
			continue
		}
		role, ok := kdlschema.ParseRole(roleStr)
		if !ok {
			ds = kdlschema.AppendDiagnostics(ds, invalidRole(roleStr, fname, span))
			continue
		}
		sd.Fields = append(sd.Fields, kdlschema.FieldDecl{
			Name:     fname,
			Optional: optional,
			Role:     role,
			Span:     span,
		})
	}
	return sd, ds
}

// parseEnumNode converts an enum node and its variant children. A variant may
// carry fields=N to declare a non-unit shape; the compiler rejects those.
func parseEnumNode(node *document.Node, span kdlschema.Span) (kdlschema.EnumDecl, kdlschema.Diagnostics) {
	var ds kdlschema.Diagnostics
	name, err := arg[string](node, 0)
	if err != nil {
		return kdlschema.EnumDecl{}, kdlschema.Diagnostics{parseErr("enum requires a string name argument", span)}
	}
	ed := kdlschema.EnumDecl{Name: name, Span: span}
	for _, child := range node.Children {
		if cn := child.Name.ValueString(); cn != "variant" {
			ds = kdlschema.AppendDiagnostics(ds, parseErr(
				fmt.Sprintf("enum %q: unknown node %q (expected variant)", name, cn), span))
			continue
		}
		vname, err := arg[string](child, 0)
		if err != nil {
			ds = kdlschema.AppendDiagnostics(ds, parseErr(
				fmt.Sprintf("enum %q: variant requires a string name argument", name), span))
			continue
		}
		fields, err := prop[int64](child, "fields")
		if err != nil {
			ds = kdlschema.AppendDiagnostics(ds, parseErr(
				fmt.Sprintf("enum %q: variant %q: fields must be an integer", name, vname), span))
			continue
		}
		ed.Variants = append(ed.Variants, kdlschema.VariantDecl{
			Name:   vname,
			Fields: int(fields),
			Span:   span,
		})
	}
	return ed, ds
}

// arg returns the typed value at the given argument index, or an error.
func arg[T any](node *document.Node, idx int) (T, error) {
	var zero T
	if idx >= len(node.Arguments) {
		return zero, fmt.Errorf("argument %d: missing", idx)
	}
	v, ok := node.Arguments[idx].ResolvedValue().(T)
	if !ok {
		return zero, fmt.Errorf("argument %d: not a %T", idx, zero)
	}
	return v, nil
}

// prop reads an optional typed property from a node. Returns the zero value
// when the property is absent.
func prop[T any](node *document.Node, key string) (T, error) {
	var zero T
	v, ok := node.Properties[key]
	if !ok {
		return zero, nil
	}
	t, ok := v.ResolvedValue().(T)
	if !ok {
		return zero, fmt.Errorf("property %q: not a %T", key, zero)
	}
	return t, nil
}
