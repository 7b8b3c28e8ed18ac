package kdlschema

// ArgumentSpec describes a single positional argument slot.
type ArgumentSpec struct {
	Field    string `json:"field"`
	Optional bool   `json:"optional,omitempty"`
}

// PropertySpec describes a single named property slot. Name is the field
// identifier text, unmodified; document properties match it literally.
type PropertySpec struct {
	Name     string `json:"name"`
	Optional bool   `json:"optional,omitempty"`
}

// FieldRef names a catch-all field together with its declaration site. The
// span is kept so later conflicts can point back at it.
type FieldRef struct {
	Field string `json:"field"`
	Span  Span   `json:"span,omitempty"`
}

// ExtraField is a field without a role annotation. It is never read from the
// document; decoding fills it by default construction.
type ExtraField struct {
	Field string `json:"field"`
}

// DecodePlan is the validated decoding recipe for one struct. It is built once
// from an immutable declaration list and handed to the generator; nothing
// mutates it afterwards.
type DecodePlan struct {
	Name          string         `json:"name"`
	Arguments     []ArgumentSpec `json:"arguments,omitempty"`
	VarArguments  *FieldRef      `json:"varArguments,omitempty"`
	Properties    []PropertySpec `json:"properties,omitempty"`
	VarProperties *FieldRef      `json:"varProperties,omitempty"`
	Children      *FieldRef      `json:"children,omitempty"`
	ChildrenOnly  bool           `json:"childrenOnly,omitempty"`
	Extra         []ExtraField   `json:"extra,omitempty"`
}

// AllFields returns every classified field name in category order: arguments,
// catch-all arguments, properties, catch-all properties, children, extras.
func (p *DecodePlan) AllFields() []string {
	res := make([]string, 0, len(p.Arguments)+len(p.Properties)+len(p.Extra)+3)
	for _, a := range p.Arguments {
		res = append(res, a.Field)
	}
	if p.VarArguments != nil {
		res = append(res, p.VarArguments.Field)
	}
	for _, pr := range p.Properties {
		res = append(res, pr.Name)
	}
	if p.VarProperties != nil {
		res = append(res, p.VarProperties.Field)
	}
	if p.Children != nil {
		res = append(res, p.Children.Field)
	}
	for _, f := range p.Extra {
		res = append(res, f.Field)
	}
	return res
}

// CompileStruct classifies the struct's fields into a DecodePlan.
//
// The pass is a single left-to-right scan over five mutually exclusive slots
// (argument list, catch-all arguments, property list, catch-all properties,
// catch-all children) plus the extras list. A catch-all slot admits exactly one
// field, and a plain argument/property may not follow an established catch-all
// of its category: a catch-all must receive every unmatched item of the
// category, so either shape would make assignment ambiguous. Conflicts return
// Diagnostics labeling both the offending and the prior declaration; no
// partial plan is ever returned.
func CompileStruct(decl StructDecl) (*DecodePlan, error) {
	p := &DecodePlan{Name: decl.Name}
	for _, f := range decl.Fields {
		switch f.Role {
		case RoleArgument:
			if p.VarArguments != nil {
				return nil, Diagnostics{errPair(CodeRoleConflict,
					"extra `argument` after capture all `arguments`", f.Span,
					"capture all `arguments` is defined here", p.VarArguments.Span)}
			}
			p.Arguments = append(p.Arguments, ArgumentSpec{Field: f.Name, Optional: f.Optional})
		case RoleArguments:
			if p.VarArguments != nil {
				return nil, Diagnostics{errPair(CodeRoleConflict,
					"only single `arguments` allowed", f.Span,
					"previous `arguments` is defined here", p.VarArguments.Span)}
			}
			p.VarArguments = &FieldRef{Field: f.Name, Span: f.Span}
		case RoleProperty:
			if p.VarProperties != nil {
				return nil, Diagnostics{errPair(CodeRoleConflict,
					"extra `property` after capture all `properties`", f.Span,
					"capture all `properties` is defined here", p.VarProperties.Span)}
			}
			p.Properties = append(p.Properties, PropertySpec{Name: f.Name, Optional: f.Optional})
		case RoleProperties:
			if p.VarProperties != nil {
				return nil, Diagnostics{errPair(CodeRoleConflict,
					"only single `properties` is allowed", f.Span,
					"previous `properties` is defined here", p.VarProperties.Span)}
			}
			p.VarProperties = &FieldRef{Field: f.Name, Span: f.Span}
		case RoleChildren:
			if p.Children != nil {
				return nil, Diagnostics{errPair(CodeRoleConflict,
					"only single catch all `children` is allowed", f.Span,
					"previous `children` is defined here", p.Children.Span)}
			}
			p.Children = &FieldRef{Field: f.Name, Span: f.Span}
		default:
			p.Extra = append(p.Extra, ExtraField{Field: f.Name})
		}
	}
	// Nodes whose struct declares neither arguments nor properties decode from
	// children alone, whether or not a children catch-all or extras exist.
	p.ChildrenOnly = len(p.Arguments) == 0 && len(p.Properties) == 0 &&
		p.VarArguments == nil && p.VarProperties == nil
	return p, nil
}
