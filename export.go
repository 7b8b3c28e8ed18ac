package kdlschema

import (
	json "github.com/goccy/go-json"
)

// MarshalPlanJSON renders a compiled decode plan as indented JSON for tooling
// and snapshot tests.
func MarshalPlanJSON(p *DecodePlan) ([]byte, error) {
	return json.MarshalIndent(p, "", "  ")
}

// MarshalEnumJSON renders a compiled enum schema as indented JSON.
func MarshalEnumJSON(e *EnumSchema) ([]byte, error) {
	return json.MarshalIndent(e, "", "  ")
}
