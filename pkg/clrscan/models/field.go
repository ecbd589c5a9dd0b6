package models

import "sort"

// Requirement classifies how mandatory a field is per the report's
// data definitions sheet.
type Requirement string

const (
	// RequirementRequired marks a field every listing must populate.
	RequirementRequired Requirement = "required"
	// RequirementConditional marks a field required only in some contexts.
	RequirementConditional Requirement = "conditional"
	// RequirementNone marks an optional or unclassified field.
	RequirementNone Requirement = "none"
)

// FieldDefinition is one entry of the field metadata index.
type FieldDefinition struct {
	// Name is the field name as declared in the definitions sheet.
	Name string `json:"name"`
	// Requirement is the parsed requirement classification.
	Requirement Requirement `json:"requirement"`
}

// FieldIndex maps field name to its definition. An empty index means the
// source carried no usable data definitions sheet; extraction and rules
// treat every field as unclassified in that case.
type FieldIndex map[string]FieldDefinition

// Requirement returns the classification for a field name, or
// RequirementNone when the field is not in the index.
func (idx FieldIndex) Requirement(name string) Requirement {
	if def, ok := idx[name]; ok {
		return def.Requirement
	}
	return RequirementNone
}

// Required returns the names of all required fields in sorted order.
func (idx FieldIndex) Required() []string {
	return idx.withRequirement(RequirementRequired)
}

// Conditional returns the names of all conditionally required fields in
// sorted order.
func (idx FieldIndex) Conditional() []string {
	return idx.withRequirement(RequirementConditional)
}

// withRequirement sorts so rule output is deterministic across runs.
func (idx FieldIndex) withRequirement(req Requirement) []string {
	var names []string
	for name, def := range idx {
		if def.Requirement == req {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
