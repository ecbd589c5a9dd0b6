package models

import "encoding/json"

// Severity ranks how serious a finding is.
type Severity string

const (
	// SeverityRequired flags a missing mandatory attribute.
	SeverityRequired Severity = "required"
	// SeverityConditional flags a missing conditionally required attribute.
	SeverityConditional Severity = "conditional"
	// SeverityWarning flags content that should be fixed.
	SeverityWarning Severity = "warning"
	// SeverityCritical flags content that can suppress a listing.
	SeverityCritical Severity = "critical"
	// SeverityInfo flags advisory output.
	SeverityInfo Severity = "info"
)

// DetailKind enumerates the value kinds a Detail may carry.
type DetailKind int

const (
	// DetailText carries a single string.
	DetailText DetailKind = iota
	// DetailNumber carries a float64.
	DetailNumber
	// DetailList carries an ordered list of strings.
	DetailList
)

// Detail is one rule-specific structured value attached to a Finding.
// It is a closed tagged union (text, number, list-of-text) so findings
// stay serializable and testable.
type Detail struct {
	kind   DetailKind
	text   string
	number float64
	list   []string
}

// Text wraps a string as a Detail.
func Text(s string) Detail { return Detail{kind: DetailText, text: s} }

// Number wraps a numeric value as a Detail.
func Number(n float64) Detail { return Detail{kind: DetailNumber, number: n} }

// List wraps an ordered string list as a Detail.
func List(items []string) Detail { return Detail{kind: DetailList, list: items} }

// Kind reports which value kind the detail carries.
func (d Detail) Kind() DetailKind { return d.kind }

// TextValue returns the string payload (zero unless Kind is DetailText).
func (d Detail) TextValue() string { return d.text }

// NumberValue returns the numeric payload (zero unless Kind is DetailNumber).
func (d Detail) NumberValue() float64 { return d.number }

// ListValue returns the list payload (nil unless Kind is DetailList).
func (d Detail) ListValue() []string { return d.list }

// MarshalJSON emits the underlying value without a kind wrapper.
func (d Detail) MarshalJSON() ([]byte, error) {
	switch d.kind {
	case DetailNumber:
		return json.Marshal(d.number)
	case DetailList:
		if d.list == nil {
			return json.Marshal([]string{})
		}
		return json.Marshal(d.list)
	default:
		return json.Marshal(d.text)
	}
}

// Finding is one defect reported by a rule. Findings are immutable once
// produced; rules emit new values rather than mutating shared state.
type Finding struct {
	// Position is the source row the finding refers to (0 for
	// catalog-level findings).
	Position int `json:"row"`
	// Identifier is the affected record's SKU, empty for catalog-level
	// findings.
	Identifier string `json:"sku,omitempty"`
	// Field names the affected attribute, when one applies.
	Field string `json:"field,omitempty"`
	// Severity ranks the finding.
	Severity Severity `json:"severity"`
	// Message is the human-readable description.
	Message string `json:"message"`
	// Classification carries the record's product type, when relevant.
	Classification string `json:"product_type,omitempty"`
	// Details holds rule-specific structured values.
	Details map[string]Detail `json:"details,omitempty"`
}
