package models

import (
	"time"

	"github.com/google/uuid"
)

// Report aggregates one rule's run over a record snapshot. A Report is
// constructed once by NewReport and never mutated afterwards.
type Report struct {
	// ID uniquely identifies this rule execution.
	ID string `json:"id"`
	// RuleName is the executed rule's registered name.
	RuleName string `json:"rule_name"`
	// RuleDescription is the rule's one-line description.
	RuleDescription string `json:"description"`
	// Findings is the rule's ordered output.
	Findings []Finding `json:"findings"`
	// TotalFindings is len(Findings).
	TotalFindings int `json:"total_findings"`
	// AffectedIdentifiers counts distinct non-empty identifiers across
	// the findings.
	AffectedIdentifiers int `json:"affected_skus"`
	// TotalRecords is the size of the record snapshot the rule saw.
	TotalRecords int `json:"total_records"`
	// GeneratedAt is the report creation time.
	GeneratedAt time.Time `json:"generated_at"`
}

// NewReport builds a Report and derives its counts from the finding
// sequence.
func NewReport(name, description string, findings []Finding, totalRecords int) Report {
	seen := make(map[string]struct{})
	for _, f := range findings {
		if f.Identifier != "" {
			seen[f.Identifier] = struct{}{}
		}
	}
	if findings == nil {
		findings = []Finding{}
	}
	return Report{
		ID:                  uuid.NewString(),
		RuleName:            name,
		RuleDescription:     description,
		Findings:            findings,
		TotalFindings:       len(findings),
		AffectedIdentifiers: len(seen),
		TotalRecords:        totalRecords,
		GeneratedAt:         time.Now(),
	}
}
