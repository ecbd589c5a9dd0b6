package rules

import (
	"fmt"
	"strings"

	"github.com/clrscan/clrscan-go/pkg/clrscan/models"
)

// MissingAttributes finds mandatory attributes missing from records.
type MissingAttributes struct{}

func (MissingAttributes) Name() string { return "missing-attributes" }

func (MissingAttributes) Description() string {
	return "Find mandatory (required) attributes missing from listings"
}

func (MissingAttributes) Execute(records []models.Record, meta models.FieldIndex) []models.Finding {
	return missingFindings(records, meta.Required(), models.SeverityRequired)
}

// MissingAnyAttributes finds all missing attributes, required and
// conditional.
type MissingAnyAttributes struct{}

func (MissingAnyAttributes) Name() string { return "missing-any-attributes" }

func (MissingAnyAttributes) Description() string {
	return "Find all missing attributes (required and conditional)"
}

func (MissingAnyAttributes) Execute(records []models.Record, meta models.FieldIndex) []models.Finding {
	fields := append(meta.Required(), meta.Conditional()...)

	var findings []models.Finding
	for _, rec := range records {
		for _, field := range fields {
			if strings.TrimSpace(rec.Field(field)) != "" {
				continue
			}
			severity := models.SeverityConditional
			if meta.Requirement(field) == models.RequirementRequired {
				severity = models.SeverityRequired
			}
			findings = append(findings, models.Finding{
				Position:       rec.Position,
				Identifier:     rec.Identifier,
				Field:          field,
				Severity:       severity,
				Message:        fmt.Sprintf("Missing %s field: %s", severity, field),
				Classification: rec.Classification,
			})
		}
	}
	return findings
}

// missingFindings emits one finding per (record, field) pair whose value
// is empty or whitespace-only. Severity mirrors the field classification.
func missingFindings(records []models.Record, fields []string, severity models.Severity) []models.Finding {
	var findings []models.Finding
	for _, rec := range records {
		for _, field := range fields {
			if strings.TrimSpace(rec.Field(field)) != "" {
				continue
			}
			findings = append(findings, models.Finding{
				Position:       rec.Position,
				Identifier:     rec.Identifier,
				Field:          field,
				Severity:       severity,
				Message:        fmt.Sprintf("Missing %s field: %s", severity, field),
				Classification: rec.Classification,
			})
		}
	}
	return findings
}
