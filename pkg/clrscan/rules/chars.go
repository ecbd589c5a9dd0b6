package rules

import (
	"fmt"
	"strings"

	"github.com/clrscan/clrscan-go/pkg/clrscan/models"
)

// prohibitedChars are the basic characters disallowed across general
// text fields.
const prohibitedChars = "!$?_{}^¬¦<>"

// charCheckFields are the general fields scanned for prohibited
// characters. Bullet points have their own richer validation and the
// product description follows different content rules.
var charCheckFields = []string{
	"Title",
	"Item Name",
	"Brand",
}

// ProhibitedChars finds prohibited characters in general text fields,
// one aggregated finding per affected field.
type ProhibitedChars struct{}

func (ProhibitedChars) Name() string { return "prohibited-chars" }

func (ProhibitedChars) Description() string {
	return "Find listings with basic prohibited characters in title/brand"
}

func (ProhibitedChars) Execute(records []models.Record, _ models.FieldIndex) []models.Finding {
	var findings []models.Finding
	for _, rec := range records {
		for _, field := range charCheckFields {
			value := rec.Field(field)
			if value == "" {
				continue
			}
			found := findProhibited(value, prohibitedChars)
			if len(found) == 0 {
				continue
			}
			findings = append(findings, models.Finding{
				Position:       rec.Position,
				Identifier:     rec.Identifier,
				Field:          field,
				Severity:       models.SeverityWarning,
				Message:        fmt.Sprintf("Field %q contains prohibited characters: %s", field, strings.Join(found, ", ")),
				Classification: rec.Classification,
				Details: map[string]models.Detail{
					"prohibited_chars": models.List(found),
				},
			})
		}
	}
	return findings
}
