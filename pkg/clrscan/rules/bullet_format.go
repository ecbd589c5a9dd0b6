package rules

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/clrscan/clrscan-go/pkg/clrscan/models"
)

// Formatting bounds for a single bullet.
const (
	minBulletFormatLength = 10
	maxBulletFormatLength = 255
	recommendedBullets    = 3
)

// BulletFormatting checks bullet formatting: leading capital, length
// bounds, no trailing sentence punctuation, and a recommended minimum
// bullet count per record.
type BulletFormatting struct{}

func (BulletFormatting) Name() string { return "bullet-formatting" }

func (BulletFormatting) Description() string {
	return "Check bullet point formatting (capitalization, length, punctuation)"
}

func (BulletFormatting) Execute(records []models.Record, _ models.FieldIndex) []models.Finding {
	var findings []models.Finding
	for _, rec := range records {
		populated := 0

		for slot := 1; slot <= models.BulletSlots; slot++ {
			text := strings.TrimSpace(rec.BulletPoints[slot-1])
			if text == "" {
				continue
			}
			populated++

			var violations []string
			runes := []rune(text)

			if !unicode.IsUpper(runes[0]) {
				violations = append(violations, "Must begin with capital letter")
			}
			if len(runes) < minBulletFormatLength {
				violations = append(violations,
					fmt.Sprintf("Too short (%d chars, minimum %d)", len(runes), minBulletFormatLength))
			} else if len(runes) > maxBulletFormatLength {
				violations = append(violations,
					fmt.Sprintf("Too long (%d chars, maximum %d)", len(runes), maxBulletFormatLength))
			}
			if last := runes[len(runes)-1]; strings.ContainsRune(".!?", last) {
				violations = append(violations,
					fmt.Sprintf("Should not end with %q (use sentence fragments)", string(last)))
			}

			if len(violations) == 0 {
				continue
			}
			field := fmt.Sprintf("Bullet Point %d", slot)
			findings = append(findings, models.Finding{
				Position:       rec.Position,
				Identifier:     rec.Identifier,
				Field:          field,
				Severity:       models.SeverityWarning,
				Message:        fmt.Sprintf("%s: %s", field, strings.Join(violations, "; ")),
				Classification: rec.Classification,
				Details: map[string]models.Detail{
					"violations":  models.List(violations),
					"bullet_text": models.Text(truncate(text, 100)),
				},
			})
		}

		if populated > 0 && populated < recommendedBullets {
			findings = append(findings, models.Finding{
				Position:       rec.Position,
				Identifier:     rec.Identifier,
				Field:          "Bullet Points",
				Severity:       models.SeverityWarning,
				Message:        fmt.Sprintf("Only %d bullet point(s) found. At least %d are recommended.", populated, recommendedBullets),
				Classification: rec.Classification,
				Details: map[string]models.Detail{
					"bullet_count": models.Number(float64(populated)),
				},
			})
		}
	}
	return findings
}
