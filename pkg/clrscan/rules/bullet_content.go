package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/clrscan/clrscan-go/pkg/clrscan/models"
)

// Prohibited bullet content per the marketplace style requirements.
var (
	prohibitedSpecialChars = "™®€…†‡°¢£¥©±~â"
	prohibitedEmojis       = "☺☹✅❌"

	placeholderPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bnot applicable\b`),
		regexp.MustCompile(`\bNA\b`),
		regexp.MustCompile(`(?i)\bn/a\b`),
		regexp.MustCompile(`(?i)\bTBD\b`),
		regexp.MustCompile(`(?i)\bcopy pending\b`),
	}

	prohibitedClaims = []string{
		"eco-friendly",
		"anti-microbial",
		"anti-bacterial",
		"antibacterial",
		"antimicrobial",
	}

	guaranteeLanguage = []string{
		"full refund",
		"unconditional guarantee",
		"money back guarantee",
		"100% guarantee",
	}
)

// BulletProhibitedContent checks bullet slots for content the
// marketplace can suppress a listing over: special characters, emoji,
// placeholder text, prohibited claims, and guarantee language. Violations
// are aggregated into one finding per bullet.
type BulletProhibitedContent struct{}

func (BulletProhibitedContent) Name() string { return "bullet-prohibited-content" }

func (BulletProhibitedContent) Description() string {
	return "Find bullet points with prohibited content (chars, emojis, claims, placeholders)"
}

func (BulletProhibitedContent) Execute(records []models.Record, _ models.FieldIndex) []models.Finding {
	var findings []models.Finding
	for _, rec := range records {
		for slot := 1; slot <= models.BulletSlots; slot++ {
			text := rec.BulletPoints[slot-1]
			if text == "" {
				continue
			}

			var violations []string
			lowered := strings.ToLower(text)

			if found := findProhibited(text, prohibitedSpecialChars); len(found) > 0 {
				violations = append(violations,
					fmt.Sprintf("Prohibited special characters: %s", strings.Join(found, ", ")))
			}
			if found := findProhibited(text, prohibitedEmojis); len(found) > 0 {
				violations = append(violations,
					fmt.Sprintf("Emojis not allowed: %s", strings.Join(found, ", ")))
			}
			// Only the first placeholder match is reported.
			for _, pattern := range placeholderPatterns {
				if m := pattern.FindString(text); m != "" {
					violations = append(violations, fmt.Sprintf("Placeholder text: %q", m))
					break
				}
			}
			for _, claim := range containsAny(lowered, prohibitedClaims) {
				violations = append(violations, fmt.Sprintf("Prohibited claim: %q", claim))
			}
			for _, phrase := range containsAny(lowered, guaranteeLanguage) {
				violations = append(violations, fmt.Sprintf("Guarantee language not allowed: %q", phrase))
			}

			if len(violations) == 0 {
				continue
			}
			field := fmt.Sprintf("Bullet Point %d", slot)
			findings = append(findings, models.Finding{
				Position:       rec.Position,
				Identifier:     rec.Identifier,
				Field:          field,
				Severity:       models.SeverityCritical,
				Message:        fmt.Sprintf("%s: %s", field, strings.Join(violations, "; ")),
				Classification: rec.Classification,
				Details: map[string]models.Detail{
					"violations":  models.List(violations),
					"bullet_text": models.Text(truncate(text, 100)),
				},
			})
		}
	}
	return findings
}
