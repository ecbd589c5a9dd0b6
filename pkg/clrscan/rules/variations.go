package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/clrscan/clrscan-go/pkg/clrscan/models"
)

// Patterns stripped from display names before grouping, so size, color
// and count variants of the same product collapse to one key.
var (
	unitPattern  = regexp.MustCompile(`(?i)\b\d+\s*(oz|ml|lb|kg|g|count|pack|ct)\b`)
	sizePattern  = regexp.MustCompile(`(?i)\b(small|medium|large|xl|xxl|s|m|l)\b`)
	colorPattern = regexp.MustCompile(`(?i)\b(black|white|red|blue|green|yellow|pink)\b`)
	spacePattern = regexp.MustCompile(`\s+`)
)

// MissingVariations finds standalone products that look like variants
// of each other and may belong in a single variation family.
type MissingVariations struct{}

func (MissingVariations) Name() string { return "missing-variations" }

func (MissingVariations) Description() string {
	return "Find products that might be missing variation relationships"
}

func (MissingVariations) Execute(records []models.Record, _ models.FieldIndex) []models.Finding {
	type group struct {
		identifiers []string
	}
	groups := make(map[string]*group)
	keys := make([]string, len(records)) // per record, "" when ungrouped

	for i, rec := range records {
		if rec.Brand == "" || rec.DisplayName == "" {
			continue
		}
		// Records already inside a variation family are not candidates.
		if rec.LineageRole == models.RoleChild {
			continue
		}

		key := rec.Brand + "::" + normalizeProductName(rec.DisplayName)
		keys[i] = key
		g, ok := groups[key]
		if !ok {
			g = &group{}
			groups[key] = g
		}
		g.identifiers = append(g.identifiers, rec.Identifier)
	}

	// Emit in record order so output is deterministic.
	var findings []models.Finding
	for i, rec := range records {
		key := keys[i]
		if key == "" {
			continue
		}
		g := groups[key]
		if len(g.identifiers) < 2 {
			continue
		}
		findings = append(findings, models.Finding{
			Position:   rec.Position,
			Identifier: rec.Identifier,
			Field:      "Variation",
			Severity:   models.SeverityInfo,
			Message: fmt.Sprintf("May be a variation candidate. Found %d similar products: %s",
				len(g.identifiers), strings.Join(g.identifiers, ", ")),
			Classification: rec.Classification,
			Details: map[string]models.Detail{
				"similar_skus": models.List(g.identifiers),
			},
		})
	}
	return findings
}

// normalizeProductName strips size, color, and count indicators.
func normalizeProductName(name string) string {
	name = unitPattern.ReplaceAllString(name, "")
	name = sizePattern.ReplaceAllString(name, "")
	name = colorPattern.ReplaceAllString(name, "")
	return strings.TrimSpace(spacePattern.ReplaceAllString(name, " "))
}
