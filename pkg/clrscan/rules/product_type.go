package rules

import (
	"fmt"
	"strings"

	"github.com/clrscan/clrscan-go/pkg/clrscan/models"
)

// ProductTypeMismatch cross-checks the product type against the item
// type keyword. A pair is flagged when the two share no token and
// neither contains the other.
type ProductTypeMismatch struct{}

func (ProductTypeMismatch) Name() string { return "product-type-mismatch" }

func (ProductTypeMismatch) Description() string {
	return "Find potential mismatches between product type and item type keyword"
}

func (ProductTypeMismatch) Execute(records []models.Record, _ models.FieldIndex) []models.Finding {
	var findings []models.Finding
	for _, rec := range records {
		if rec.Classification == "" || rec.Subclassification == "" {
			continue
		}

		productType := normalizeTokens(rec.Classification)
		itemType := normalizeTokens(rec.Subclassification)

		if tokensOverlap(productType, itemType) || strings.Contains(itemType, productType) {
			continue
		}

		findings = append(findings, models.Finding{
			Position:   rec.Position,
			Identifier: rec.Identifier,
			Field:      "Product Type / Item Type",
			Severity:   models.SeverityWarning,
			Message: fmt.Sprintf("Product type %q may not match item type keyword %q",
				rec.Classification, truncate(rec.Subclassification, 60)),
			Classification: rec.Classification,
			Details: map[string]models.Detail{
				"item_type": models.Text(rec.Subclassification),
			},
		})
	}
	return findings
}

// normalizeTokens lower-cases and replaces underscores with spaces so
// "home_storage" and "Home Storage" compare equal.
func normalizeTokens(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), "_", " ")
}

func tokensOverlap(a, b string) bool {
	tokens := make(map[string]bool)
	for _, t := range strings.Fields(a) {
		tokens[t] = true
	}
	for _, t := range strings.Fields(b) {
		if tokens[t] {
			return true
		}
	}
	return false
}
