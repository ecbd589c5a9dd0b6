package parser

import (
	"fmt"
	"strings"

	"github.com/clrscan/clrscan-go/pkg/clrscan/models"
)

// Fixed row roles of the Template sheet.
const (
	rowSettings      = 1
	rowInstructions  = 2
	rowGroupHeaders  = 3
	rowColumnHeaders = 4
	rowFieldIDs      = 5
	rowExample       = 6
	rowDataStart     = 7
)

// defaultColumns are positional fallbacks used when a canonical header
// is absent from the header row. Malformed or partially renamed sheets
// still yield best-effort extraction.
var defaultColumns = map[string]int{
	"Status":            1,
	"Title":             2,
	"SKU":               3,
	"Product Type":      4,
	"Parentage":         6,
	"Parent SKU":        7,
	"Brand":             10,
	"Item Type Keyword": 13,
}

// exampleIdentifiers are placeholder SKUs used in template example rows.
var exampleIdentifiers = map[string]struct{}{
	"ABC123":  {},
	"EXAMPLE": {},
	"TEST":    {},
}

// fulfillmentMarker tags an identifier as fulfilled by Amazon. Duplicate
// reconciliation prefers records carrying it.
const fulfillmentMarker = "FBA"

// ExtractOptions controls record extraction.
type ExtractOptions struct {
	// ExcludeParents drops variation parent rows.
	ExcludeParents bool
	// ExcludeExamples drops template example rows.
	ExcludeExamples bool
	// CollapseDuplicateFulfillment keeps a single record per display
	// name, preferring the FBA-marked one.
	CollapseDuplicateFulfillment bool
}

// DefaultExtractOptions returns the standard extraction behavior.
func DefaultExtractOptions() ExtractOptions {
	return ExtractOptions{
		ExcludeParents:               true,
		ExcludeExamples:              true,
		CollapseDuplicateFulfillment: true,
	}
}

// Extraction is the result of normalizing the Template sheet.
type Extraction struct {
	// Records is the ordered retained record sequence.
	Records []models.Record
	// Headers maps declared column header to its 1-based position.
	Headers map[string]int
	// DroppedDuplicates counts records removed by duplicate
	// fulfillment-channel reconciliation. Informational only.
	DroppedDuplicates int
}

// ExtractRecords reads the Template sheet and produces normalized
// records in source order. A missing Template sheet is fatal.
func ExtractRecords(src *Source, opts ExtractOptions) (*Extraction, error) {
	sheet, err := src.Sheet(TemplateSheet)
	if err != nil {
		return nil, fmt.Errorf("extract records: %w", err)
	}

	headers := extractHeaders(sheet)

	colSKU := resolveColumn(headers, "SKU")
	colStatus := resolveColumn(headers, "Status")
	colTitle := resolveColumn(headers, "Title")
	colProductType := resolveColumn(headers, "Product Type")
	colItemType := resolveColumn(headers, "Item Type Keyword")
	colBrand := resolveColumn(headers, "Brand")
	colParentage := resolveColumn(headers, "Parentage")
	colParentSKU := resolveColumn(headers, "Parent SKU")

	// Bullet slot columns, blank position for headers that do not exist.
	var bulletCols [models.BulletSlots]int
	for i := 1; i <= models.BulletSlots; i++ {
		if col, ok := headers[fmt.Sprintf("Bullet Point %d", i)]; ok {
			bulletCols[i-1] = col
		}
	}

	var records []models.Record
	for row := rowDataStart; row <= sheet.NumRows(); row++ {
		sku := sheet.Cell(row, colSKU)
		if sku == "" {
			continue
		}

		if opts.ExcludeExamples {
			if _, ok := exampleIdentifiers[strings.ToUpper(sku)]; ok {
				continue
			}
		}

		parentage := sheet.Cell(row, colParentage)
		if opts.ExcludeParents && strings.Contains(strings.ToLower(parentage), "parent") {
			continue
		}

		fields := make(map[string]string, len(headers))
		for name, col := range headers {
			fields[name] = sheet.Cell(row, col)
		}

		var bullets [models.BulletSlots]string
		for i, col := range bulletCols {
			if col > 0 {
				bullets[i] = sheet.Cell(row, col)
			}
		}

		records = append(records, models.Record{
			Position:          row,
			Identifier:        sku,
			Classification:    sheet.Cell(row, colProductType),
			Subclassification: sheet.Cell(row, colItemType),
			DisplayName:       sheet.Cell(row, colTitle),
			Brand:             sheet.Cell(row, colBrand),
			LineageRole:       parseLineageRole(parentage),
			LineageParentID:   sheet.Cell(row, colParentSKU),
			Status:            sheet.Cell(row, colStatus),
			BulletPoints:      bullets,
			Fields:            fields,
		})
	}

	extraction := &Extraction{
		Records: records,
		Headers: headers,
	}

	if opts.CollapseDuplicateFulfillment {
		extraction.Records, extraction.DroppedDuplicates = collapseDuplicates(records)
	}

	return extraction, nil
}

// extractHeaders reads column headers and their 1-based positions from
// the fixed header row.
func extractHeaders(sheet *Sheet) map[string]int {
	headers := make(map[string]int)
	for col := 1; col <= len(sheet.Row(rowColumnHeaders)); col++ {
		if v := sheet.Cell(rowColumnHeaders, col); v != "" {
			headers[v] = col
		}
	}
	return headers
}

// resolveColumn looks up a canonical header, falling back to its
// hardcoded default position when absent.
func resolveColumn(headers map[string]int, name string) int {
	if col, ok := headers[name]; ok {
		return col
	}
	return defaultColumns[name]
}

func parseLineageRole(parentage string) models.LineageRole {
	normalized := strings.ToLower(parentage)
	switch {
	case normalized == "":
		return models.RoleStandalone
	case strings.Contains(normalized, "parent"):
		return models.RoleParent
	case strings.Contains(normalized, "child"):
		return models.RoleChild
	default:
		return models.RoleUnknown
	}
}

// collapseDuplicates reconciles records sharing a display name across
// fulfillment channels. Within a name group the FBA-marked record wins;
// without one, the first-seen record wins. Records with empty display
// names are never grouped.
func collapseDuplicates(records []models.Record) ([]models.Record, int) {
	seen := make(map[string]string) // display name -> retained identifier
	var filtered []models.Record
	dropped := 0

	for _, rec := range records {
		name := rec.DisplayName
		if name == "" {
			filtered = append(filtered, rec)
			continue
		}

		existing, ok := seen[name]
		if !ok {
			seen[name] = rec.Identifier
			filtered = append(filtered, rec)
			continue
		}

		if strings.Contains(strings.ToUpper(rec.Identifier), fulfillmentMarker) {
			// FBA version replaces whatever was retained for this name.
			kept := filtered[:0]
			for _, r := range filtered {
				if r.Identifier != existing {
					kept = append(kept, r)
				}
			}
			filtered = append(kept, rec)
			seen[name] = rec.Identifier
			dropped++
			continue
		}

		// Non-FBA duplicate of an already retained record.
		dropped++
	}

	return filtered, dropped
}
