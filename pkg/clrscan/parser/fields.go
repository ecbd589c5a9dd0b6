package parser

import (
	"strings"

	"github.com/clrscan/clrscan-go/pkg/clrscan/models"
)

// definitionHeaderScanRows is how many leading rows of the definitions
// sheet are scanned for the header row.
const definitionHeaderScanRows = 5

// BuildFieldIndex parses the "Data Definitions" sheet into a field
// metadata index. It never fails hard: a missing sheet or an
// unlocatable header row yields an empty index and extraction proceeds
// with every field unclassified.
func BuildFieldIndex(src *Source) models.FieldIndex {
	index := models.FieldIndex{}

	sheet, err := src.Sheet(DefinitionsSheet)
	if err != nil {
		return index
	}

	headerRow := findDefinitionHeaderRow(sheet)
	if headerRow == 0 {
		return index
	}

	// Header positions, matched case-insensitively.
	cols := map[string]int{}
	for col := 1; col <= len(sheet.Row(headerRow)); col++ {
		if v := sheet.Cell(headerRow, col); v != "" {
			cols[strings.ToLower(v)] = col
		}
	}

	nameCol, ok := cols["field name"]
	if !ok {
		return index
	}
	requiredCol := cols["required?"]

	for row := headerRow + 1; row <= sheet.NumRows(); row++ {
		name := sheet.Cell(row, nameCol)
		if name == "" {
			continue
		}

		requirement := models.RequirementNone
		if requiredCol > 0 {
			requirement = parseRequirement(sheet.Cell(row, requiredCol))
		}

		// Later duplicate definitions overwrite earlier ones.
		index[name] = models.FieldDefinition{
			Name:        name,
			Requirement: requirement,
		}
	}

	return index
}

// findDefinitionHeaderRow scans the first rows for a cell containing
// "field name". Returns 0 when no header row is found.
func findDefinitionHeaderRow(sheet *Sheet) int {
	limit := definitionHeaderScanRows
	if n := sheet.NumRows(); n < limit {
		limit = n
	}
	for row := 1; row <= limit; row++ {
		for _, cell := range sheet.Row(row) {
			if strings.Contains(strings.ToLower(cell), "field name") {
				return row
			}
		}
	}
	return 0
}

func parseRequirement(s string) models.Requirement {
	normalized := strings.ToLower(strings.TrimSpace(s))
	switch {
	case normalized == "required":
		return models.RequirementRequired
	case strings.Contains(normalized, "conditional"):
		return models.RequirementConditional
	default:
		return models.RequirementNone
	}
}
