package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/clrscan/clrscan-go/pkg/clrscan/models"
)

// csvHeader is the flat export column layout.
var csvHeader = []string{"rule", "row", "sku", "field", "severity", "message", "product_type"}

// WriteCSV flattens reports into one CSV row per finding.
func WriteCSV(w io.Writer, reports []models.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, report := range reports {
		for _, f := range report.Findings {
			row := []string{
				report.RuleName,
				strconv.Itoa(f.Position),
				f.Identifier,
				f.Field,
				string(f.Severity),
				f.Message,
				f.Classification,
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
