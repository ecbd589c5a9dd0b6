// Package output renders rule reports for terminals, JSON consumers,
// and CSV export. The core engine never formats for a medium; callers
// pass report sequences here.
package output

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/clrscan/clrscan-go/pkg/clrscan/models"
)

// maxDetailRows caps per-report table rows for readability.
const maxDetailRows = 20

var severityColors = map[models.Severity]text.Color{
	models.SeverityRequired:    text.FgRed,
	models.SeverityConditional: text.FgYellow,
	models.SeverityWarning:     text.FgHiYellow,
	models.SeverityCritical:    text.FgHiRed,
	models.SeverityInfo:        text.FgBlue,
}

// RenderTerminal writes reports as human-readable tables. With
// showDetails false, only the per-report header lines are written.
func RenderTerminal(w io.Writer, reports []models.Report, showDetails bool) {
	for _, report := range reports {
		fmt.Fprintf(w, "\n%s: %s\n", report.RuleName, report.RuleDescription)
		fmt.Fprintf(w, "Findings: %d | Affected SKUs: %d\n", report.TotalFindings, report.AffectedIdentifiers)

		if report.TotalFindings == 0 {
			fmt.Fprintln(w, "✓ No issues found")
			continue
		}
		if !showDetails {
			continue
		}

		tw := table.NewWriter()
		tw.SetOutputMirror(w)
		tw.SetStyle(table.StyleLight)
		tw.AppendHeader(table.Row{"Row", "SKU", "Field", "Severity", "Details"})
		tw.SetColumnConfigs([]table.ColumnConfig{
			{Number: 1, Align: text.AlignRight},
			{Number: 2, WidthMax: 18},
			{Number: 3, WidthMax: 22},
			{Number: 5, WidthMax: 60},
		})

		for i, f := range report.Findings {
			if i == maxDetailRows {
				tw.AppendRow(table.Row{"...", fmt.Sprintf("+%d more", report.TotalFindings-maxDetailRows), "", "", ""})
				break
			}
			tw.AppendRow(table.Row{f.Position, f.Identifier, f.Field, colorSeverity(f.Severity), f.Message})
		}
		tw.Render()
	}
}

// RenderSummary writes a short cross-report summary block.
func RenderSummary(w io.Writer, reports []models.Report) {
	var findings, affected int
	for _, r := range reports {
		findings += r.TotalFindings
		affected += r.AffectedIdentifiers
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Rule", "Findings", "Affected SKUs"})
	for _, r := range reports {
		tw.AppendRow(table.Row{r.RuleName, r.TotalFindings, r.AffectedIdentifiers})
	}
	tw.AppendFooter(table.Row{"Total", findings, affected})
	tw.Render()
}

func colorSeverity(s models.Severity) string {
	if c, ok := severityColors[s]; ok {
		return c.Sprint(string(s))
	}
	return string(s)
}
