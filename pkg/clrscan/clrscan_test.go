package clrscan

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/clrscan/clrscan-go/pkg/clrscan/models"
)

func boolPtr(v bool) *bool { return &v }

func TestOptionsDefaults(t *testing.T) {
	opts := DefaultOptions()
	if !opts.ShouldExcludeParents() {
		t.Error("ShouldExcludeParents default = false, want true")
	}
	if !opts.ShouldExcludeExamples() {
		t.Error("ShouldExcludeExamples default = false, want true")
	}
	if !opts.ShouldCollapseDuplicateFulfillment() {
		t.Error("ShouldCollapseDuplicateFulfillment default = false, want true")
	}
}

func TestOptionsExplicit(t *testing.T) {
	opts := Options{
		ExcludeParents:               boolPtr(false),
		ExcludeExamples:              boolPtr(true),
		CollapseDuplicateFulfillment: boolPtr(false),
	}
	if opts.ShouldExcludeParents() {
		t.Error("explicit false ignored for ExcludeParents")
	}
	if !opts.ShouldExcludeExamples() {
		t.Error("explicit true ignored for ExcludeExamples")
	}
	if opts.ShouldCollapseDuplicateFulfillment() {
		t.Error("explicit false ignored for CollapseDuplicateFulfillment")
	}
}

// writeReport builds a minimal but complete listing report workbook with
// a Template sheet and a Data Definitions sheet.
func writeReport(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Template"); err != nil {
		t.Fatalf("rename sheet: %v", err)
	}

	setRow := func(sheet string, row int, values ...interface{}) {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	setRow("Template", 4,
		"Status", "Title", "SKU", "Product Type", "", "Parentage", "Parent SKU",
		"Bullet Point 1", "Bullet Point 2", "Brand")
	setRow("Template", 7,
		"Active", "Steel Dog Bowl", "BOWL-1", "PET_BOWL", "", "", "",
		"Helps keep water fresh for 12 hours", "Built for large breeds", "Acme")
	setRow("Template", 8,
		"Active", "Steel Dog Bowl Family", "BOWL-P", "PET_BOWL", "", "Parent", "",
		"", "", "Acme")
	setRow("Template", 9,
		"Active", "", "ABC123", "PET_BOWL", "", "", "", "", "", "Acme")

	if _, err := f.NewSheet("Data Definitions"); err != nil {
		t.Fatalf("new sheet: %v", err)
	}
	setRow("Data Definitions", 1, "Field Name", "Required?")
	setRow("Data Definitions", 2, "Brand", "Required")
	setRow("Data Definitions", 3, "Color", "Conditional")

	path := filepath.Join(t.TempDir(), "report.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func TestOpenCatalog(t *testing.T) {
	cat, err := Open(writeReport(t), DefaultOptions())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { cat.Close() })

	if got := cat.Meta.Requirement("Brand"); got != models.RequirementRequired {
		t.Errorf("Requirement(Brand) = %v, want required", got)
	}
	if got := cat.Meta.Requirement("Color"); got != models.RequirementConditional {
		t.Errorf("Requirement(Color) = %v, want conditional", got)
	}

	records, err := cat.Records()
	if err != nil {
		t.Fatalf("Records: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1 (parent and example dropped)", len(records))
	}
	rec := records[0]
	if rec.Identifier != "BOWL-1" || rec.Brand != "Acme" {
		t.Errorf("record = %+v", rec)
	}
	if rec.BulletPoints[0] != "Helps keep water fresh for 12 hours" {
		t.Errorf("bullet 1 = %q", rec.BulletPoints[0])
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "absent.xlsx"), DefaultOptions()); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestCatalogEngineRun(t *testing.T) {
	cat, err := Open(writeReport(t), DefaultOptions())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { cat.Close() })

	eng := cat.NewEngine()
	eng.Register(missingBrand{})

	report, err := eng.Run("missing-brand")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.TotalRecords != 1 {
		t.Errorf("TotalRecords = %d, want 1", report.TotalRecords)
	}
	if report.TotalFindings != 0 {
		t.Errorf("TotalFindings = %d, want 0 (brand present)", report.TotalFindings)
	}
}

// missingBrand exercises the engine against real extracted records.
type missingBrand struct{}

func (missingBrand) Name() string        { return "missing-brand" }
func (missingBrand) Description() string { return "Find records without a brand" }

func (missingBrand) Execute(records []models.Record, _ models.FieldIndex) []models.Finding {
	var findings []models.Finding
	for _, rec := range records {
		if rec.Brand == "" {
			findings = append(findings, models.Finding{
				Position:   rec.Position,
				Identifier: rec.Identifier,
				Field:      "Brand",
				Severity:   models.SeverityRequired,
				Message:    "Missing Brand",
			})
		}
	}
	return findings
}
