package parser

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"

	"github.com/clrscan/clrscan-go/pkg/clrscan/models"
)

// standardHeaders lays out the canonical columns at their default
// positions plus two bullet slots.
var standardHeaders = []interface{}{
	"Status", "Title", "SKU", "Product Type", "", "Parentage", "Parent SKU",
	"Bullet Point 1", "Bullet Point 2", "Brand", "", "", "Item Type Keyword",
}

// templateWorkbook builds a Template sheet with the standard header row
// and the given data rows starting at the first data row.
func templateWorkbook(t *testing.T, rows ...[]interface{}) string {
	t.Helper()
	return writeWorkbook(t, func(f *excelize.File) {
		f.SetSheetName("Sheet1", TemplateSheet)
		setRow(t, f, TemplateSheet, rowColumnHeaders, standardHeaders...)
		for i, row := range rows {
			setRow(t, f, TemplateSheet, rowDataStart+i, row...)
		}
	})
}

func TestExtractRecordsBasic(t *testing.T) {
	path := templateWorkbook(t,
		[]interface{}{"Active", "Garlic Press", "GP-001", "kitchen_tools", "", "", "",
			"First bullet", "Second bullet", "AcmeWare", "", "", "garlic press"},
	)

	extraction, err := ExtractRecords(openSource(t, path), DefaultExtractOptions())
	if err != nil {
		t.Fatalf("ExtractRecords: %v", err)
	}
	if len(extraction.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(extraction.Records))
	}

	rec := extraction.Records[0]
	if rec.Position != rowDataStart {
		t.Errorf("Position = %d, want %d", rec.Position, rowDataStart)
	}
	if rec.Identifier != "GP-001" {
		t.Errorf("Identifier = %q", rec.Identifier)
	}
	if rec.DisplayName != "Garlic Press" || rec.Brand != "AcmeWare" {
		t.Errorf("DisplayName/Brand = %q/%q", rec.DisplayName, rec.Brand)
	}
	if rec.Classification != "kitchen_tools" || rec.Subclassification != "garlic press" {
		t.Errorf("Classification/Subclassification = %q/%q", rec.Classification, rec.Subclassification)
	}
	if rec.Status != "Active" {
		t.Errorf("Status = %q", rec.Status)
	}
	if rec.LineageRole != models.RoleStandalone {
		t.Errorf("LineageRole = %q, want standalone", rec.LineageRole)
	}

	// Bullet slots keep their fixed width, blanks for missing headers.
	wantBullets := [models.BulletSlots]string{"First bullet", "Second bullet", "", "", ""}
	if rec.BulletPoints != wantBullets {
		t.Errorf("BulletPoints = %v, want %v", rec.BulletPoints, wantBullets)
	}

	// Fields keys are exactly the declared headers.
	if len(rec.Fields) != 10 {
		t.Errorf("len(Fields) = %d, want 10: %v", len(rec.Fields), rec.Fields)
	}
	if rec.Field("Title") != "Garlic Press" {
		t.Errorf("Field(Title) = %q", rec.Field("Title"))
	}
}

func TestExtractRecordsDiscards(t *testing.T) {
	path := templateWorkbook(t,
		[]interface{}{"Active", "Example item", "ABC123"},     // example sentinel
		[]interface{}{"Active", "No identifier", ""},          // empty identifier
		[]interface{}{"Active", "Family", "FAM-P", "", "", "Parent"},
		[]interface{}{"Active", "Real item", "REAL-1"},
	)

	extraction, err := ExtractRecords(openSource(t, path), DefaultExtractOptions())
	if err != nil {
		t.Fatalf("ExtractRecords: %v", err)
	}

	var got []string
	for _, rec := range extraction.Records {
		got = append(got, rec.Identifier)
	}
	if diff := cmp.Diff([]string{"REAL-1"}, got); diff != "" {
		t.Errorf("retained identifiers mismatch:\n%s", diff)
	}
}

func TestExtractRecordsKeepsParentsAndExamplesWhenAsked(t *testing.T) {
	path := templateWorkbook(t,
		[]interface{}{"Active", "Example item", "EXAMPLE"},
		[]interface{}{"Active", "Family", "FAM-P", "", "", "Parent"},
	)

	opts := ExtractOptions{ExcludeParents: false, ExcludeExamples: false}
	extraction, err := ExtractRecords(openSource(t, path), opts)
	if err != nil {
		t.Fatalf("ExtractRecords: %v", err)
	}
	if len(extraction.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(extraction.Records))
	}
	if extraction.Records[1].LineageRole != models.RoleParent {
		t.Errorf("LineageRole = %q, want parent", extraction.Records[1].LineageRole)
	}
}

func TestCollapseDuplicateFulfillment(t *testing.T) {
	tests := []struct {
		name        string
		rows        [][]interface{}
		wantSKUs    []string
		wantDropped int
	}{
		{
			name: "fba arrives second and replaces",
			rows: [][]interface{}{
				{"Active", "Widget", "W-MFN"},
				{"Active", "Widget", "W-FBA-01"},
			},
			wantSKUs:    []string{"W-FBA-01"},
			wantDropped: 1,
		},
		{
			name: "fba arrives first and later duplicates drop",
			rows: [][]interface{}{
				{"Active", "Widget", "W-FBA-01"},
				{"Active", "Widget", "W-MFN"},
			},
			wantSKUs:    []string{"W-FBA-01"},
			wantDropped: 1,
		},
		{
			name: "no fba marker keeps first seen",
			rows: [][]interface{}{
				{"Active", "Widget", "W-ONE"},
				{"Active", "Widget", "W-TWO"},
			},
			wantSKUs:    []string{"W-ONE"},
			wantDropped: 1,
		},
		{
			name: "empty display names are never grouped",
			rows: [][]interface{}{
				{"Active", "", "W-ONE"},
				{"Active", "", "W-TWO"},
			},
			wantSKUs:    []string{"W-ONE", "W-TWO"},
			wantDropped: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := templateWorkbook(t, tt.rows...)
			extraction, err := ExtractRecords(openSource(t, path), DefaultExtractOptions())
			if err != nil {
				t.Fatalf("ExtractRecords: %v", err)
			}

			got := []string{}
			for _, rec := range extraction.Records {
				got = append(got, rec.Identifier)
			}
			if diff := cmp.Diff(tt.wantSKUs, got); diff != "" {
				t.Errorf("retained identifiers mismatch:\n%s", diff)
			}
			if extraction.DroppedDuplicates != tt.wantDropped {
				t.Errorf("DroppedDuplicates = %d, want %d", extraction.DroppedDuplicates, tt.wantDropped)
			}
		})
	}
}

func TestColumnFallback(t *testing.T) {
	// Header row misses the canonical SKU and Title names; extraction
	// falls back to their default positions.
	path := writeWorkbook(t, func(f *excelize.File) {
		f.SetSheetName("Sheet1", TemplateSheet)
		setRow(t, f, TemplateSheet, rowColumnHeaders, "Status", "Renamed Title", "Seller Code")
		setRow(t, f, TemplateSheet, rowDataStart, "Active", "Garlic Press", "GP-001")
	})

	extraction, err := ExtractRecords(openSource(t, path), DefaultExtractOptions())
	if err != nil {
		t.Fatalf("ExtractRecords: %v", err)
	}
	if len(extraction.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(extraction.Records))
	}
	rec := extraction.Records[0]
	if rec.Identifier != "GP-001" {
		t.Errorf("Identifier = %q, want positional fallback to column 3", rec.Identifier)
	}
	if rec.DisplayName != "Garlic Press" {
		t.Errorf("DisplayName = %q, want positional fallback to column 2", rec.DisplayName)
	}
}

func TestExtractRecordsIdempotent(t *testing.T) {
	path := templateWorkbook(t,
		[]interface{}{"Active", "Widget", "W-MFN"},
		[]interface{}{"Active", "Widget", "W-FBA-01"},
		[]interface{}{"Active", "Gadget", "G-001"},
	)
	src := openSource(t, path)

	first, err := ExtractRecords(src, DefaultExtractOptions())
	if err != nil {
		t.Fatalf("first extraction: %v", err)
	}
	second, err := ExtractRecords(src, DefaultExtractOptions())
	if err != nil {
		t.Fatalf("second extraction: %v", err)
	}
	if diff := cmp.Diff(first.Records, second.Records); diff != "" {
		t.Errorf("extraction not idempotent:\n%s", diff)
	}
}

func TestMissingTemplateSheetIsFatal(t *testing.T) {
	path := writeWorkbook(t, func(f *excelize.File) {})

	_, err := ExtractRecords(openSource(t, path), DefaultExtractOptions())
	if !errors.Is(err, ErrSheetNotFound) {
		t.Errorf("ExtractRecords without Template = %v, want ErrSheetNotFound", err)
	}
}

func TestParseLineageRole(t *testing.T) {
	tests := []struct {
		in   string
		want models.LineageRole
	}{
		{"", models.RoleStandalone},
		{"Parent", models.RoleParent},
		{"child", models.RoleChild},
		{"Child SKU", models.RoleChild},
		{"mystery", models.RoleUnknown},
	}
	for _, tt := range tests {
		if got := parseLineageRole(tt.in); got != tt.want {
			t.Errorf("parseLineageRole(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
