package engine

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/clrscan/clrscan-go/pkg/clrscan/models"
)

// stubRule is a minimal Rule for engine tests.
type stubRule struct {
	name        string
	description string
	findings    []models.Finding
}

func (r stubRule) Name() string        { return r.name }
func (r stubRule) Description() string { return r.description }

func (r stubRule) Execute(_ []models.Record, _ models.FieldIndex) []models.Finding {
	return r.findings
}

func staticLoader(records []models.Record) RecordLoader {
	return func() ([]models.Record, error) { return records, nil }
}

func TestRegisterRejectsEmptyName(t *testing.T) {
	eng := New(staticLoader(nil), models.FieldIndex{})
	if err := eng.Register(stubRule{}); !errors.Is(err, ErrEmptyRuleName) {
		t.Errorf("Register(empty name) = %v, want ErrEmptyRuleName", err)
	}
}

func TestRegisterLastWins(t *testing.T) {
	eng := New(staticLoader(nil), models.FieldIndex{})
	if err := eng.Register(stubRule{name: "a", description: "first"}); err != nil {
		t.Fatal(err)
	}
	if err := eng.Register(stubRule{name: "b", description: "second"}); err != nil {
		t.Fatal(err)
	}
	if err := eng.Register(stubRule{name: "a", description: "replaced"}); err != nil {
		t.Fatal(err)
	}

	want := []RuleInfo{
		{Name: "a", Description: "replaced"},
		{Name: "b", Description: "second"},
	}
	if diff := cmp.Diff(want, eng.List()); diff != "" {
		t.Errorf("List mismatch:\n%s", diff)
	}
}

func TestRunUnknownRule(t *testing.T) {
	eng := New(staticLoader(nil), models.FieldIndex{})
	_, err := eng.Run("nonexistent")
	if !errors.Is(err, ErrUnknownRule) {
		t.Errorf("Run(unknown) = %v, want ErrUnknownRule", err)
	}
}

func TestRunReportCounts(t *testing.T) {
	findings := []models.Finding{
		{Position: 7, Identifier: "SKU-1", Severity: models.SeverityWarning, Message: "a"},
		{Position: 8, Identifier: "SKU-1", Severity: models.SeverityWarning, Message: "b"},
		{Position: 9, Identifier: "SKU-2", Severity: models.SeverityWarning, Message: "c"},
		{Severity: models.SeverityInfo, Message: "catalog-level"},
	}
	records := []models.Record{{Position: 7, Identifier: "SKU-1"}}

	eng := New(staticLoader(records), models.FieldIndex{})
	if err := eng.Register(stubRule{name: "stub", description: "desc", findings: findings}); err != nil {
		t.Fatal(err)
	}

	report, err := eng.Run("stub")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.TotalFindings != 4 {
		t.Errorf("TotalFindings = %d, want 4", report.TotalFindings)
	}
	// Catalog-level findings carry no identifier and are not counted.
	if report.AffectedIdentifiers != 2 {
		t.Errorf("AffectedIdentifiers = %d, want 2", report.AffectedIdentifiers)
	}
	if report.TotalRecords != 1 {
		t.Errorf("TotalRecords = %d, want 1", report.TotalRecords)
	}
	if report.RuleName != "stub" || report.RuleDescription != "desc" {
		t.Errorf("rule identity = %q/%q", report.RuleName, report.RuleDescription)
	}
	if report.ID == "" {
		t.Error("expected non-empty report ID")
	}
	if report.GeneratedAt.IsZero() {
		t.Error("expected GeneratedAt to be set")
	}
}

func TestSnapshotLoadedOnce(t *testing.T) {
	calls := 0
	loader := func() ([]models.Record, error) {
		calls++
		return []models.Record{{Position: 7, Identifier: "SKU-1"}}, nil
	}

	eng := New(loader, models.FieldIndex{})
	eng.Register(stubRule{name: "a", description: "a"})
	eng.Register(stubRule{name: "b", description: "b"})

	if _, err := eng.Run("a"); err != nil {
		t.Fatal(err)
	}
	if _, err := eng.Run("b"); err != nil {
		t.Fatal(err)
	}
	if _, err := eng.RunAll(); err != nil {
		t.Fatal(err)
	}

	if calls != 1 {
		t.Errorf("loader called %d times, want 1", calls)
	}
}

func TestSnapshotLoadErrorPropagates(t *testing.T) {
	loadErr := errors.New("boom")
	eng := New(func() ([]models.Record, error) { return nil, loadErr }, models.FieldIndex{})
	eng.Register(stubRule{name: "a", description: "a"})

	if _, err := eng.Run("a"); !errors.Is(err, loadErr) {
		t.Errorf("Run = %v, want load error", err)
	}
	if _, err := eng.RunAll(); !errors.Is(err, loadErr) {
		t.Errorf("RunAll = %v, want load error", err)
	}
}

func TestRunAllRegistrationOrder(t *testing.T) {
	eng := New(staticLoader(nil), models.FieldIndex{})
	names := []string{"third", "first", "second"}
	for _, name := range names {
		if err := eng.Register(stubRule{name: name, description: name}); err != nil {
			t.Fatal(err)
		}
	}

	reports, err := eng.RunAll()
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}

	got := make([]string, len(reports))
	for i, r := range reports {
		got[i] = r.RuleName
	}
	if diff := cmp.Diff(names, got); diff != "" {
		t.Errorf("RunAll order mismatch:\n%s", diff)
	}
}
