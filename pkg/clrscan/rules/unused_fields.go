package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/clrscan/clrscan-go/pkg/clrscan/models"
)

// alwaysIgnoredFields are template headers that are routinely empty and
// never worth reporting.
var alwaysIgnoredFields = map[string]struct{}{
	"Status":           {},
	"Parent SKU":       {},
	"Parentage":        {},
	"Variation Theme":  {},
	"Update Delete":    {},
	"Product Tax Code": {},
}

// UnusedFields finds declared template headers that no record populates.
// It emits a single catalog-level finding, not one per record.
type UnusedFields struct{}

func (UnusedFields) Name() string { return "unused-fields" }

func (UnusedFields) Description() string {
	return "Find template attributes that aren't being used in any listings"
}

func (UnusedFields) Execute(records []models.Record, _ models.FieldIndex) []models.Finding {
	// Fields keys are exactly the declared headers, so any record carries
	// the full declared set.
	declared := make(map[string]struct{})
	used := make(map[string]struct{})
	for _, rec := range records {
		for name, value := range rec.Fields {
			declared[name] = struct{}{}
			if strings.TrimSpace(value) != "" {
				used[name] = struct{}{}
			}
		}
	}

	var unused []string
	for name := range declared {
		if _, ok := used[name]; ok {
			continue
		}
		if _, ok := alwaysIgnoredFields[name]; ok {
			continue
		}
		unused = append(unused, name)
	}
	if len(unused) == 0 {
		return nil
	}
	sort.Strings(unused)

	return []models.Finding{{
		Field:    "Template Fields",
		Severity: models.SeverityInfo,
		Message:  fmt.Sprintf("Found %d unused template fields that might be valuable", len(unused)),
		Details: map[string]models.Detail{
			"unused_fields": models.List(unused),
		},
	}}
}
