package output

import (
	"encoding/json"
	"time"

	"github.com/clrscan/clrscan-go/pkg/clrscan/models"
)

// Envelope is the top-level JSON document wrapping a scan's reports.
type Envelope struct {
	GeneratedAt              time.Time       `json:"generated_at"`
	TotalRules               int             `json:"total_rules"`
	TotalFindings            int             `json:"total_findings"`
	TotalAffectedIdentifiers int             `json:"total_affected_skus"`
	Reports                  []models.Report `json:"reports"`
}

// NewEnvelope aggregates reports into a JSON envelope.
func NewEnvelope(reports []models.Report) Envelope {
	env := Envelope{
		GeneratedAt: time.Now(),
		TotalRules:  len(reports),
		Reports:     reports,
	}
	if env.Reports == nil {
		env.Reports = []models.Report{}
	}
	for _, r := range reports {
		env.TotalFindings += r.TotalFindings
		env.TotalAffectedIdentifiers += r.AffectedIdentifiers
	}
	return env
}

// ToJSON serializes reports to JSON for agent/script consumption.
func ToJSON(reports []models.Report, pretty bool) ([]byte, error) {
	env := NewEnvelope(reports)
	if pretty {
		return json.MarshalIndent(env, "", "  ")
	}
	return json.Marshal(env)
}
