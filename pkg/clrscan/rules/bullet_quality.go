package rules

import (
	"fmt"
	"strings"

	"github.com/clrscan/clrscan-go/pkg/clrscan/models"
)

// Bullet length thresholds.
const (
	minBulletLength      = 50
	idealMinBulletLength = 100
	maxBulletLength      = 500
)

// reportBelowScore is the score threshold under which a bullet is
// reported.
const reportBelowScore = 4

// Keyword sets used by the slot-position heuristics.
var (
	benefitKeywords = []string{
		"help", "reduce", "improve", "enhance", "protect", "support",
		"boost", "strengthen", "promote", "relief", "solve", "prevent",
	}
	audienceKeywords = []string{
		"for", "ideal for", "perfect for", "designed for", "suitable for",
		"men", "women", "kids", "children", "adults", "teens",
		"professional", "beginners", "athletes", "active",
	}
	differentiatorKeywords = []string{
		"only", "unique", "exclusive", "patented", "certified", "award",
		"unlike", "compared to", "vs", "versus", "instead of", "alternative",
	}
	vagueMarketingPhrases = []string{
		"premium quality", "high quality", "best in class", "world class",
		"industry leading", "revolutionary", "amazing", "incredible",
	}
)

// bulletScore is the evaluation of one bullet slot.
type bulletScore struct {
	score       int
	issues      []string
	suggestions []string
}

// BulletQuality scores every bullet slot on a 1-5 integrity scale and
// reports bullets scoring below 4, plus a catalog-level summary with the
// score tier distribution.
type BulletQuality struct{}

func (BulletQuality) Name() string { return "bullet-quality" }

func (BulletQuality) Description() string {
	return "Score bullet points against length, specificity, and slot-positioning heuristics"
}

func (BulletQuality) Execute(records []models.Record, _ models.FieldIndex) []models.Finding {
	var findings []models.Finding
	tiers := make(map[int]int) // score -> bullet count
	var catalogTotal, catalogCount int

	for _, rec := range records {
		var recordTotal, recordCount int
		var low []models.Finding

		for slot := 1; slot <= models.BulletSlots; slot++ {
			text := rec.BulletPoints[slot-1]
			eval := evaluateBullet(text, slot)
			tiers[eval.score]++
			if strings.TrimSpace(text) != "" {
				recordTotal += eval.score
				recordCount++
				catalogTotal += eval.score
				catalogCount++
			}
			if eval.score >= reportBelowScore {
				continue
			}
			low = append(low, models.Finding{
				Position:   rec.Position,
				Identifier: rec.Identifier,
				Field:      fmt.Sprintf("Bullet Point %d", slot),
				Severity:   models.SeverityWarning,
				Message: fmt.Sprintf("Bullet %d scores %d/5: %s",
					slot, eval.score, strings.Join(eval.issues, ", ")),
				Classification: rec.Classification,
				Details: map[string]models.Detail{
					"score":       models.Number(float64(eval.score)),
					"issues":      models.List(eval.issues),
					"suggestions": models.List(eval.suggestions),
					"bullet_text": models.Text(truncate(text, 100)),
				},
			})
		}

		// Attach the per-record average to each of its findings.
		if recordCount > 0 {
			avg := float64(recordTotal) / float64(recordCount)
			for i := range low {
				low[i].Details["record_average"] = models.Number(avg)
			}
		}
		findings = append(findings, low...)
	}

	if catalogCount > 0 {
		findings = append(findings, bulletSummary(tiers, catalogTotal, catalogCount))
	}
	return findings
}

// bulletSummary builds the catalog-wide tier distribution finding.
func bulletSummary(tiers map[int]int, total, count int) models.Finding {
	distribution := make([]string, 0, 6)
	for score := 5; score >= 0; score-- {
		distribution = append(distribution, fmt.Sprintf("%d/5: %d", score, tiers[score]))
	}
	average := float64(total) / float64(count)
	return models.Finding{
		Field:    "Bullet Points",
		Severity: models.SeverityInfo,
		Message:  fmt.Sprintf("Catalog bullet quality averages %.1f/5 across %d populated bullets", average, count),
		Details: map[string]models.Detail{
			"average":      models.Number(average),
			"distribution": models.List(distribution),
		},
	}
}

// evaluateBullet scores one bullet slot. The score starts at 5, loses
// fixed penalties per issue, and is clamped to [1,5]. An empty bullet
// scores exactly 0.
func evaluateBullet(text string, slot int) bulletScore {
	text = strings.TrimSpace(text)
	if text == "" {
		return bulletScore{
			score:       0,
			issues:      []string{"Bullet point is empty"},
			suggestions: []string{"Add content to this bullet point"},
		}
	}

	lowered := strings.ToLower(text)
	eval := bulletScore{score: 5}
	length := len([]rune(text))

	if length < minBulletLength {
		eval.add(-2,
			fmt.Sprintf("Too short (%d chars, min %d)", length, minBulletLength),
			"Expand with more detail and specifics")
	} else if length < idealMinBulletLength {
		eval.add(-1,
			fmt.Sprintf("Short (%d chars, ideal %d+)", length, idealMinBulletLength),
			"Consider adding more specific details")
	}
	if length > maxBulletLength {
		eval.add(-1,
			fmt.Sprintf("Too long (%d chars, max %d)", length, maxBulletLength),
			"Trim to key points, long bullets get skipped")
	}

	if vague := containsAny(lowered, vagueMarketingPhrases); len(vague) > 0 {
		eval.add(-1,
			fmt.Sprintf("Vague marketing: %s", strings.Join(vague, ", ")),
			"Replace with specific, factual claims")
	}

	if allCapsRatio(text) > 0.3 {
		eval.add(-1, "Excessive ALL CAPS",
			"Use sentence case; reserve caps for brand names only")
	}

	switch slot {
	case 1:
		if len(containsAny(lowered, benefitKeywords)) == 0 {
			eval.add(-1, "Should lead with Hero Benefit",
				"Start with the #1 reason to buy: what problem does it solve?")
		}
	case 2:
		if len(containsAny(lowered, audienceKeywords)) == 0 {
			eval.add(-1, "Should state who it's for",
				"Mention target user, use-case, or lifestyle")
		}
	case 3:
		if len(containsAny(lowered, differentiatorKeywords)) == 0 {
			eval.add(-1, "Should differentiate from competitors",
				"Mention certifications, unique ingredients, or 'why this vs. others'")
		}
	}

	if !strings.ContainsAny(text, "0123456789") {
		eval.add(-1, "No specific numbers or data points",
			"Add concrete specs (oz, count, %, time, dimensions)")
	}

	if eval.score < 1 {
		eval.score = 1
	}
	if eval.score > 5 {
		eval.score = 5
	}
	return eval
}

func (b *bulletScore) add(penalty int, issue, suggestion string) {
	b.score += penalty
	b.issues = append(b.issues, issue)
	b.suggestions = append(b.suggestions, suggestion)
}

// allCapsRatio is the share of words longer than 3 characters written
// entirely in upper case.
func allCapsRatio(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}
	caps := 0
	for _, w := range words {
		if len(w) > 3 && w == strings.ToUpper(w) && w != strings.ToLower(w) {
			caps++
		}
	}
	return float64(caps) / float64(len(words))
}
