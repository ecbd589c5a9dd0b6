package rules

import (
	"fmt"
	"strings"

	"github.com/clrscan/clrscan-go/pkg/clrscan/models"
)

// maxTitleLength is the listing title character limit.
const maxTitleLength = 200

// prohibitedTitleChars are characters never allowed in titles.
const prohibitedTitleChars = "!$?_{}^¬¦"

// LongTitles finds titles exceeding the length limit.
type LongTitles struct{}

func (LongTitles) Name() string { return "long-titles" }

func (LongTitles) Description() string {
	return fmt.Sprintf("Find titles exceeding %d characters", maxTitleLength)
}

func (LongTitles) Execute(records []models.Record, _ models.FieldIndex) []models.Finding {
	var findings []models.Finding
	for _, rec := range records {
		length := len([]rune(rec.DisplayName))
		if length <= maxTitleLength {
			continue
		}
		findings = append(findings, models.Finding{
			Position:       rec.Position,
			Identifier:     rec.Identifier,
			Field:          "Title",
			Severity:       models.SeverityWarning,
			Message:        fmt.Sprintf("Title length %d exceeds %d characters", length, maxTitleLength),
			Classification: rec.Classification,
			Details: map[string]models.Detail{
				"title":  models.Text(truncate(rec.DisplayName, 100)),
				"length": models.Number(float64(length)),
			},
		})
	}
	return findings
}

// TitleProhibitedChars finds titles containing prohibited characters.
type TitleProhibitedChars struct{}

func (TitleProhibitedChars) Name() string { return "title-prohibited-chars" }

func (TitleProhibitedChars) Description() string {
	return fmt.Sprintf("Find titles containing prohibited characters (%s)", prohibitedTitleChars)
}

func (TitleProhibitedChars) Execute(records []models.Record, _ models.FieldIndex) []models.Finding {
	var findings []models.Finding
	for _, rec := range records {
		if rec.DisplayName == "" {
			continue
		}
		found := findProhibited(rec.DisplayName, prohibitedTitleChars)
		if len(found) == 0 {
			continue
		}
		findings = append(findings, models.Finding{
			Position:       rec.Position,
			Identifier:     rec.Identifier,
			Field:          "Title",
			Severity:       models.SeverityWarning,
			Message:        fmt.Sprintf("Title contains prohibited characters: %s", strings.Join(found, ", ")),
			Classification: rec.Classification,
			Details: map[string]models.Detail{
				"prohibited_chars": models.List(found),
			},
		})
	}
	return findings
}
