// Package rules implements the built-in catalog validation rules.
package rules

import (
	"strings"

	"github.com/clrscan/clrscan-go/pkg/clrscan/engine"
)

// Defaults returns the built-in rule set in its standard registration
// order.
func Defaults() []engine.Rule {
	return []engine.Rule{
		MissingAttributes{},
		MissingAnyAttributes{},
		LongTitles{},
		TitleProhibitedChars{},
		ProhibitedChars{},
		ProductTypeMismatch{},
		MissingVariations{},
		UnusedFields{},
		BulletQuality{},
		BulletProhibitedContent{},
		BulletFormatting{},
	}
}

// findProhibited returns the distinct prohibited characters present in
// s, in first-occurrence order so output stays deterministic.
func findProhibited(s, prohibited string) []string {
	var found []string
	seen := make(map[rune]bool)
	for _, r := range s {
		if strings.ContainsRune(prohibited, r) && !seen[r] {
			seen[r] = true
			found = append(found, string(r))
		}
	}
	return found
}

// truncate shortens display text for finding details.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

// containsAny reports whether lowered contains any of the given
// lower-case phrases, returning the matches in list order.
func containsAny(lowered string, phrases []string) []string {
	var found []string
	for _, p := range phrases {
		if strings.Contains(lowered, p) {
			found = append(found, p)
		}
	}
	return found
}
