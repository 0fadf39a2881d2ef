// Package label derives human-readable node labels for graph and search
// results.
package label

import (
	"regexp"
	"strings"
)

const (
	checklistLabel = "Checklist"
	fallbackLabel  = "Text Entry"
	previewWords   = 3
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// ForEntry picks a label for an entry node: the title when present, the
// checklist placeholder for checkbox cards, otherwise a three-word preview
// of the content.
func ForEntry(title, cardType, content string) string {
	if strings.TrimSpace(title) != "" {
		return title
	}
	if cardType == "checkbox" {
		return checklistLabel
	}
	words := strings.Fields(stripTags(content))
	if len(words) < previewWords {
		return fallbackLabel
	}
	return strings.Join(words[:previewWords], " ") + "..."
}

func stripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}
