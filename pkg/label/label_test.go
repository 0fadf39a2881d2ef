package label

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForEntry(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		cardType string
		content  string
		want     string
	}{
		{
			name:  "title wins",
			title: "Morning pages",
			want:  "Morning pages",
		},
		{
			name:     "blank title falls through",
			title:    "   ",
			cardType: "checkbox",
			want:     "Checklist",
		},
		{
			name:     "checkbox placeholder",
			cardType: "checkbox",
			content:  "2/3 completed",
			want:     "Checklist",
		},
		{
			name:     "content preview",
			cardType: "text",
			content:  "went for a long walk today",
			want:     "went for a...",
		},
		{
			name:     "markup stripped before preview",
			cardType: "text",
			content:  "<p>went <b>for</b> a walk</p>",
			want:     "went for a...",
		},
		{
			name:     "short content falls back",
			cardType: "text",
			content:  "hi there",
			want:     "Text Entry",
		},
		{
			name:     "empty content falls back",
			cardType: "text",
			want:     "Text Entry",
		},
		{
			name:     "markup only falls back",
			cardType: "text",
			content:  "<br><hr>",
			want:     "Text Entry",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ForEntry(tt.title, tt.cardType, tt.content))
		})
	}
}
