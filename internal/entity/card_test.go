package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCardSummary(t *testing.T) {
	tests := []struct {
		name string
		card Card
		want string
	}{
		{
			name: "text passes body through",
			card: Card{Type: CardTypeText, Body: "wrote a bit"},
			want: "wrote a bit",
		},
		{
			name: "spreadsheet passes body through",
			card: Card{Type: CardTypeSpreadsheet, Body: "{\"cells\":[]}"},
			want: "{\"cells\":[]}",
		},
		{
			name: "checkbox counts checked items",
			card: Card{Type: CardTypeCheckbox, Items: []CheckboxItem{
				{Text: "a", Checked: true},
				{Text: "b"},
				{Text: "c", Checked: true},
			}},
			want: "2/3 completed",
		},
		{
			name: "checkbox without items",
			card: Card{Type: CardTypeCheckbox},
			want: "Checklist",
		},
		{
			name: "checkbox ignores body",
			card: Card{Type: CardTypeCheckbox, Body: "ignored", Items: []CheckboxItem{{Text: "a"}}},
			want: "0/1 completed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.card.Summary())
		})
	}
}

func TestCardChecklistItems(t *testing.T) {
	assert.Nil(t, Card{Type: CardTypeText, Items: []CheckboxItem{{Text: "stale"}}}.ChecklistItems())
	assert.Equal(t, []CheckboxItem{}, Card{Type: CardTypeCheckbox}.ChecklistItems())
	assert.Equal(t,
		[]CheckboxItem{{Text: "a", Checked: true}},
		Card{Type: CardTypeCheckbox, Items: []CheckboxItem{{Text: "a", Checked: true}}}.ChecklistItems(),
	)
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, NormalizeTags([]string{"a", "b", "a", "c", "b"}))
	assert.Empty(t, NormalizeTags(nil))
}

func TestLinkIsSelf(t *testing.T) {
	id := uuid.New()
	link := Link{
		SourceType: NodeTypeEntry, SourceId: id,
		TargetType: NodeTypeEntry, TargetId: id,
	}
	assert.True(t, link.IsSelf())

	link.TargetType = NodeTypeJournal
	assert.False(t, link.IsSelf())

	link.TargetType = NodeTypeEntry
	link.TargetId = uuid.New()
	assert.False(t, link.IsSelf())
}
