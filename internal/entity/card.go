package entity

import "fmt"

type CardType string

const (
	CardTypeText        CardType = "text"
	CardTypeCheckbox    CardType = "checkbox"
	CardTypeSpreadsheet CardType = "spreadsheet"
	CardTypeAudio       CardType = "audio"
)

type CheckboxItem struct {
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

// Card is the typed content of a journal entry. Body carries the raw content
// for text/spreadsheet/audio cards; Items carries the checklist for checkbox
// cards.
type Card struct {
	Type  CardType
	Body  string
	Items []CheckboxItem
}

// Summary derives the stored content string for a card. Checkbox cards
// summarize their items; every other type passes the body through.
func (c Card) Summary() string {
	if c.Type != CardTypeCheckbox {
		return c.Body
	}
	if len(c.Items) == 0 {
		return "Checklist"
	}
	checked := 0
	for _, item := range c.Items {
		if item.Checked {
			checked++
		}
	}
	return fmt.Sprintf("%d/%d completed", checked, len(c.Items))
}

// ChecklistItems returns the items to persist: nil for non-checkbox cards so
// a type change clears any previous checklist.
func (c Card) ChecklistItems() []CheckboxItem {
	if c.Type != CardTypeCheckbox {
		return nil
	}
	if c.Items == nil {
		return []CheckboxItem{}
	}
	return c.Items
}
