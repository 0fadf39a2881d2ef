package dto

import (
	"time"

	"github.com/google/uuid"
)

type CheckboxItemPayload struct {
	Text    string `json:"text" validate:"required"`
	Checked bool   `json:"checked"`
}

type CreateEntryRequest struct {
	CardType      string                `json:"card_type" validate:"required,oneof=text checkbox spreadsheet audio"`
	Title         string                `json:"title" validate:"omitempty,max=255"`
	Content       string                `json:"content"`
	CheckboxItems []CheckboxItemPayload `json:"checkbox_items" validate:"omitempty,dive"`
	Mood          string                `json:"mood" validate:"omitempty,oneof=happy sad tired angry anxious grateful calm thoughtful confident stressed loved neutral"`
}

// UpdateEntryRequest distinguishes absent fields from zero values with
// pointers, matching partial-update semantics.
type UpdateEntryRequest struct {
	Id            uuid.UUID             `json:"-"`
	JournalId     *uuid.UUID            `json:"journal_id"`
	CardType      *string               `json:"card_type" validate:"omitempty,oneof=text checkbox spreadsheet audio"`
	Title         *string               `json:"title" validate:"omitempty,max=255"`
	Content       string                `json:"content"`
	CheckboxItems []CheckboxItemPayload `json:"checkbox_items" validate:"omitempty,dive"`
	Mood          *string               `json:"mood" validate:"omitempty,oneof=happy sad tired angry anxious grateful calm thoughtful confident stressed loved neutral"`
}

type ReorderEntryItem struct {
	Id           uuid.UUID `json:"id" validate:"required"`
	DisplayOrder *int      `json:"display_order" validate:"omitempty,min=0"`
	Pinned       *bool     `json:"pinned"`
}

type ReorderEntriesRequest struct {
	Entries []ReorderEntryItem `json:"entries" validate:"required,dive"`
}

type PinEntryRequest struct {
	Pinned *bool `json:"pinned" validate:"required"`
}

type EntryResponse struct {
	Id            uuid.UUID             `json:"id"`
	JournalId     uuid.UUID             `json:"journal_id"`
	UserId        uuid.UUID             `json:"user_id"`
	CardType      string                `json:"card_type"`
	Title         string                `json:"title,omitempty"`
	Content       string                `json:"content"`
	CheckboxItems []CheckboxItemPayload `json:"checkbox_items,omitempty"`
	Mood          string                `json:"mood,omitempty"`
	Pinned        bool                  `json:"pinned"`
	DisplayOrder  *int                  `json:"display_order"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     *time.Time            `json:"updated_at"`
}
