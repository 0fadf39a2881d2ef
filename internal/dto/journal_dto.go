package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateJournalRequest struct {
	Title string   `json:"title" validate:"required,max=255"`
	Tags  []string `json:"tags" validate:"omitempty,dive,max=64"`
}

type UpdateJournalRequest struct {
	Id    uuid.UUID `json:"-"`
	Title *string   `json:"title" validate:"omitempty,max=255"`
	Tags  *[]string `json:"tags" validate:"omitempty,dive,max=64"`
}

type JournalResponse struct {
	Id        uuid.UUID        `json:"id"`
	Title     string           `json:"title"`
	Tags      []string         `json:"tags"`
	UserId    uuid.UUID        `json:"user_id"`
	Entries   []*EntryResponse `json:"entries,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt *time.Time       `json:"updated_at"`
}
