package dto

import (
	"time"

	"github.com/google/uuid"
)

type TrashedJournalResponse struct {
	Id        uuid.UUID        `json:"id"`
	Title     string           `json:"title"`
	Tags      []string         `json:"tags"`
	UserId    uuid.UUID        `json:"user_id"`
	Entries   []*EntryResponse `json:"entries"`
	CreatedAt time.Time        `json:"created_at"`
	DeletedAt *time.Time       `json:"deleted_at"`
}

type TrashedEntryResponse struct {
	EntryResponse
	JournalTitle string     `json:"journal_title,omitempty"`
	DeletedAt    *time.Time `json:"deleted_at"`
}
