package entity

import (
	"time"

	"github.com/google/uuid"
)

type JournalEntry struct {
	Id            uuid.UUID
	JournalId     uuid.UUID
	UserId        uuid.UUID
	CardType      CardType
	Title         string
	Content       string
	CheckboxItems []CheckboxItem
	Mood          string
	Pinned        bool
	// DisplayOrder is nil for pinned entries; unpinned active entries of a
	// journal hold the compact sequence 0..k-1.
	DisplayOrder *int
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	DeletedAt    *time.Time
	IsDeleted    bool
}
