package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByJournalID struct {
	JournalID uuid.UUID
}

func (s ByJournalID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("journal_id = ?", s.JournalID)
}

type ByJournalIDs struct {
	JournalIDs []uuid.UUID
}

func (s ByJournalIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("journal_id IN ?", s.JournalIDs)
}

// NotInJournals excludes entries belonging to the given journals. A no-op
// for an empty list.
type NotInJournals struct {
	JournalIDs []uuid.UUID
}

func (s NotInJournals) Apply(db *gorm.DB) *gorm.DB {
	if len(s.JournalIDs) == 0 {
		return db
	}
	return db.Where("journal_id NOT IN ?", s.JournalIDs)
}

// EntrySearchQuery matches the query as a case-insensitive substring of the
// entry title or content.
type EntrySearchQuery struct {
	Query string
}

func (s EntrySearchQuery) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
}
