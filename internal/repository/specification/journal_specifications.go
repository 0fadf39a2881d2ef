package specification

import "gorm.io/gorm"

// JournalTitleSearch matches the query as a case-insensitive substring of
// the journal title.
type JournalTitleSearch struct {
	Query string
}

func (s JournalTitleSearch) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("title ILIKE ?", "%"+s.Query+"%")
}
