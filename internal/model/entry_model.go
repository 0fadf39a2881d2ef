package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type JournalEntry struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	JournalId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	UserId        uuid.UUID      `gorm:"type:uuid;not null;index"`
	CardType      string         `gorm:"type:varchar(32);not null;default:text"`
	Title         string         `gorm:"type:varchar(255)"`
	Content       string         `gorm:"type:text"`
	CheckboxItems datatypes.JSON `gorm:"type:jsonb"`
	Mood          string         `gorm:"type:varchar(32)"`
	Pinned        bool           `gorm:"not null;default:false"`
	DisplayOrder  *int           `gorm:"index"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (JournalEntry) TableName() string {
	return "journal_entries"
}
