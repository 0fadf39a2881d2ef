package model

import (
	"time"

	"github.com/google/uuid"
)

type Link struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID `gorm:"type:uuid;not null;index"`
	SourceType string    `gorm:"type:varchar(16);not null"`
	SourceId   uuid.UUID `gorm:"type:uuid;not null;index"`
	TargetType string    `gorm:"type:varchar(16);not null"`
	TargetId   uuid.UUID `gorm:"type:uuid;not null;index"`
	Label      string    `gorm:"type:varchar(64);not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (Link) TableName() string {
	return "links"
}
