package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id        uuid.UUID
	FullName  string
	Email     string
	Password  string // bcrypt hash
	CreatedAt time.Time
	UpdatedAt *time.Time
}
