package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateLinkRequest struct {
	SourceType string    `json:"source_type" validate:"required,oneof=entry journal"`
	SourceId   uuid.UUID `json:"source_id" validate:"required"`
	TargetType string    `json:"target_type" validate:"required,oneof=entry journal"`
	TargetId   uuid.UUID `json:"target_id" validate:"required"`
	Label      string    `json:"label" validate:"omitempty,max=64"`
}

type DeleteLinkRequest struct {
	SourceType string    `json:"source_type" validate:"required,oneof=entry journal"`
	SourceId   uuid.UUID `json:"source_id" validate:"required"`
	TargetType string    `json:"target_type" validate:"required,oneof=entry journal"`
	TargetId   uuid.UUID `json:"target_id" validate:"required"`
}

type LinkResponse struct {
	Id         uuid.UUID  `json:"id"`
	UserId     uuid.UUID  `json:"user_id"`
	SourceType string     `json:"source_type"`
	SourceId   uuid.UUID  `json:"source_id"`
	TargetType string     `json:"target_type"`
	TargetId   uuid.UUID  `json:"target_id"`
	Label      string     `json:"label"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

// CreateLinkResponse reports whether the link was created or an equivalent
// link (in either orientation) already existed.
type CreateLinkResponse struct {
	Link    *LinkResponse `json:"link"`
	Created bool          `json:"created"`
}

type GraphNode struct {
	Id        uuid.UUID  `json:"id"`
	Type      string     `json:"type"`
	Label     string     `json:"label"`
	JournalId *uuid.UUID `json:"journal_id,omitempty"`
}

type GraphEndpoint struct {
	Id   uuid.UUID `json:"id"`
	Type string    `json:"type"`
}

type GraphEdge struct {
	Source GraphEndpoint `json:"source"`
	Target GraphEndpoint `json:"target"`
	Label  string        `json:"label"`
}

type GraphResponse struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

type SearchResponse struct {
	Journals []GraphNode `json:"journals"`
	Entries  []GraphNode `json:"entries"`
}
