package entity

import (
	"time"

	"github.com/google/uuid"
)

type NodeType string

const (
	NodeTypeEntry   NodeType = "entry"
	NodeTypeJournal NodeType = "journal"
)

const DefaultLinkLabel = "linked to"

// Link is an undirected edge between two nodes (entries or journals). The
// stored tuple keeps the creation-time orientation, but lookups treat the
// swapped tuple as the same edge.
type Link struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	SourceType NodeType
	SourceId   uuid.UUID
	TargetType NodeType
	TargetId   uuid.UUID
	Label      string
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

// IsSelf reports whether both endpoints name the same node.
func (l Link) IsSelf() bool {
	return l.SourceType == l.TargetType && l.SourceId == l.TargetId
}
