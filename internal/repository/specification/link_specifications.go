package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LinkEndpoints filters by the exact stored (source, target) tuple. Callers
// query twice, swapping the tuple, to resolve a link in either orientation.
type LinkEndpoints struct {
	SourceType string
	SourceID   uuid.UUID
	TargetType string
	TargetID   uuid.UUID
}

func (s LinkEndpoints) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("source_type = ? AND source_id = ? AND target_type = ? AND target_id = ?",
		s.SourceType, s.SourceID, s.TargetType, s.TargetID)
}

// LinkTouchesNode matches links where the node appears as source or target.
type LinkTouchesNode struct {
	NodeType string
	NodeID   uuid.UUID
}

func (s LinkTouchesNode) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("(source_type = ? AND source_id = ?) OR (target_type = ? AND target_id = ?)",
		s.NodeType, s.NodeID, s.NodeType, s.NodeID)
}
