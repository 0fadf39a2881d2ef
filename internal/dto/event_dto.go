package dto

import (
	"time"

	"github.com/google/uuid"
)

// ActivityMessage is the payload published on the in-process event bus for
// journal and entry lifecycle events.
type ActivityMessage struct {
	Event      string    `json:"event"`
	UserId     uuid.UUID `json:"user_id"`
	SubjectId  uuid.UUID `json:"subject_id"`
	JournalId  uuid.UUID `json:"journal_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
