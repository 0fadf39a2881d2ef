package contract

import (
	"context"

	"heyrube-be/internal/entity"
	"heyrube-be/internal/repository/specification"

	"github.com/google/uuid"
)

// EntryRepository is the store adapter for journal entries. FindOne/FindAll
// see only active rows; the Trashed variants see only soft-deleted rows.
type EntryRepository interface {
	Create(ctx context.Context, entry *entity.JournalEntry) error
	Update(ctx context.Context, entry *entity.JournalEntry) error
	// SetDisplayOrder writes only the display_order column; nil clears it.
	SetDisplayOrder(ctx context.Context, id uuid.UUID, order *int) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByJournal(ctx context.Context, journalId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.JournalEntry, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.JournalEntry, error)
	// FindAllAny includes soft-deleted rows.
	FindAllAny(ctx context.Context, specs ...specification.Specification) ([]*entity.JournalEntry, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	FindOneTrashed(ctx context.Context, specs ...specification.Specification) (*entity.JournalEntry, error)
	FindAllTrashed(ctx context.Context, specs ...specification.Specification) ([]*entity.JournalEntry, error)
	Restore(ctx context.Context, id uuid.UUID) error
	RestoreByJournal(ctx context.Context, journalId uuid.UUID) error
	HardDelete(ctx context.Context, id uuid.UUID) error
	HardDeleteByJournal(ctx context.Context, journalId uuid.UUID) error
}
