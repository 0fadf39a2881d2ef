package contract

import (
	"context"

	"heyrube-be/internal/entity"
	"heyrube-be/internal/repository/specification"

	"github.com/google/uuid"
)

// JournalRepository is the store adapter for journals. FindOne/FindAll see
// only active rows; the Any variants include trashed rows (a journal can be
// in the trash and still be referenced by links).
type JournalRepository interface {
	Create(ctx context.Context, journal *entity.Journal) error
	Update(ctx context.Context, journal *entity.Journal) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Journal, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Journal, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	FindOneAny(ctx context.Context, specs ...specification.Specification) (*entity.Journal, error)
	FindAllAny(ctx context.Context, specs ...specification.Specification) ([]*entity.Journal, error)
	FindAllTrashed(ctx context.Context, specs ...specification.Specification) ([]*entity.Journal, error)
	Restore(ctx context.Context, id uuid.UUID) error
	HardDelete(ctx context.Context, id uuid.UUID) error
}
