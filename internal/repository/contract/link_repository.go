package contract

import (
	"context"

	"heyrube-be/internal/entity"
	"heyrube-be/internal/repository/specification"

	"github.com/google/uuid"
)

// LinkRepository stores undirected links. Links are never soft-deleted.
type LinkRepository interface {
	Create(ctx context.Context, link *entity.Link) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Link, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Link, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
