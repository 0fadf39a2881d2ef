package contract

import (
	"context"

	"heyrube-be/internal/entity"
	"heyrube-be/internal/repository/specification"
)

type TagRepository interface {
	// FirstOrCreate returns the existing tag with the given name or creates it.
	FirstOrCreate(ctx context.Context, name string) (*entity.Tag, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tag, error)
}
