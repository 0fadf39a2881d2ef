package implementation

import (
	"context"

	"heyrube-be/internal/entity"
	"heyrube-be/internal/mapper"
	"heyrube-be/internal/model"
	"heyrube-be/internal/repository/contract"
	"heyrube-be/internal/repository/specification"

	"gorm.io/gorm"
)

type TagRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TagMapper
}

func NewTagRepository(db *gorm.DB) contract.TagRepository {
	return &TagRepositoryImpl{
		db:     db,
		mapper: mapper.NewTagMapper(),
	}
}

func (r *TagRepositoryImpl) FirstOrCreate(ctx context.Context, name string) (*entity.Tag, error) {
	var m model.Tag
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		Attrs(model.Tag{Name: name}).
		FirstOrCreate(&m).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TagRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tag, error) {
	var models []*model.Tag
	query := r.db.WithContext(ctx)
	for _, spec := range specs {
		query = spec.Apply(query)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
