package implementation

import (
	"context"
	"errors"

	"heyrube-be/internal/entity"
	"heyrube-be/internal/mapper"
	"heyrube-be/internal/model"
	"heyrube-be/internal/repository/contract"
	"heyrube-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LinkRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LinkMapper
}

func NewLinkRepository(db *gorm.DB) contract.LinkRepository {
	return &LinkRepositoryImpl{
		db:     db,
		mapper: mapper.NewLinkMapper(),
	}
}

func (r *LinkRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *LinkRepositoryImpl) Create(ctx context.Context, link *entity.Link) error {
	m := r.mapper.ToModel(link)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*link = *r.mapper.ToEntity(m)
	return nil
}

func (r *LinkRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Link{}, id).Error
}

func (r *LinkRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Link, error) {
	var m model.Link
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *LinkRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Link, error) {
	var models []*model.Link
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *LinkRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Link{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
