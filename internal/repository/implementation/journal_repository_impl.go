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

type JournalRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.JournalMapper
}

func NewJournalRepository(db *gorm.DB) contract.JournalRepository {
	return &JournalRepositoryImpl{
		db:     db,
		mapper: mapper.NewJournalMapper(),
	}
}

func (r *JournalRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *JournalRepositoryImpl) Create(ctx context.Context, journal *entity.Journal) error {
	m := r.mapper.ToModel(journal)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*journal = *r.mapper.ToEntity(m)
	return nil
}

func (r *JournalRepositoryImpl) Update(ctx context.Context, journal *entity.Journal) error {
	m := r.mapper.ToModel(journal)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*journal = *r.mapper.ToEntity(m)
	return nil
}

func (r *JournalRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Journal{}, id).Error
}

func (r *JournalRepositoryImpl) findOne(query *gorm.DB, specs ...specification.Specification) (*entity.Journal, error) {
	var m model.Journal
	query = r.applySpecifications(query, specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *JournalRepositoryImpl) findAll(query *gorm.DB, specs ...specification.Specification) ([]*entity.Journal, error) {
	var models []*model.Journal
	query = r.applySpecifications(query, specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *JournalRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Journal, error) {
	return r.findOne(r.db.WithContext(ctx), specs...)
}

func (r *JournalRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Journal, error) {
	return r.findAll(r.db.WithContext(ctx), specs...)
}

func (r *JournalRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Journal{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *JournalRepositoryImpl) FindOneAny(ctx context.Context, specs ...specification.Specification) (*entity.Journal, error) {
	return r.findOne(r.db.WithContext(ctx).Unscoped(), specs...)
}

func (r *JournalRepositoryImpl) FindAllAny(ctx context.Context, specs ...specification.Specification) ([]*entity.Journal, error) {
	return r.findAll(r.db.WithContext(ctx).Unscoped(), specs...)
}

func (r *JournalRepositoryImpl) FindAllTrashed(ctx context.Context, specs ...specification.Specification) ([]*entity.Journal, error) {
	return r.findAll(r.db.WithContext(ctx).Unscoped().Where("deleted_at IS NOT NULL"), specs...)
}

func (r *JournalRepositoryImpl) Restore(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Unscoped().
		Model(&model.Journal{}).
		Where("id = ?", id).
		Update("deleted_at", nil).Error
}

func (r *JournalRepositoryImpl) HardDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Unscoped().Delete(&model.Journal{}, id).Error
}
