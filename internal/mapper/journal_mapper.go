package mapper

import (
	"encoding/json"
	"time"

	"heyrube-be/internal/entity"
	"heyrube-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type JournalMapper struct{}

func NewJournalMapper() *JournalMapper {
	return &JournalMapper{}
}

func (m *JournalMapper) ToEntity(j *model.Journal) *entity.Journal {
	if j == nil {
		return nil
	}

	var deletedAt *time.Time
	if j.DeletedAt.Valid {
		t := j.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !j.UpdatedAt.IsZero() {
		t := j.UpdatedAt
		updatedAt = &t
	}

	var tags []string
	if len(j.Tags) > 0 {
		_ = json.Unmarshal(j.Tags, &tags)
	}
	if tags == nil {
		tags = []string{}
	}

	return &entity.Journal{
		Id:        j.Id,
		Title:     j.Title,
		Tags:      tags,
		UserId:    j.UserId,
		CreatedAt: j.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
		IsDeleted: j.DeletedAt.Valid,
	}
}

func (m *JournalMapper) ToModel(j *entity.Journal) *model.Journal {
	if j == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if j.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *j.DeletedAt, Valid: true}
	} else if j.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if j.UpdatedAt != nil {
		updatedAt = *j.UpdatedAt
	}

	tags := j.Tags
	if tags == nil {
		tags = []string{}
	}
	raw, _ := json.Marshal(tags)

	return &model.Journal{
		Id:        j.Id,
		Title:     j.Title,
		Tags:      datatypes.JSON(raw),
		UserId:    j.UserId,
		CreatedAt: j.CreatedAt,
		UpdatedAt: updatedAt,
		DeletedAt: deletedAt,
	}
}

func (m *JournalMapper) ToEntities(journals []*model.Journal) []*entity.Journal {
	entities := make([]*entity.Journal, len(journals))
	for i, j := range journals {
		entities[i] = m.ToEntity(j)
	}
	return entities
}
