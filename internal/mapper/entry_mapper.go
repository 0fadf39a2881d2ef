package mapper

import (
	"encoding/json"
	"time"

	"heyrube-be/internal/entity"
	"heyrube-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EntryMapper struct{}

func NewEntryMapper() *EntryMapper {
	return &EntryMapper{}
}

func (m *EntryMapper) ToEntity(e *model.JournalEntry) *entity.JournalEntry {
	if e == nil {
		return nil
	}

	var deletedAt *time.Time
	if e.DeletedAt.Valid {
		t := e.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	var items []entity.CheckboxItem
	if len(e.CheckboxItems) > 0 {
		_ = json.Unmarshal(e.CheckboxItems, &items)
	}

	return &entity.JournalEntry{
		Id:            e.Id,
		JournalId:     e.JournalId,
		UserId:        e.UserId,
		CardType:      entity.CardType(e.CardType),
		Title:         e.Title,
		Content:       e.Content,
		CheckboxItems: items,
		Mood:          e.Mood,
		Pinned:        e.Pinned,
		DisplayOrder:  e.DisplayOrder,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
		IsDeleted:     e.DeletedAt.Valid,
	}
}

func (m *EntryMapper) ToModel(e *entity.JournalEntry) *model.JournalEntry {
	if e == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if e.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *e.DeletedAt, Valid: true}
	} else if e.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	var items datatypes.JSON
	if e.CheckboxItems != nil {
		raw, _ := json.Marshal(e.CheckboxItems)
		items = datatypes.JSON(raw)
	}

	return &model.JournalEntry{
		Id:            e.Id,
		JournalId:     e.JournalId,
		UserId:        e.UserId,
		CardType:      string(e.CardType),
		Title:         e.Title,
		Content:       e.Content,
		CheckboxItems: items,
		Mood:          e.Mood,
		Pinned:        e.Pinned,
		DisplayOrder:  e.DisplayOrder,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     updatedAt,
		DeletedAt:     deletedAt,
	}
}

func (m *EntryMapper) ToEntities(entries []*model.JournalEntry) []*entity.JournalEntry {
	entities := make([]*entity.JournalEntry, len(entries))
	for i, e := range entries {
		entities[i] = m.ToEntity(e)
	}
	return entities
}
