package mapper

import (
	"time"

	"heyrube-be/internal/entity"
	"heyrube-be/internal/model"
)

type LinkMapper struct{}

func NewLinkMapper() *LinkMapper {
	return &LinkMapper{}
}

func (m *LinkMapper) ToEntity(l *model.Link) *entity.Link {
	if l == nil {
		return nil
	}

	var updatedAt *time.Time
	if !l.UpdatedAt.IsZero() {
		t := l.UpdatedAt
		updatedAt = &t
	}

	return &entity.Link{
		Id:         l.Id,
		UserId:     l.UserId,
		SourceType: entity.NodeType(l.SourceType),
		SourceId:   l.SourceId,
		TargetType: entity.NodeType(l.TargetType),
		TargetId:   l.TargetId,
		Label:      l.Label,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *LinkMapper) ToModel(l *entity.Link) *model.Link {
	if l == nil {
		return nil
	}

	var updatedAt time.Time
	if l.UpdatedAt != nil {
		updatedAt = *l.UpdatedAt
	}

	return &model.Link{
		Id:         l.Id,
		UserId:     l.UserId,
		SourceType: string(l.SourceType),
		SourceId:   l.SourceId,
		TargetType: string(l.TargetType),
		TargetId:   l.TargetId,
		Label:      l.Label,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *LinkMapper) ToEntities(links []*model.Link) []*entity.Link {
	entities := make([]*entity.Link, len(links))
	for i, l := range links {
		entities[i] = m.ToEntity(l)
	}
	return entities
}
