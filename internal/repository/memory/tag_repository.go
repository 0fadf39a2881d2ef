package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"heyrube-be/internal/entity"
	"heyrube-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TagRepository struct {
	mu   sync.Mutex
	tags map[string]*entity.Tag
}

func NewTagRepository() *TagRepository {
	return &TagRepository{
		tags: make(map[string]*entity.Tag),
	}
}

func (r *TagRepository) FirstOrCreate(ctx context.Context, name string) (*entity.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tags[name]; ok {
		c := *t
		return &c, nil
	}
	t := &entity.Tag{
		Id:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now(),
	}
	r.tags[name] = t
	c := *t
	return &c, nil
}

func (r *TagRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Tag, 0, len(r.tags))
	for _, t := range r.tags {
		c := *t
		out = append(out, &c)
	}
	for _, spec := range specs {
		if s, ok := spec.(specification.OrderBy); ok && s.Field == "name" {
			sort.SliceStable(out, func(i, j int) bool {
				if s.Desc {
					return out[j].Name < out[i].Name
				}
				return out[i].Name < out[j].Name
			})
		}
	}
	return out, nil
}
