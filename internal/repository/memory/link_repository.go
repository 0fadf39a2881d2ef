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

// LinkRepository is the in-memory store adapter for links, used by service
// tests. Insertion order is preserved so graph assembly sees links in
// creation order.
type LinkRepository struct {
	mu    sync.Mutex
	links []*entity.Link
}

func NewLinkRepository() *LinkRepository {
	return &LinkRepository{}
}

func cloneLink(l *entity.Link) *entity.Link {
	c := *l
	return &c
}

func (r *LinkRepository) Create(ctx context.Context, link *entity.Link) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if link.Id == uuid.Nil {
		link.Id = uuid.New()
	}
	if link.CreatedAt.IsZero() {
		link.CreatedAt = time.Now()
	}
	r.links = append(r.links, cloneLink(link))
	return nil
}

func (r *LinkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, l := range r.links {
		if l.Id == id {
			r.links = append(r.links[:i], r.links[i+1:]...)
			return nil
		}
	}
	return nil
}

func matchLink(l *entity.Link, spec specification.Specification) bool {
	switch s := spec.(type) {
	case specification.ByID:
		return l.Id == s.ID
	case specification.UserOwnedBy:
		return l.UserId == s.UserID
	case specification.LinkEndpoints:
		return string(l.SourceType) == s.SourceType && l.SourceId == s.SourceID &&
			string(l.TargetType) == s.TargetType && l.TargetId == s.TargetID
	case specification.LinkTouchesNode:
		return (string(l.SourceType) == s.NodeType && l.SourceId == s.NodeID) ||
			(string(l.TargetType) == s.NodeType && l.TargetId == s.NodeID)
	default:
		return true
	}
}

func (r *LinkRepository) collect(specs ...specification.Specification) []*entity.Link {
	var out []*entity.Link
	for _, l := range r.links {
		ok := true
		for _, spec := range specs {
			if !matchLink(l, spec) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, cloneLink(l))
		}
	}
	for _, spec := range specs {
		s, isOrder := spec.(specification.OrderBy)
		if !isOrder || s.Field != "created_at" {
			continue
		}
		sort.SliceStable(out, func(i, j int) bool {
			a, b := out[i], out[j]
			if s.Desc {
				a, b = b, a
			}
			return a.CreatedAt.Before(b.CreatedAt)
		})
	}
	return out
}

func (r *LinkRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Link, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.collect(specs...)
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *LinkRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Link, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.collect(specs...), nil
}

func (r *LinkRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.collect(specs...))), nil
}
