package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"heyrube-be/internal/entity"
	"heyrube-be/internal/repository/specification"

	"github.com/google/uuid"
)

// JournalRepository is the in-memory store adapter for journals, used by
// service tests.
type JournalRepository struct {
	mu       sync.Mutex
	journals map[uuid.UUID]*entity.Journal
}

func NewJournalRepository() *JournalRepository {
	return &JournalRepository{
		journals: make(map[uuid.UUID]*entity.Journal),
	}
}

func cloneJournal(j *entity.Journal) *entity.Journal {
	c := *j
	if j.Tags != nil {
		c.Tags = append([]string(nil), j.Tags...)
	}
	return &c
}

func (r *JournalRepository) Create(ctx context.Context, journal *entity.Journal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if journal.Id == uuid.Nil {
		journal.Id = uuid.New()
	}
	if journal.CreatedAt.IsZero() {
		journal.CreatedAt = time.Now()
	}
	r.journals[journal.Id] = cloneJournal(journal)
	return nil
}

func (r *JournalRepository) Update(ctx context.Context, journal *entity.Journal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.journals[journal.Id]; !ok {
		return nil
	}
	now := time.Now()
	journal.UpdatedAt = &now
	r.journals[journal.Id] = cloneJournal(journal)
	return nil
}

func (r *JournalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if j, ok := r.journals[id]; ok && j.DeletedAt == nil {
		now := time.Now()
		j.DeletedAt = &now
		j.IsDeleted = true
	}
	return nil
}

func matchJournal(j *entity.Journal, spec specification.Specification) bool {
	switch s := spec.(type) {
	case specification.ByID:
		return j.Id == s.ID
	case specification.ByIDs:
		for _, id := range s.IDs {
			if j.Id == id {
				return true
			}
		}
		return false
	case specification.UserOwnedBy:
		return j.UserId == s.UserID
	case specification.JournalTitleSearch:
		return strings.Contains(strings.ToLower(j.Title), strings.ToLower(s.Query))
	default:
		return true
	}
}

// scope selects which deletion states are visible.
type scope int

const (
	scopeActive scope = iota
	scopeTrashed
	scopeAny
)

func (r *JournalRepository) collect(sc scope, specs ...specification.Specification) []*entity.Journal {
	var out []*entity.Journal
	for _, j := range r.journals {
		if sc == scopeActive && j.DeletedAt != nil {
			continue
		}
		if sc == scopeTrashed && j.DeletedAt == nil {
			continue
		}
		ok := true
		for _, spec := range specs {
			if !matchJournal(j, spec) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, cloneJournal(j))
		}
	}
	for _, spec := range specs {
		s, isOrder := spec.(specification.OrderBy)
		if !isOrder {
			continue
		}
		sort.SliceStable(out, func(i, k int) bool {
			a, b := out[i], out[k]
			if s.Desc {
				a, b = b, a
			}
			switch s.Field {
			case "created_at":
				return a.CreatedAt.Before(b.CreatedAt)
			case "title":
				return a.Title < b.Title
			default:
				return false
			}
		})
	}
	if n, capped := limitOf(specs); capped && len(out) > n {
		out = out[:n]
	}
	return out
}

func (r *JournalRepository) findOne(sc scope, specs ...specification.Specification) (*entity.Journal, error) {
	out := r.collect(sc, specs...)
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *JournalRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Journal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findOne(scopeActive, specs...)
}

func (r *JournalRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Journal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.collect(scopeActive, specs...), nil
}

func (r *JournalRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.collect(scopeActive, specs...))), nil
}

func (r *JournalRepository) FindOneAny(ctx context.Context, specs ...specification.Specification) (*entity.Journal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findOne(scopeAny, specs...)
}

func (r *JournalRepository) FindAllAny(ctx context.Context, specs ...specification.Specification) ([]*entity.Journal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.collect(scopeAny, specs...), nil
}

func (r *JournalRepository) FindAllTrashed(ctx context.Context, specs ...specification.Specification) ([]*entity.Journal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.collect(scopeTrashed, specs...), nil
}

func (r *JournalRepository) Restore(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if j, ok := r.journals[id]; ok {
		j.DeletedAt = nil
		j.IsDeleted = false
	}
	return nil
}

func (r *JournalRepository) HardDelete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.journals, id)
	return nil
}
