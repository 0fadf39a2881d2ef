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

// EntryRepository is an in-memory store adapter used by service tests. It
// interprets the same specifications as the GORM implementation.
type EntryRepository struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*entity.JournalEntry

	// SetOrderWrites counts SetDisplayOrder calls, letting tests assert
	// that renumbering is idempotent.
	SetOrderWrites int
}

func NewEntryRepository() *EntryRepository {
	return &EntryRepository{
		entries: make(map[uuid.UUID]*entity.JournalEntry),
	}
}

func cloneEntry(e *entity.JournalEntry) *entity.JournalEntry {
	c := *e
	if e.DisplayOrder != nil {
		v := *e.DisplayOrder
		c.DisplayOrder = &v
	}
	if e.CheckboxItems != nil {
		c.CheckboxItems = append([]entity.CheckboxItem(nil), e.CheckboxItems...)
	}
	return &c
}

func (r *EntryRepository) Create(ctx context.Context, entry *entity.JournalEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry.Id == uuid.Nil {
		entry.Id = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	r.entries[entry.Id] = cloneEntry(entry)
	return nil
}

func (r *EntryRepository) Update(ctx context.Context, entry *entity.JournalEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[entry.Id]; !ok {
		return nil
	}
	now := time.Now()
	entry.UpdatedAt = &now
	r.entries[entry.Id] = cloneEntry(entry)
	return nil
}

func (r *EntryRepository) SetDisplayOrder(ctx context.Context, id uuid.UUID, order *int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok {
		return nil
	}
	r.SetOrderWrites++
	if order == nil {
		e.DisplayOrder = nil
	} else {
		v := *order
		e.DisplayOrder = &v
	}
	return nil
}

func (r *EntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[id]; ok && e.DeletedAt == nil {
		now := time.Now()
		e.DeletedAt = &now
		e.IsDeleted = true
	}
	return nil
}

func (r *EntryRepository) DeleteByJournal(ctx context.Context, journalId uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	for _, e := range r.entries {
		if e.JournalId == journalId && e.DeletedAt == nil {
			t := now
			e.DeletedAt = &t
			e.IsDeleted = true
		}
	}
	return nil
}

func matchEntry(e *entity.JournalEntry, spec specification.Specification) bool {
	switch s := spec.(type) {
	case specification.ByID:
		return e.Id == s.ID
	case specification.ByIDs:
		for _, id := range s.IDs {
			if e.Id == id {
				return true
			}
		}
		return false
	case specification.UserOwnedBy:
		return e.UserId == s.UserID
	case specification.ByJournalID:
		return e.JournalId == s.JournalID
	case specification.ByJournalIDs:
		for _, id := range s.JournalIDs {
			if e.JournalId == id {
				return true
			}
		}
		return false
	case specification.NotInJournals:
		for _, id := range s.JournalIDs {
			if e.JournalId == id {
				return false
			}
		}
		return true
	case specification.EntrySearchQuery:
		q := strings.ToLower(s.Query)
		return strings.Contains(strings.ToLower(e.Title), q) ||
			strings.Contains(strings.ToLower(e.Content), q)
	default:
		return true
	}
}

func (r *EntryRepository) collect(sc scope, specs ...specification.Specification) []*entity.JournalEntry {
	var out []*entity.JournalEntry
	for _, e := range r.entries {
		if sc == scopeActive && e.DeletedAt != nil {
			continue
		}
		if sc == scopeTrashed && e.DeletedAt == nil {
			continue
		}
		ok := true
		for _, spec := range specs {
			if !matchEntry(e, spec) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, cloneEntry(e))
		}
	}
	sortEntries(out, specs)
	if n, capped := limitOf(specs); capped && len(out) > n {
		out = out[:n]
	}
	return out
}

func sortEntries(entries []*entity.JournalEntry, specs []specification.Specification) {
	for _, spec := range specs {
		s, ok := spec.(specification.OrderBy)
		if !ok {
			continue
		}
		sort.SliceStable(entries, func(i, j int) bool {
			a, b := entries[i], entries[j]
			if s.Desc {
				a, b = b, a
			}
			switch s.Field {
			case "created_at":
				return a.CreatedAt.Before(b.CreatedAt)
			case "deleted_at":
				var ta, tb time.Time
				if a.DeletedAt != nil {
					ta = *a.DeletedAt
				}
				if b.DeletedAt != nil {
					tb = *b.DeletedAt
				}
				return ta.Before(tb)
			case "display_order":
				oa, ob := a.DisplayOrder, b.DisplayOrder
				switch {
				case oa == nil:
					return false
				case ob == nil:
					return true
				default:
					return *oa < *ob
				}
			default:
				return false
			}
		})
	}
}

func limitOf(specs []specification.Specification) (int, bool) {
	for _, spec := range specs {
		if s, ok := spec.(specification.Limit); ok {
			return s.N, true
		}
	}
	return 0, false
}

func (r *EntryRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.JournalEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.collect(scopeActive, specs...)
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *EntryRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.JournalEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.collect(scopeActive, specs...), nil
}

func (r *EntryRepository) FindAllAny(ctx context.Context, specs ...specification.Specification) ([]*entity.JournalEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.collect(scopeAny, specs...), nil
}

func (r *EntryRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.collect(scopeActive, specs...))), nil
}

func (r *EntryRepository) FindOneTrashed(ctx context.Context, specs ...specification.Specification) (*entity.JournalEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.collect(scopeTrashed, specs...)
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *EntryRepository) FindAllTrashed(ctx context.Context, specs ...specification.Specification) ([]*entity.JournalEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.collect(scopeTrashed, specs...), nil
}

func (r *EntryRepository) Restore(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[id]; ok {
		e.DeletedAt = nil
		e.IsDeleted = false
	}
	return nil
}

func (r *EntryRepository) RestoreByJournal(ctx context.Context, journalId uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.JournalId == journalId {
			e.DeletedAt = nil
			e.IsDeleted = false
		}
	}
	return nil
}

func (r *EntryRepository) HardDelete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
	return nil
}

func (r *EntryRepository) HardDeleteByJournal(ctx context.Context, journalId uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, e := range r.entries {
		if e.JournalId == journalId {
			delete(r.entries, id)
		}
	}
	return nil
}
