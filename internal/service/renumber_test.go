package service

import (
	"testing"
	"time"

	"heyrube-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func makeEntry(order *int, pinned bool, createdAt time.Time) *entity.JournalEntry {
	return &entity.JournalEntry{
		Id:           uuid.New(),
		Pinned:       pinned,
		DisplayOrder: order,
		CreatedAt:    createdAt,
	}
}

// apply mutates entries the way the repository would, so a second pass can
// be checked for idempotence.
func apply(entries []*entity.JournalEntry, assignments []orderAssignment) {
	byId := make(map[uuid.UUID]*entity.JournalEntry)
	for _, e := range entries {
		byId[e.Id] = e
	}
	for _, a := range assignments {
		e := byId[a.id]
		if a.order == nil {
			e.DisplayOrder = nil
		} else {
			v := *a.order
			e.DisplayOrder = &v
		}
	}
}

func orderOf(entries []*entity.JournalEntry) map[uuid.UUID]*int {
	out := make(map[uuid.UUID]*int)
	for _, e := range entries {
		out[e.Id] = e.DisplayOrder
	}
	return out
}

func TestComputeOrderEmpty(t *testing.T) {
	assert.Nil(t, computeOrder(nil, uuid.Nil))
}

func TestComputeOrderCompactsSequence(t *testing.T) {
	base := time.Now()
	a := makeEntry(intPtr(0), false, base)
	b := makeEntry(intPtr(5), false, base.Add(time.Minute))
	c := makeEntry(intPtr(9), false, base.Add(2*time.Minute))
	entries := []*entity.JournalEntry{a, b, c}

	apply(entries, computeOrder(entries, uuid.Nil))

	assert.Equal(t, 0, *a.DisplayOrder)
	assert.Equal(t, 1, *b.DisplayOrder)
	assert.Equal(t, 2, *c.DisplayOrder)
}

func TestComputeOrderNewestUnorderedFirst(t *testing.T) {
	base := time.Now()
	ordered := makeEntry(intPtr(0), false, base)
	older := makeEntry(nil, false, base.Add(time.Minute))
	newer := makeEntry(nil, false, base.Add(2*time.Minute))
	entries := []*entity.JournalEntry{ordered, older, newer}

	apply(entries, computeOrder(entries, uuid.Nil))

	// Ordered entries keep their positions; unordered ones append
	// newest-first.
	assert.Equal(t, 0, *ordered.DisplayOrder)
	assert.Equal(t, 1, *newer.DisplayOrder)
	assert.Equal(t, 2, *older.DisplayOrder)
}

func TestComputeOrderPinFirst(t *testing.T) {
	base := time.Now()
	a := makeEntry(intPtr(0), false, base)
	b := makeEntry(intPtr(1), false, base.Add(time.Minute))
	c := makeEntry(intPtr(2), false, base.Add(2*time.Minute))
	entries := []*entity.JournalEntry{a, b, c}

	apply(entries, computeOrder(entries, c.Id))

	assert.Equal(t, 0, *c.DisplayOrder)
	assert.Equal(t, 1, *a.DisplayOrder)
	assert.Equal(t, 2, *b.DisplayOrder)
}

func TestComputeOrderUnknownPinFirstIgnored(t *testing.T) {
	base := time.Now()
	a := makeEntry(intPtr(0), false, base)
	b := makeEntry(intPtr(1), false, base.Add(time.Minute))
	entries := []*entity.JournalEntry{a, b}

	apply(entries, computeOrder(entries, uuid.New()))

	assert.Equal(t, 0, *a.DisplayOrder)
	assert.Equal(t, 1, *b.DisplayOrder)
}

func TestComputeOrderClearsPinnedSlots(t *testing.T) {
	base := time.Now()
	pinned := makeEntry(intPtr(1), true, base)
	a := makeEntry(intPtr(0), false, base.Add(time.Minute))
	b := makeEntry(intPtr(2), false, base.Add(2*time.Minute))
	entries := []*entity.JournalEntry{pinned, a, b}

	apply(entries, computeOrder(entries, uuid.Nil))

	assert.Nil(t, pinned.DisplayOrder)
	assert.Equal(t, 0, *a.DisplayOrder)
	assert.Equal(t, 1, *b.DisplayOrder)
}

func TestComputeOrderPinnedEntryNotPrepended(t *testing.T) {
	// A pinFirstId naming a pinned entry has no candidate among the
	// unpinned ones, so nothing moves.
	base := time.Now()
	pinned := makeEntry(nil, true, base)
	a := makeEntry(intPtr(0), false, base.Add(time.Minute))
	entries := []*entity.JournalEntry{pinned, a}

	apply(entries, computeOrder(entries, pinned.Id))

	assert.Nil(t, pinned.DisplayOrder)
	assert.Equal(t, 0, *a.DisplayOrder)
}

func TestComputeOrderIdempotent(t *testing.T) {
	base := time.Now()
	entries := []*entity.JournalEntry{
		makeEntry(intPtr(7), false, base),
		makeEntry(nil, false, base.Add(time.Minute)),
		makeEntry(intPtr(3), true, base.Add(2*time.Minute)),
		makeEntry(nil, false, base.Add(3*time.Minute)),
	}

	first := computeOrder(entries, entries[1].Id)
	require.NotEmpty(t, first)
	apply(entries, first)

	before := orderOf(entries)
	second := computeOrder(entries, entries[1].Id)
	assert.Empty(t, second, "renumbering an already-compact journal must write nothing")
	assert.Equal(t, before, orderOf(entries))
}

func TestComputeOrderWritesOnlyChanges(t *testing.T) {
	base := time.Now()
	a := makeEntry(intPtr(0), false, base)
	b := makeEntry(intPtr(1), false, base.Add(time.Minute))
	c := makeEntry(intPtr(5), false, base.Add(2*time.Minute))
	entries := []*entity.JournalEntry{a, b, c}

	assignments := computeOrder(entries, uuid.Nil)

	// a and b already sit in their slots; only c needs a write.
	require.Len(t, assignments, 1)
	assert.Equal(t, c.Id, assignments[0].id)
	assert.Equal(t, 2, *assignments[0].order)
}
