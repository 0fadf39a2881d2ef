package service

import (
	"sort"

	"heyrube-be/internal/entity"

	"github.com/google/uuid"
)

// orderAssignment is one display_order write the renumbering pass decided on.
// A nil order clears the column (pinned entries never hold a slot).
type orderAssignment struct {
	id    uuid.UUID
	order *int
}

// computeOrder recomputes the display order for one journal's active entries
// and returns only the writes needed to reach it, so running it again on the
// result yields nothing.
//
// Unpinned entries that already have a display_order keep their relative
// order; entries without one are appended newest-first. pinFirstId, when it
// names an unpinned entry, moves that entry to slot 0. Pinned entries are
// excluded from numbering and get their display_order cleared. The surviving
// sequence is compacted to 0..k-1.
func computeOrder(entries []*entity.JournalEntry, pinFirstId uuid.UUID) []orderAssignment {
	if len(entries) == 0 {
		return nil
	}

	var pinned, others []*entity.JournalEntry
	for _, e := range entries {
		if e.Pinned {
			pinned = append(pinned, e)
		} else {
			others = append(others, e)
		}
	}

	var ordered, unordered []*entity.JournalEntry
	for _, e := range others {
		if e.DisplayOrder != nil {
			ordered = append(ordered, e)
		} else {
			unordered = append(unordered, e)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return *ordered[i].DisplayOrder < *ordered[j].DisplayOrder
	})
	sort.SliceStable(unordered, func(i, j int) bool {
		return unordered[i].CreatedAt.After(unordered[j].CreatedAt)
	})

	merged := make([]*entity.JournalEntry, 0, len(others))
	merged = append(merged, ordered...)
	merged = append(merged, unordered...)

	if pinFirstId != uuid.Nil {
		var first *entity.JournalEntry
		rest := make([]*entity.JournalEntry, 0, len(merged))
		for _, e := range merged {
			if e.Id == pinFirstId {
				first = e
				continue
			}
			rest = append(rest, e)
		}
		if first != nil {
			merged = append([]*entity.JournalEntry{first}, rest...)
		}
	}

	var out []orderAssignment
	for _, e := range pinned {
		if e.DisplayOrder != nil {
			out = append(out, orderAssignment{id: e.Id})
		}
	}
	for i, e := range merged {
		if e.DisplayOrder == nil || *e.DisplayOrder != i {
			slot := i
			out = append(out, orderAssignment{id: e.Id, order: &slot})
		}
	}
	return out
}
