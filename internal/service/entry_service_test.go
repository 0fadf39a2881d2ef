package service

import (
	"context"
	"testing"
	"time"

	"heyrube-be/internal/dto"
	"heyrube-be/internal/entity"
	"heyrube-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopPublisher struct{}

func (nopPublisher) Publish(ctx context.Context, payload []byte) error { return nil }

func newEntryFixture(t *testing.T) (*memory.Factory, IEntryService, uuid.UUID, uuid.UUID) {
	t.Helper()
	factory := memory.NewFactory()
	userId := uuid.New()
	journalId := uuid.New()
	err := factory.Journals.Create(context.Background(), &entity.Journal{
		Id:        journalId,
		Title:     "Daily Notes",
		UserId:    userId,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)
	return factory, NewEntryService(factory, nopPublisher{}, NewGraphCache()), userId, journalId
}

func createTextEntry(t *testing.T, svc IEntryService, userId, journalId uuid.UUID, content string) *dto.EntryResponse {
	t.Helper()
	res, err := svc.Create(context.Background(), userId, journalId, &dto.CreateEntryRequest{
		CardType: "text",
		Content:  content,
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func TestCreateEntryGoesToTop(t *testing.T) {
	_, svc, userId, journalId := newEntryFixture(t)
	ctx := context.Background()

	e1 := createTextEntry(t, svc, userId, journalId, "first")
	e2 := createTextEntry(t, svc, userId, journalId, "second")
	e3 := createTextEntry(t, svc, userId, journalId, "third")

	assert.Equal(t, 0, *e3.DisplayOrder)

	entries, err := svc.List(ctx, userId, journalId)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	orders := make(map[uuid.UUID]int)
	for _, e := range entries {
		require.NotNil(t, e.DisplayOrder)
		orders[e.Id] = *e.DisplayOrder
	}
	assert.Equal(t, 0, orders[e3.Id])
	assert.Equal(t, 1, orders[e2.Id])
	assert.Equal(t, 2, orders[e1.Id])
}

func TestCreateEntryUnknownJournal(t *testing.T) {
	_, svc, userId, _ := newEntryFixture(t)

	_, err := svc.Create(context.Background(), userId, uuid.New(), &dto.CreateEntryRequest{CardType: "text"})
	assert.ErrorIs(t, err, ErrJournalNotFound)
}

func TestCreateEntryForeignJournal(t *testing.T) {
	_, svc, _, journalId := newEntryFixture(t)

	_, err := svc.Create(context.Background(), uuid.New(), journalId, &dto.CreateEntryRequest{CardType: "text"})
	assert.ErrorIs(t, err, ErrJournalNotFound)
}

func TestCreateCheckboxEntrySummarizesItems(t *testing.T) {
	_, svc, userId, journalId := newEntryFixture(t)

	res, err := svc.Create(context.Background(), userId, journalId, &dto.CreateEntryRequest{
		CardType: "checkbox",
		CheckboxItems: []dto.CheckboxItemPayload{
			{Text: "milk", Checked: true},
			{Text: "bread", Checked: false},
			{Text: "eggs", Checked: true},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "2/3 completed", res.Content)
	assert.Len(t, res.CheckboxItems, 3)
}

func TestCreateEmptyCheckboxEntry(t *testing.T) {
	_, svc, userId, journalId := newEntryFixture(t)

	res, err := svc.Create(context.Background(), userId, journalId, &dto.CreateEntryRequest{
		CardType: "checkbox",
	})
	require.NoError(t, err)
	assert.Equal(t, "Checklist", res.Content)
}

func TestPinEntryClearsDisplayOrder(t *testing.T) {
	_, svc, userId, journalId := newEntryFixture(t)
	ctx := context.Background()

	e1 := createTextEntry(t, svc, userId, journalId, "first")
	e2 := createTextEntry(t, svc, userId, journalId, "second")
	e3 := createTextEntry(t, svc, userId, journalId, "third")

	pinned, err := svc.Pin(ctx, userId, journalId, e2.Id, true)
	require.NoError(t, err)
	assert.True(t, pinned.Pinned)
	assert.Nil(t, pinned.DisplayOrder)

	entries, err := svc.List(ctx, userId, journalId)
	require.NoError(t, err)
	orders := make(map[uuid.UUID]*int)
	for _, e := range entries {
		orders[e.Id] = e.DisplayOrder
	}
	// The survivors compact to 0..1.
	assert.Equal(t, 0, *orders[e3.Id])
	assert.Equal(t, 1, *orders[e1.Id])
	assert.Nil(t, orders[e2.Id])
}

func TestUnpinEntryRejoinsSequenceLast(t *testing.T) {
	_, svc, userId, journalId := newEntryFixture(t)
	ctx := context.Background()

	e1 := createTextEntry(t, svc, userId, journalId, "first")
	e2 := createTextEntry(t, svc, userId, journalId, "second")
	_, err := svc.Pin(ctx, userId, journalId, e2.Id, true)
	require.NoError(t, err)

	unpinned, err := svc.Pin(ctx, userId, journalId, e2.Id, false)
	require.NoError(t, err)
	assert.False(t, unpinned.Pinned)
	// Without a stored slot it re-enters behind the ordered entries.
	require.NotNil(t, unpinned.DisplayOrder)
	assert.Equal(t, 1, *unpinned.DisplayOrder)

	entries, err := svc.List(ctx, userId, journalId)
	require.NoError(t, err)
	for _, e := range entries {
		if e.Id == e1.Id {
			assert.Equal(t, 0, *e.DisplayOrder)
		}
	}
}

func TestPinMissingEntry(t *testing.T) {
	_, svc, userId, journalId := newEntryFixture(t)

	_, err := svc.Pin(context.Background(), userId, journalId, uuid.New(), true)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestDeleteEntryCompactsOrder(t *testing.T) {
	factory, svc, userId, journalId := newEntryFixture(t)
	ctx := context.Background()

	e1 := createTextEntry(t, svc, userId, journalId, "first")
	e2 := createTextEntry(t, svc, userId, journalId, "second")
	e3 := createTextEntry(t, svc, userId, journalId, "third")

	require.NoError(t, svc.Delete(ctx, userId, journalId, e2.Id))

	entries, err := svc.List(ctx, userId, journalId)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	orders := make(map[uuid.UUID]int)
	for _, e := range entries {
		orders[e.Id] = *e.DisplayOrder
	}
	assert.Equal(t, 0, orders[e3.Id])
	assert.Equal(t, 1, orders[e1.Id])

	// Soft-deleted, not gone.
	trashed, err := factory.Entries.FindOneTrashed(ctx)
	require.NoError(t, err)
	require.NotNil(t, trashed)
	assert.Equal(t, e2.Id, trashed.Id)
}

func TestRenumberIsIdempotent(t *testing.T) {
	factory, svc, userId, journalId := newEntryFixture(t)
	ctx := context.Background()

	createTextEntry(t, svc, userId, journalId, "first")
	createTextEntry(t, svc, userId, journalId, "second")
	createTextEntry(t, svc, userId, journalId, "third")

	before := factory.Entries.SetOrderWrites
	// An empty reorder still runs the compaction pass; a compact journal
	// must take zero writes.
	_, err := svc.Reorder(ctx, userId, journalId, nil)
	require.NoError(t, err)
	assert.Equal(t, before, factory.Entries.SetOrderWrites)
}

func TestReorderAppliesRequestedOrder(t *testing.T) {
	_, svc, userId, journalId := newEntryFixture(t)
	ctx := context.Background()

	e1 := createTextEntry(t, svc, userId, journalId, "first")
	e2 := createTextEntry(t, svc, userId, journalId, "second")
	e3 := createTextEntry(t, svc, userId, journalId, "third")

	res, err := svc.Reorder(ctx, userId, journalId, []dto.ReorderEntryItem{
		{Id: e1.Id, DisplayOrder: intPtr(0)},
		{Id: e3.Id, DisplayOrder: intPtr(1)},
		{Id: e2.Id, DisplayOrder: intPtr(2)},
	})
	require.NoError(t, err)
	require.Len(t, res, 3)

	orders := make(map[uuid.UUID]int)
	for _, e := range res {
		orders[e.Id] = *e.DisplayOrder
	}
	assert.Equal(t, 0, orders[e1.Id])
	assert.Equal(t, 1, orders[e3.Id])
	assert.Equal(t, 2, orders[e2.Id])
}

func TestReorderPinnedForcesNilOrder(t *testing.T) {
	_, svc, userId, journalId := newEntryFixture(t)
	ctx := context.Background()

	e1 := createTextEntry(t, svc, userId, journalId, "first")
	e2 := createTextEntry(t, svc, userId, journalId, "second")

	pinnedTrue := true
	res, err := svc.Reorder(ctx, userId, journalId, []dto.ReorderEntryItem{
		{Id: e2.Id, DisplayOrder: intPtr(0), Pinned: &pinnedTrue},
	})
	require.NoError(t, err)

	for _, e := range res {
		switch e.Id {
		case e2.Id:
			assert.True(t, e.Pinned)
			assert.Nil(t, e.DisplayOrder)
		case e1.Id:
			assert.False(t, e.Pinned)
			assert.Equal(t, 0, *e.DisplayOrder)
		}
	}
}

func TestReorderSkipsUnknownIds(t *testing.T) {
	_, svc, userId, journalId := newEntryFixture(t)
	ctx := context.Background()

	e1 := createTextEntry(t, svc, userId, journalId, "first")

	res, err := svc.Reorder(ctx, userId, journalId, []dto.ReorderEntryItem{
		{Id: uuid.New(), DisplayOrder: intPtr(0)},
		{Id: e1.Id, DisplayOrder: intPtr(4)},
	})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, 0, *res[0].DisplayOrder)
}

func TestUpdateEntryRecomputesContent(t *testing.T) {
	_, svc, userId, journalId := newEntryFixture(t)
	ctx := context.Background()

	e := createTextEntry(t, svc, userId, journalId, "plain text")

	cardType := "checkbox"
	res, err := svc.Update(ctx, userId, journalId, &dto.UpdateEntryRequest{
		Id:       e.Id,
		CardType: &cardType,
		CheckboxItems: []dto.CheckboxItemPayload{
			{Text: "one", Checked: true},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "1/1 completed", res.Content)
	assert.Equal(t, "checkbox", res.CardType)
}

func TestUpdateEntryMissingIsNoop(t *testing.T) {
	factory, svc, userId, journalId := newEntryFixture(t)
	ctx := context.Background()

	createTextEntry(t, svc, userId, journalId, "first")
	before := factory.Entries.SetOrderWrites

	res, err := svc.Update(ctx, userId, journalId, &dto.UpdateEntryRequest{Id: uuid.New()})
	require.NoError(t, err)
	assert.Nil(t, res)
	assert.Equal(t, before, factory.Entries.SetOrderWrites)
}

func TestUpdateEntryMoveAdoptsTargetOwner(t *testing.T) {
	factory, svc, userId, journalId := newEntryFixture(t)
	ctx := context.Background()

	otherUser := uuid.New()
	targetId := uuid.New()
	require.NoError(t, factory.Journals.Create(ctx, &entity.Journal{
		Id:        targetId,
		Title:     "Shared",
		UserId:    otherUser,
		CreatedAt: time.Now(),
	}))
	// The target being trashed does not block the move.
	require.NoError(t, factory.Journals.Delete(ctx, targetId))

	e := createTextEntry(t, svc, userId, journalId, "moving")
	writesBefore := factory.Entries.SetOrderWrites

	res, err := svc.Update(ctx, userId, journalId, &dto.UpdateEntryRequest{
		Id:        e.Id,
		JournalId: &targetId,
	})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, targetId, res.JournalId)
	assert.Equal(t, otherUser, res.UserId)
	// Moving does not renumber either journal.
	assert.Equal(t, writesBefore, factory.Entries.SetOrderWrites)
}
