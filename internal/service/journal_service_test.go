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

func newJournalFixture(t *testing.T) (*memory.Factory, IJournalService, uuid.UUID) {
	t.Helper()
	factory := memory.NewFactory()
	return factory, NewJournalService(factory, nopPublisher{}, NewGraphCache()), uuid.New()
}

func TestCreateJournalDeduplicatesTags(t *testing.T) {
	_, svc, userId := newJournalFixture(t)

	res, err := svc.Create(context.Background(), userId, &dto.CreateJournalRequest{
		Title: "Travel",
		Tags:  []string{"summer", "italy", "summer", "food", "italy"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"summer", "italy", "food"}, res.Tags)
}

func TestUpdateJournalPartial(t *testing.T) {
	_, svc, userId := newJournalFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, userId, &dto.CreateJournalRequest{
		Title: "Travel",
		Tags:  []string{"summer"},
	})
	require.NoError(t, err)

	newTitle := "Travel 2026"
	res, err := svc.Update(ctx, userId, &dto.UpdateJournalRequest{
		Id:    created.Id,
		Title: &newTitle,
	})
	require.NoError(t, err)
	assert.Equal(t, "Travel 2026", res.Title)
	// Omitted tags stay untouched.
	assert.Equal(t, []string{"summer"}, res.Tags)
}

func TestUpdateJournalForeignUser(t *testing.T) {
	_, svc, userId := newJournalFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, userId, &dto.CreateJournalRequest{Title: "Mine"})
	require.NoError(t, err)

	title := "Stolen"
	_, err = svc.Update(ctx, uuid.New(), &dto.UpdateJournalRequest{Id: created.Id, Title: &title})
	assert.ErrorIs(t, err, ErrJournalNotFound)
}

func TestDeleteJournalForeignUserForbidden(t *testing.T) {
	_, svc, userId := newJournalFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, userId, &dto.CreateJournalRequest{Title: "Mine"})
	require.NoError(t, err)

	err = svc.Delete(ctx, uuid.New(), created.Id)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDeleteJournalTrashesEntries(t *testing.T) {
	factory, svc, userId := newJournalFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, userId, &dto.CreateJournalRequest{Title: "Mine"})
	require.NoError(t, err)

	entryId := uuid.New()
	require.NoError(t, factory.Entries.Create(ctx, &entity.JournalEntry{
		Id:        entryId,
		JournalId: created.Id,
		UserId:    userId,
		CardType:  entity.CardTypeText,
		CreatedAt: time.Now(),
	}))

	require.NoError(t, svc.Delete(ctx, userId, created.Id))

	journals, err := svc.GetAll(ctx, userId)
	require.NoError(t, err)
	assert.Empty(t, journals)

	trashed, err := factory.Entries.FindAllTrashed(ctx)
	require.NoError(t, err)
	require.Len(t, trashed, 1)
	assert.Equal(t, entryId, trashed[0].Id)
}

func TestShowJournalListsEntriesNewestFirst(t *testing.T) {
	factory, svc, userId := newJournalFixture(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, userId, &dto.CreateJournalRequest{Title: "Mine"})
	require.NoError(t, err)

	base := time.Now()
	older := uuid.New()
	newer := uuid.New()
	require.NoError(t, factory.Entries.Create(ctx, &entity.JournalEntry{
		Id: older, JournalId: created.Id, UserId: userId,
		CardType: entity.CardTypeText, CreatedAt: base,
	}))
	require.NoError(t, factory.Entries.Create(ctx, &entity.JournalEntry{
		Id: newer, JournalId: created.Id, UserId: userId,
		CardType: entity.CardTypeText, CreatedAt: base.Add(time.Minute),
	}))

	res, err := svc.Show(ctx, userId, created.Id)
	require.NoError(t, err)
	require.Len(t, res.Entries, 2)
	assert.Equal(t, newer, res.Entries[0].Id)
	assert.Equal(t, older, res.Entries[1].Id)
}
