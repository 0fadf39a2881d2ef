package service

import (
	"context"
	"testing"
	"time"

	"heyrube-be/internal/entity"
	"heyrube-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type trashFixture struct {
	factory *memory.Factory
	svc     ITrashService
	userId  uuid.UUID
}

func newTrashFixture(t *testing.T) *trashFixture {
	t.Helper()
	factory := memory.NewFactory()
	return &trashFixture{
		factory: factory,
		svc:     NewTrashService(factory, NewGraphCache()),
		userId:  uuid.New(),
	}
}

func (f *trashFixture) seedJournal(t *testing.T, title string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	require.NoError(t, f.factory.Journals.Create(context.Background(), &entity.Journal{
		Id: id, Title: title, UserId: f.userId, CreatedAt: time.Now(),
	}))
	return id
}

func (f *trashFixture) seedEntry(t *testing.T, journalId uuid.UUID, title string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	require.NoError(t, f.factory.Entries.Create(context.Background(), &entity.JournalEntry{
		Id: id, JournalId: journalId, UserId: f.userId,
		CardType: entity.CardTypeText, Title: title, CreatedAt: time.Now(),
	}))
	return id
}

func TestTrashedJournalsIncludeTheirEntries(t *testing.T) {
	f := newTrashFixture(t)
	ctx := context.Background()

	journalId := f.seedJournal(t, "Old Plans")
	activeEntry := f.seedEntry(t, journalId, "kept")
	trashedEntry := f.seedEntry(t, journalId, "binned")
	require.NoError(t, f.factory.Entries.Delete(ctx, trashedEntry))
	require.NoError(t, f.factory.Journals.Delete(ctx, journalId))

	res, err := f.svc.TrashedJournals(ctx, f.userId)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Old Plans", res[0].Title)
	require.NotNil(t, res[0].DeletedAt)

	ids := make(map[uuid.UUID]bool)
	for _, e := range res[0].Entries {
		ids[e.Id] = true
	}
	assert.True(t, ids[activeEntry])
	assert.True(t, ids[trashedEntry])
}

func TestTrashedEntriesExcludeTrashedJournals(t *testing.T) {
	f := newTrashFixture(t)
	ctx := context.Background()

	activeJournal := f.seedJournal(t, "Active")
	trashedJournal := f.seedJournal(t, "Binned")

	standalone := f.seedEntry(t, activeJournal, "standalone trashed")
	inTrashedJournal := f.seedEntry(t, trashedJournal, "hidden")

	require.NoError(t, f.factory.Entries.Delete(ctx, standalone))
	require.NoError(t, f.factory.Entries.Delete(ctx, inTrashedJournal))
	require.NoError(t, f.factory.Journals.Delete(ctx, trashedJournal))

	res, err := f.svc.TrashedEntries(ctx, f.userId)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, standalone, res[0].Id)
	assert.Equal(t, "Active", res[0].JournalTitle)
	require.NotNil(t, res[0].DeletedAt)
}

func TestRestoreJournalRestoresEntries(t *testing.T) {
	f := newTrashFixture(t)
	ctx := context.Background()

	journalId := f.seedJournal(t, "Plans")
	entryId := f.seedEntry(t, journalId, "note")
	require.NoError(t, f.factory.Entries.Delete(ctx, entryId))
	require.NoError(t, f.factory.Journals.Delete(ctx, journalId))

	require.NoError(t, f.svc.RestoreJournal(ctx, f.userId, journalId))

	journal, err := f.factory.Journals.FindOne(ctx)
	require.NoError(t, err)
	require.NotNil(t, journal)
	assert.Equal(t, journalId, journal.Id)

	entry, err := f.factory.Entries.FindOne(ctx)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, entryId, entry.Id)
}

func TestRestoreJournalNotTrashed(t *testing.T) {
	f := newTrashFixture(t)
	journalId := f.seedJournal(t, "Active")

	err := f.svc.RestoreJournal(context.Background(), f.userId, journalId)
	assert.ErrorIs(t, err, ErrJournalNotFound)
}

func TestRestoreEntryRequiresActiveJournal(t *testing.T) {
	f := newTrashFixture(t)
	ctx := context.Background()

	journalId := f.seedJournal(t, "Binned")
	entryId := f.seedEntry(t, journalId, "note")
	require.NoError(t, f.factory.Entries.Delete(ctx, entryId))
	require.NoError(t, f.factory.Journals.Delete(ctx, journalId))

	err := f.svc.RestoreEntry(ctx, f.userId, entryId)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestRestoreEntry(t *testing.T) {
	f := newTrashFixture(t)
	ctx := context.Background()

	journalId := f.seedJournal(t, "Active")
	entryId := f.seedEntry(t, journalId, "note")
	require.NoError(t, f.factory.Entries.Delete(ctx, entryId))

	require.NoError(t, f.svc.RestoreEntry(ctx, f.userId, entryId))

	entry, err := f.factory.Entries.FindOne(ctx)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, entryId, entry.Id)
}

func TestForceDeleteJournalRemovesEverything(t *testing.T) {
	f := newTrashFixture(t)
	ctx := context.Background()

	journalId := f.seedJournal(t, "Plans")
	f.seedEntry(t, journalId, "note")
	require.NoError(t, f.factory.Journals.Delete(ctx, journalId))

	require.NoError(t, f.svc.ForceDeleteJournal(ctx, f.userId, journalId))

	journals, err := f.factory.Journals.FindAllAny(ctx)
	require.NoError(t, err)
	assert.Empty(t, journals)

	entries, err := f.factory.Entries.FindAllAny(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEmptyTrash(t *testing.T) {
	f := newTrashFixture(t)
	ctx := context.Background()

	trashedJournal := f.seedJournal(t, "Binned")
	f.seedEntry(t, trashedJournal, "inside")
	require.NoError(t, f.factory.Journals.Delete(ctx, trashedJournal))

	activeJournal := f.seedJournal(t, "Active")
	keep := f.seedEntry(t, activeJournal, "keep")
	bin := f.seedEntry(t, activeJournal, "bin")
	require.NoError(t, f.factory.Entries.Delete(ctx, bin))

	require.NoError(t, f.svc.EmptyTrash(ctx, f.userId))

	journals, err := f.factory.Journals.FindAllAny(ctx)
	require.NoError(t, err)
	require.Len(t, journals, 1)
	assert.Equal(t, activeJournal, journals[0].Id)

	entries, err := f.factory.Entries.FindAllAny(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, keep, entries[0].Id)
}
