package service

import (
	"context"

	"heyrube-be/internal/dto"
	"heyrube-be/internal/entity"
	"heyrube-be/internal/repository/specification"
	"heyrube-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ITrashService interface {
	TrashedJournals(ctx context.Context, userId uuid.UUID) ([]*dto.TrashedJournalResponse, error)
	TrashedEntries(ctx context.Context, userId uuid.UUID) ([]*dto.TrashedEntryResponse, error)
	RestoreJournal(ctx context.Context, userId, id uuid.UUID) error
	ForceDeleteJournal(ctx context.Context, userId, id uuid.UUID) error
	RestoreEntry(ctx context.Context, userId, id uuid.UUID) error
	ForceDeleteEntry(ctx context.Context, userId, id uuid.UUID) error
	EmptyTrash(ctx context.Context, userId uuid.UUID) error
}

type trashService struct {
	uowFactory unitofwork.RepositoryFactory
	graphCache *GraphCache
}

func NewTrashService(uowFactory unitofwork.RepositoryFactory, graphCache *GraphCache) ITrashService {
	return &trashService{
		uowFactory: uowFactory,
		graphCache: graphCache,
	}
}

func (s *trashService) TrashedJournals(ctx context.Context, userId uuid.UUID) ([]*dto.TrashedJournalResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	journals, err := uow.JournalRepository().FindAllTrashed(ctx,
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.TrashedJournalResponse, 0, len(journals))
	for _, journal := range journals {
		// A trashed journal shows everything it held, trashed entries
		// included.
		entries, err := uow.EntryRepository().FindAllAny(ctx,
			specification.ByJournalID{JournalID: journal.Id},
			specification.OrderBy{Field: "created_at", Desc: true},
		)
		if err != nil {
			return nil, err
		}
		out = append(out, &dto.TrashedJournalResponse{
			Id:        journal.Id,
			Title:     journal.Title,
			Tags:      journal.Tags,
			UserId:    journal.UserId,
			Entries:   toEntryResponses(entries),
			CreatedAt: journal.CreatedAt,
			DeletedAt: journal.DeletedAt,
		})
	}
	return out, nil
}

func (s *trashService) TrashedEntries(ctx context.Context, userId uuid.UUID) ([]*dto.TrashedEntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Entries inside a trashed journal are listed under the journal, not
	// here.
	trashedJournals, err := uow.JournalRepository().FindAllTrashed(ctx,
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	trashedIds := make([]uuid.UUID, 0, len(trashedJournals))
	for _, j := range trashedJournals {
		trashedIds = append(trashedIds, j.Id)
	}

	entries, err := uow.EntryRepository().FindAllTrashed(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.NotInJournals{JournalIDs: trashedIds},
		specification.OrderBy{Field: "deleted_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	titles := make(map[uuid.UUID]string)
	journalIds := make([]uuid.UUID, 0, len(entries))
	for _, e := range entries {
		if _, ok := titles[e.JournalId]; !ok {
			titles[e.JournalId] = ""
			journalIds = append(journalIds, e.JournalId)
		}
	}
	if len(journalIds) > 0 {
		journals, err := uow.JournalRepository().FindAllAny(ctx, specification.ByIDs{IDs: journalIds})
		if err != nil {
			return nil, err
		}
		for _, j := range journals {
			titles[j.Id] = j.Title
		}
	}

	out := make([]*dto.TrashedEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, &dto.TrashedEntryResponse{
			EntryResponse: *toEntryResponse(e),
			JournalTitle:  titles[e.JournalId],
			DeletedAt:     e.DeletedAt,
		})
	}
	return out, nil
}

func (s *trashService) trashedJournal(ctx context.Context, uow unitofwork.UnitOfWork, userId, id uuid.UUID) (*entity.Journal, error) {
	journal, err := uow.JournalRepository().FindOneAny(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if journal == nil || !journal.IsDeleted {
		return nil, ErrJournalNotFound
	}
	return journal, nil
}

// RestoreJournal brings a journal back along with every entry it held.
// Display orders come back untouched; the next write in the journal will
// recompact them.
func (s *trashService) RestoreJournal(ctx context.Context, userId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	journal, err := s.trashedJournal(ctx, uow, userId, id)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.JournalRepository().Restore(ctx, journal.Id); err != nil {
		return err
	}
	if err := uow.EntryRepository().RestoreByJournal(ctx, journal.Id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}
	s.graphCache.Invalidate(userId)
	return nil
}

func (s *trashService) ForceDeleteJournal(ctx context.Context, userId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	journal, err := s.trashedJournal(ctx, uow, userId, id)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.EntryRepository().HardDeleteByJournal(ctx, journal.Id); err != nil {
		return err
	}
	if err := uow.JournalRepository().HardDelete(ctx, journal.Id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}
	s.graphCache.Invalidate(userId)
	return nil
}

func (s *trashService) trashedEntry(ctx context.Context, uow unitofwork.UnitOfWork, userId, id uuid.UUID) (*entity.JournalEntry, error) {
	entry, err := uow.EntryRepository().FindOneTrashed(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrEntryNotFound
	}
	return entry, nil
}

func (s *trashService) RestoreEntry(ctx context.Context, userId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	entry, err := s.trashedEntry(ctx, uow, userId, id)
	if err != nil {
		return err
	}

	// The parent journal must be active; restore it first otherwise.
	journal, err := uow.JournalRepository().FindOne(ctx, specification.ByID{ID: entry.JournalId})
	if err != nil {
		return err
	}
	if journal == nil {
		return ErrEntryNotFound
	}
	if err := uow.EntryRepository().Restore(ctx, entry.Id); err != nil {
		return err
	}
	s.graphCache.Invalidate(userId)
	return nil
}

func (s *trashService) ForceDeleteEntry(ctx context.Context, userId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	entry, err := s.trashedEntry(ctx, uow, userId, id)
	if err != nil {
		return err
	}
	if err := uow.EntryRepository().HardDelete(ctx, entry.Id); err != nil {
		return err
	}
	s.graphCache.Invalidate(userId)
	return nil
}

func (s *trashService) EmptyTrash(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	trashedJournals, err := uow.JournalRepository().FindAllTrashed(ctx,
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	for _, journal := range trashedJournals {
		if err := uow.EntryRepository().HardDeleteByJournal(ctx, journal.Id); err != nil {
			return err
		}
		if err := uow.JournalRepository().HardDelete(ctx, journal.Id); err != nil {
			return err
		}
	}

	// What remains trashed at this point lives in active journals.
	entries, err := uow.EntryRepository().FindAllTrashed(ctx,
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := uow.EntryRepository().HardDelete(ctx, e.Id); err != nil {
			return err
		}
	}
	if err := uow.Commit(); err != nil {
		return err
	}
	s.graphCache.Invalidate(userId)
	return nil
}
