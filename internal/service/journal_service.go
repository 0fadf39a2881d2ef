package service

import (
	"context"
	"encoding/json"
	"time"

	"heyrube-be/internal/dto"
	"heyrube-be/internal/entity"
	"heyrube-be/internal/repository/specification"
	"heyrube-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IJournalService interface {
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.JournalResponse, error)
	Show(ctx context.Context, userId, id uuid.UUID) (*dto.JournalResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateJournalRequest) (*dto.JournalResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateJournalRequest) (*dto.JournalResponse, error)
	Delete(ctx context.Context, userId, id uuid.UUID) error
}

type journalService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	graphCache       *GraphCache
}

func NewJournalService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService, graphCache *GraphCache) IJournalService {
	return &journalService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		graphCache:       graphCache,
	}
}

func (s *journalService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.JournalResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	journals, err := uow.JournalRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.JournalResponse, 0, len(journals))
	for _, journal := range journals {
		entries, err := uow.EntryRepository().FindAll(ctx,
			specification.ByJournalID{JournalID: journal.Id},
			specification.OrderBy{Field: "created_at", Desc: true},
		)
		if err != nil {
			return nil, err
		}
		out = append(out, toJournalResponse(journal, entries))
	}
	return out, nil
}

func (s *journalService) Show(ctx context.Context, userId, id uuid.UUID) (*dto.JournalResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	journal, err := uow.JournalRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if journal == nil {
		return nil, ErrJournalNotFound
	}
	entries, err := uow.EntryRepository().FindAll(ctx,
		specification.ByJournalID{JournalID: journal.Id},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	return toJournalResponse(journal, entries), nil
}

func (s *journalService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateJournalRequest) (*dto.JournalResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	journal := &entity.Journal{
		Id:        uuid.New(),
		Title:     req.Title,
		Tags:      entity.NormalizeTags(req.Tags),
		UserId:    userId,
		CreatedAt: time.Now(),
	}
	if err := uow.JournalRepository().Create(ctx, journal); err != nil {
		return nil, err
	}
	if err := s.publishActivity(ctx, "JOURNAL_CREATED", userId, journal.Id); err != nil {
		return nil, err
	}
	return toJournalResponse(journal, nil), nil
}

func (s *journalService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateJournalRequest) (*dto.JournalResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	journal, err := uow.JournalRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if journal == nil {
		return nil, ErrJournalNotFound
	}

	if req.Title != nil {
		journal.Title = *req.Title
	}
	if req.Tags != nil {
		journal.Tags = entity.NormalizeTags(*req.Tags)
	}
	if err := uow.JournalRepository().Update(ctx, journal); err != nil {
		return nil, err
	}

	// The journal node carries the title as its label.
	s.graphCache.Invalidate(userId)
	return toJournalResponse(journal, nil), nil
}

// Delete soft-deletes the journal with its entries in one transaction.
// Ownership is checked against the journal itself so a foreign id yields
// forbidden, not a silent miss.
func (s *journalService) Delete(ctx context.Context, userId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	journal, err := uow.JournalRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if journal == nil {
		return ErrJournalNotFound
	}
	if journal.UserId != userId {
		return ErrForbidden
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.EntryRepository().DeleteByJournal(ctx, journal.Id); err != nil {
		return err
	}
	if err := uow.JournalRepository().Delete(ctx, journal.Id); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	// The journal node survives the trash but its entry nodes drop out.
	s.graphCache.Invalidate(userId)
	return s.publishActivity(ctx, "JOURNAL_TRASHED", userId, journal.Id)
}

func (s *journalService) publishActivity(ctx context.Context, event string, userId, journalId uuid.UUID) error {
	payload, err := json.Marshal(dto.ActivityMessage{
		Event:      event,
		UserId:     userId,
		SubjectId:  journalId,
		JournalId:  journalId,
		OccurredAt: time.Now(),
	})
	if err != nil {
		return err
	}
	return s.publisherService.Publish(ctx, payload)
}
