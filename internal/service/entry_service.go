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

type IEntryService interface {
	List(ctx context.Context, userId, journalId uuid.UUID) ([]*dto.EntryResponse, error)
	Create(ctx context.Context, userId, journalId uuid.UUID, req *dto.CreateEntryRequest) (*dto.EntryResponse, error)
	Update(ctx context.Context, userId, journalId uuid.UUID, req *dto.UpdateEntryRequest) (*dto.EntryResponse, error)
	Delete(ctx context.Context, userId, journalId, entryId uuid.UUID) error
	Pin(ctx context.Context, userId, journalId, entryId uuid.UUID, pinned bool) (*dto.EntryResponse, error)
	Reorder(ctx context.Context, userId, journalId uuid.UUID, items []dto.ReorderEntryItem) ([]*dto.EntryResponse, error)
}

type entryService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	graphCache       *GraphCache
}

func NewEntryService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService, graphCache *GraphCache) IEntryService {
	return &entryService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		graphCache:       graphCache,
	}
}

// renumber reloads the journal's active entries and applies the writes
// computeOrder decided on. Unchanged rows are never touched.
func (s *entryService) renumber(ctx context.Context, uow unitofwork.UnitOfWork, journalId, pinFirstId uuid.UUID) error {
	entries, err := uow.EntryRepository().FindAll(ctx, specification.ByJournalID{JournalID: journalId})
	if err != nil {
		return err
	}
	for _, a := range computeOrder(entries, pinFirstId) {
		if err := uow.EntryRepository().SetDisplayOrder(ctx, a.id, a.order); err != nil {
			return err
		}
	}
	return nil
}

func (s *entryService) ownedJournal(ctx context.Context, uow unitofwork.UnitOfWork, userId, journalId uuid.UUID) (*entity.Journal, error) {
	journal, err := uow.JournalRepository().FindOne(ctx,
		specification.ByID{ID: journalId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if journal == nil {
		return nil, ErrJournalNotFound
	}
	return journal, nil
}

func (s *entryService) publishActivity(ctx context.Context, event string, userId, subjectId, journalId uuid.UUID) error {
	payload, err := json.Marshal(dto.ActivityMessage{
		Event:      event,
		UserId:     userId,
		SubjectId:  subjectId,
		JournalId:  journalId,
		OccurredAt: time.Now(),
	})
	if err != nil {
		return err
	}
	return s.publisherService.Publish(ctx, payload)
}

func (s *entryService) List(ctx context.Context, userId, journalId uuid.UUID) ([]*dto.EntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := s.ownedJournal(ctx, uow, userId, journalId); err != nil {
		return nil, err
	}
	entries, err := uow.EntryRepository().FindAll(ctx,
		specification.ByJournalID{JournalID: journalId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	return toEntryResponses(entries), nil
}

func (s *entryService) Create(ctx context.Context, userId, journalId uuid.UUID, req *dto.CreateEntryRequest) (*dto.EntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	journal, err := s.ownedJournal(ctx, uow, userId, journalId)
	if err != nil {
		return nil, err
	}

	card := entity.Card{
		Type:  entity.CardType(req.CardType),
		Body:  req.Content,
		Items: toCheckboxItems(req.CheckboxItems),
	}
	entry := &entity.JournalEntry{
		Id:            uuid.New(),
		JournalId:     journal.Id,
		UserId:        journal.UserId,
		CardType:      card.Type,
		Title:         req.Title,
		Content:       card.Summary(),
		CheckboxItems: card.ChecklistItems(),
		Mood:          req.Mood,
		CreatedAt:     time.Now(),
	}
	if err := uow.EntryRepository().Create(ctx, entry); err != nil {
		return nil, err
	}

	// The fresh entry goes to the top of the journal.
	if err := s.renumber(ctx, uow, journal.Id, entry.Id); err != nil {
		return nil, err
	}

	refreshed, err := uow.EntryRepository().FindOne(ctx, specification.ByID{ID: entry.Id})
	if err != nil {
		return nil, err
	}
	if refreshed == nil {
		refreshed = entry
	}

	if err := s.publishActivity(ctx, "ENTRY_CREATED", userId, entry.Id, journal.Id); err != nil {
		return nil, err
	}
	return toEntryResponse(refreshed), nil
}

func (s *entryService) Update(ctx context.Context, userId, journalId uuid.UUID, req *dto.UpdateEntryRequest) (*dto.EntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	journal, err := s.ownedJournal(ctx, uow, userId, journalId)
	if err != nil {
		return nil, err
	}

	entry, err := uow.EntryRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.ByJournalID{JournalID: journal.Id},
	)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		// Nothing to update; not an error.
		return nil, nil
	}

	if req.JournalId != nil && *req.JournalId != entry.JournalId {
		// Moving across journals keeps working even if the target sits in
		// the trash; the entry follows the target journal's owner.
		target, err := uow.JournalRepository().FindOneAny(ctx, specification.ByID{ID: *req.JournalId})
		if err != nil {
			return nil, err
		}
		if target != nil {
			entry.UserId = target.UserId
		}
		entry.JournalId = *req.JournalId
	}
	if req.CardType != nil {
		entry.CardType = entity.CardType(*req.CardType)
	}
	if req.Title != nil {
		entry.Title = *req.Title
	}
	if req.Mood != nil {
		entry.Mood = *req.Mood
	}

	card := entity.Card{
		Type:  entry.CardType,
		Body:  req.Content,
		Items: toCheckboxItems(req.CheckboxItems),
	}
	entry.Content = card.Summary()
	entry.CheckboxItems = card.ChecklistItems()

	if err := uow.EntryRepository().Update(ctx, entry); err != nil {
		return nil, err
	}

	// The entry's node label or journal may have changed.
	s.graphCache.Invalidate(userId)
	if entry.UserId != userId {
		s.graphCache.Invalidate(entry.UserId)
	}
	return toEntryResponse(entry), nil
}

func (s *entryService) Delete(ctx context.Context, userId, journalId, entryId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	journal, err := s.ownedJournal(ctx, uow, userId, journalId)
	if err != nil {
		return err
	}

	entry, err := uow.EntryRepository().FindOne(ctx,
		specification.ByID{ID: entryId},
		specification.ByJournalID{JournalID: journal.Id},
	)
	if err != nil {
		return err
	}
	if entry == nil {
		return ErrEntryNotFound
	}

	if err := uow.EntryRepository().Delete(ctx, entry.Id); err != nil {
		return err
	}
	if err := s.renumber(ctx, uow, journal.Id, uuid.Nil); err != nil {
		return err
	}

	// A trashed entry no longer resolves to a graph node.
	s.graphCache.Invalidate(userId)
	return s.publishActivity(ctx, "ENTRY_TRASHED", userId, entry.Id, journal.Id)
}

func (s *entryService) Pin(ctx context.Context, userId, journalId, entryId uuid.UUID, pinned bool) (*dto.EntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	journal, err := s.ownedJournal(ctx, uow, userId, journalId)
	if err != nil {
		return nil, err
	}

	entry, err := uow.EntryRepository().FindOne(ctx,
		specification.ByID{ID: entryId},
		specification.ByJournalID{JournalID: journal.Id},
	)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrEntryNotFound
	}

	entry.Pinned = pinned
	if pinned {
		entry.DisplayOrder = nil
	}
	if err := uow.EntryRepository().Update(ctx, entry); err != nil {
		return nil, err
	}

	pinFirst := uuid.Nil
	if pinned {
		pinFirst = entry.Id
	}
	if err := s.renumber(ctx, uow, journal.Id, pinFirst); err != nil {
		return nil, err
	}

	refreshed, err := uow.EntryRepository().FindOne(ctx, specification.ByID{ID: entry.Id})
	if err != nil {
		return nil, err
	}
	if refreshed == nil {
		refreshed = entry
	}
	return toEntryResponse(refreshed), nil
}

func (s *entryService) Reorder(ctx context.Context, userId, journalId uuid.UUID, items []dto.ReorderEntryItem) ([]*dto.EntryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	journal, err := s.ownedJournal(ctx, uow, userId, journalId)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		entry, err := uow.EntryRepository().FindOne(ctx,
			specification.ByID{ID: item.Id},
			specification.ByJournalID{JournalID: journal.Id},
		)
		if err != nil {
			return nil, err
		}
		if entry == nil {
			// Stale or foreign ids are skipped, not rejected.
			continue
		}

		changed := false
		if item.Pinned != nil {
			entry.Pinned = *item.Pinned
			changed = true
		}
		if item.DisplayOrder != nil {
			if item.Pinned != nil && *item.Pinned {
				entry.DisplayOrder = nil
			} else {
				slot := *item.DisplayOrder
				entry.DisplayOrder = &slot
			}
			changed = true
		}
		if changed {
			if err := uow.EntryRepository().Update(ctx, entry); err != nil {
				return nil, err
			}
		}
	}

	// One compaction pass restores the invariant whatever the client sent.
	if err := s.renumber(ctx, uow, journal.Id, uuid.Nil); err != nil {
		return nil, err
	}

	entries, err := uow.EntryRepository().FindAll(ctx,
		specification.ByJournalID{JournalID: journal.Id},
		specification.OrderBy{Field: "display_order", Desc: false},
	)
	if err != nil {
		return nil, err
	}
	return toEntryResponses(entries), nil
}
