package service

import (
	"context"
	"time"

	"heyrube-be/internal/dto"
	"heyrube-be/internal/entity"
	"heyrube-be/internal/repository/specification"
	"heyrube-be/internal/repository/unitofwork"
	"heyrube-be/pkg/label"

	"github.com/google/uuid"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 50
)

type ILinkService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateLinkRequest) (*dto.CreateLinkResponse, error)
	List(ctx context.Context, userId uuid.UUID, nodeType string, nodeId uuid.UUID) ([]*dto.LinkResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, req *dto.DeleteLinkRequest) error
	Graph(ctx context.Context, userId uuid.UUID) (*dto.GraphResponse, error)
	Search(ctx context.Context, userId uuid.UUID, query string, limit int) (*dto.SearchResponse, error)
}

type linkService struct {
	uowFactory unitofwork.RepositoryFactory
	graphCache *GraphCache
}

func NewLinkService(uowFactory unitofwork.RepositoryFactory, graphCache *GraphCache) ILinkService {
	return &linkService{
		uowFactory: uowFactory,
		graphCache: graphCache,
	}
}

// findEither resolves a link by its endpoint tuple in either orientation.
func (s *linkService) findEither(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, sourceType string, sourceId uuid.UUID, targetType string, targetId uuid.UUID) (*entity.Link, error) {
	link, err := uow.LinkRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.LinkEndpoints{
			SourceType: sourceType, SourceID: sourceId,
			TargetType: targetType, TargetID: targetId,
		},
	)
	if err != nil || link != nil {
		return link, err
	}
	return uow.LinkRepository().FindOne(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.LinkEndpoints{
			SourceType: targetType, SourceID: targetId,
			TargetType: sourceType, TargetID: sourceId,
		},
	)
}

func (s *linkService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateLinkRequest) (*dto.CreateLinkResponse, error) {
	link := entity.Link{
		Id:         uuid.New(),
		UserId:     userId,
		SourceType: entity.NodeType(req.SourceType),
		SourceId:   req.SourceId,
		TargetType: entity.NodeType(req.TargetType),
		TargetId:   req.TargetId,
		Label:      req.Label,
		CreatedAt:  time.Now(),
	}
	if link.IsSelf() {
		return nil, ErrSelfLink
	}
	if link.Label == "" {
		link.Label = entity.DefaultLinkLabel
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := s.findEither(ctx, uow, userId, req.SourceType, req.SourceId, req.TargetType, req.TargetId)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &dto.CreateLinkResponse{Link: toLinkResponse(existing), Created: false}, nil
	}

	if err := uow.LinkRepository().Create(ctx, &link); err != nil {
		return nil, err
	}
	s.graphCache.Invalidate(userId)
	return &dto.CreateLinkResponse{Link: toLinkResponse(&link), Created: true}, nil
}

func (s *linkService) List(ctx context.Context, userId uuid.UUID, nodeType string, nodeId uuid.UUID) ([]*dto.LinkResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	links, err := uow.LinkRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.LinkTouchesNode{NodeType: nodeType, NodeID: nodeId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.LinkResponse, 0, len(links))
	for _, l := range links {
		out = append(out, toLinkResponse(l))
	}
	return out, nil
}

func (s *linkService) Delete(ctx context.Context, userId uuid.UUID, req *dto.DeleteLinkRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	link, err := s.findEither(ctx, uow, userId, req.SourceType, req.SourceId, req.TargetType, req.TargetId)
	if err != nil {
		return err
	}
	if link == nil {
		return ErrLinkNotFound
	}
	if err := uow.LinkRepository().Delete(ctx, link.Id); err != nil {
		return err
	}
	s.graphCache.Invalidate(userId)
	return nil
}

func (s *linkService) Graph(ctx context.Context, userId uuid.UUID) (*dto.GraphResponse, error) {
	if cached, ok := s.graphCache.Get(userId); ok {
		return cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	links, err := uow.LinkRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	type endpointKey struct {
		nodeType entity.NodeType
		id       uuid.UUID
	}
	entryIds := make([]uuid.UUID, 0, len(links))
	journalIds := make([]uuid.UUID, 0, len(links))
	seen := make(map[endpointKey]bool)
	addEndpoint := func(t entity.NodeType, id uuid.UUID) {
		key := endpointKey{nodeType: t, id: id}
		if seen[key] {
			return
		}
		seen[key] = true
		if t == entity.NodeTypeEntry {
			entryIds = append(entryIds, id)
		} else {
			journalIds = append(journalIds, id)
		}
	}
	for _, l := range links {
		addEndpoint(l.SourceType, l.SourceId)
		addEndpoint(l.TargetType, l.TargetId)
	}

	graph := &dto.GraphResponse{
		Nodes: []dto.GraphNode{},
		Edges: []dto.GraphEdge{},
	}

	if len(entryIds) > 0 {
		// Trashed entries drop out of the graph.
		entries, err := uow.EntryRepository().FindAll(ctx, specification.ByIDs{IDs: entryIds})
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			journalId := e.JournalId
			graph.Nodes = append(graph.Nodes, dto.GraphNode{
				Id:        e.Id,
				Type:      string(entity.NodeTypeEntry),
				Label:     label.ForEntry(e.Title, string(e.CardType), e.Content),
				JournalId: &journalId,
			})
		}
	}
	if len(journalIds) > 0 {
		// Journal nodes survive the trash so edges stay resolvable.
		journals, err := uow.JournalRepository().FindAllAny(ctx, specification.ByIDs{IDs: journalIds})
		if err != nil {
			return nil, err
		}
		for _, j := range journals {
			graph.Nodes = append(graph.Nodes, dto.GraphNode{
				Id:    j.Id,
				Type:  string(entity.NodeTypeJournal),
				Label: j.Title,
			})
		}
	}

	for _, l := range links {
		graph.Edges = append(graph.Edges, dto.GraphEdge{
			Source: dto.GraphEndpoint{Id: l.SourceId, Type: string(l.SourceType)},
			Target: dto.GraphEndpoint{Id: l.TargetId, Type: string(l.TargetType)},
			Label:  l.Label,
		})
	}

	s.graphCache.Set(userId, graph)
	return graph, nil
}

func (s *linkService) Search(ctx context.Context, userId uuid.UUID, query string, limit int) (*dto.SearchResponse, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	journals, err := uow.JournalRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.JournalTitleSearch{Query: query},
		specification.Limit{N: limit},
	)
	if err != nil {
		return nil, err
	}
	entries, err := uow.EntryRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.EntrySearchQuery{Query: query},
		specification.Limit{N: limit},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.SearchResponse{
		Journals: []dto.GraphNode{},
		Entries:  []dto.GraphNode{},
	}
	for _, j := range journals {
		res.Journals = append(res.Journals, dto.GraphNode{
			Id:    j.Id,
			Type:  string(entity.NodeTypeJournal),
			Label: j.Title,
		})
	}
	for _, e := range entries {
		journalId := e.JournalId
		res.Entries = append(res.Entries, dto.GraphNode{
			Id:        e.Id,
			Type:      string(entity.NodeTypeEntry),
			Label:     label.ForEntry(e.Title, string(e.CardType), e.Content),
			JournalId: &journalId,
		})
	}
	return res, nil
}
