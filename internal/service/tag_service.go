package service

import (
	"context"
	"strings"

	"heyrube-be/internal/dto"
	"heyrube-be/internal/repository/specification"
	"heyrube-be/internal/repository/unitofwork"
)

type ITagService interface {
	ListNames(ctx context.Context) ([]string, error)
	Create(ctx context.Context, req *dto.CreateTagRequest) (*dto.TagResponse, error)
}

type tagService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTagService(uowFactory unitofwork.RepositoryFactory) ITagService {
	return &tagService{uowFactory: uowFactory}
}

func (s *tagService) ListNames(ctx context.Context) ([]string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	tags, err := uow.TagRepository().FindAll(ctx, specification.OrderBy{Field: "name", Desc: false})
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	return names, nil
}

func (s *tagService) Create(ctx context.Context, req *dto.CreateTagRequest) (*dto.TagResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrEmptyTagName
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	tag, err := uow.TagRepository().FirstOrCreate(ctx, name)
	if err != nil {
		return nil, err
	}
	return &dto.TagResponse{Id: tag.Id, Name: tag.Name}, nil
}
