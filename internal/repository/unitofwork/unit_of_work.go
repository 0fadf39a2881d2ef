package unitofwork

import (
	"context"

	"heyrube-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	JournalRepository() contract.JournalRepository
	EntryRepository() contract.EntryRepository
	LinkRepository() contract.LinkRepository
	TagRepository() contract.TagRepository
}
