package memory

import (
	"context"

	"heyrube-be/internal/repository/contract"
	"heyrube-be/internal/repository/unitofwork"
)

// Factory is a unitofwork.RepositoryFactory backed by the in-memory
// repositories. Begin/Commit/Rollback are no-ops; there is nothing
// transactional to undo.
type Factory struct {
	Users    *UserRepository
	Journals *JournalRepository
	Entries  *EntryRepository
	Links    *LinkRepository
	Tags     *TagRepository
}

func NewFactory() *Factory {
	return &Factory{
		Users:    NewUserRepository(),
		Journals: NewJournalRepository(),
		Entries:  NewEntryRepository(),
		Links:    NewLinkRepository(),
		Tags:     NewTagRepository(),
	}
}

func (f *Factory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &unitOfWork{factory: f}
}

type unitOfWork struct {
	factory *Factory
}

func (u *unitOfWork) Begin(ctx context.Context) error { return nil }
func (u *unitOfWork) Commit() error                   { return nil }
func (u *unitOfWork) Rollback() error                 { return nil }

func (u *unitOfWork) UserRepository() contract.UserRepository {
	return u.factory.Users
}

func (u *unitOfWork) JournalRepository() contract.JournalRepository {
	return u.factory.Journals
}

func (u *unitOfWork) EntryRepository() contract.EntryRepository {
	return u.factory.Entries
}

func (u *unitOfWork) LinkRepository() contract.LinkRepository {
	return u.factory.Links
}

func (u *unitOfWork) TagRepository() contract.TagRepository {
	return u.factory.Tags
}
