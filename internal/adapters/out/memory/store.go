// Package memory keeps driver sessions in process memory behind a unit of
// work.
//
// A Store holds the committed sessions. Each UnitOfWork created by
// UnitOfWorkFactory takes the store's write lock in Begin and holds it until
// Commit or Rollback, so commands run one at a time. Changes are staged as
// SessionDTO copies and become visible only on Commit.
//
// Locks are taken with the caller's context: a request whose deadline passes
// while another command holds the store gets the context error back.
//
// Basic usage:
//
//	store := memory.NewStore()
//	factory := memory.NewUnitOfWorkFactory(store)
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.SessionRepository().Add(ctx, session); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Reads that do not belong to a command go through Store.GetByName and
// Store.GetAll, which take the read lock.
package memory

import (
	"context"
	"errors"
	"maps"
	"slices"

	"shift/internal/adapters/out/memory/sessionrepo"
	"shift/internal/core/domain/model/driver"

	"golang.org/x/sync/semaphore"
)

// ErrReadOnly is returned when the committed view of a Store is written to
// outside a unit of work.
var ErrReadOnly = errors.New("store is read only outside a unit of work")

// writerWeight is the semaphore weight of the write lock. Readers take one
// unit each, so a writer waits for every reader and excludes them all.
const writerWeight = 1 << 20

type Store struct {
	lock *semaphore.Weighted
	rows map[string]sessionrepo.SessionDTO
}

func NewStore() *Store {
	return &Store{
		lock: semaphore.NewWeighted(writerWeight),
		rows: make(map[string]sessionrepo.SessionDTO),
	}
}

// GetByName returns the committed session registered under name.
func (s *Store) GetByName(ctx context.Context, name string) (*driver.Session, error) {
	if err := s.lock.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer s.lock.Release(1)

	return sessionrepo.NewRepository(committedTable{s}).GetByName(ctx, name)
}

// GetAll returns every committed session ordered by name.
func (s *Store) GetAll(ctx context.Context) ([]*driver.Session, error) {
	if err := s.lock.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer s.lock.Release(1)

	return sessionrepo.NewRepository(committedTable{s}).GetAll(ctx)
}

func (s *Store) lockWrite(ctx context.Context) error {
	return s.lock.Acquire(ctx, writerWeight)
}

func (s *Store) unlockWrite() {
	s.lock.Release(writerWeight)
}

// committedTable reads the committed rows. The caller holds the lock.
type committedTable struct {
	store *Store
}

func (t committedTable) Load(name string) (sessionrepo.SessionDTO, bool) {
	dto, ok := t.store.rows[name]
	return dto, ok
}

func (t committedTable) Names() []string {
	return slices.Collect(maps.Keys(t.store.rows))
}

func (t committedTable) Save(sessionrepo.SessionDTO) error {
	return ErrReadOnly
}
