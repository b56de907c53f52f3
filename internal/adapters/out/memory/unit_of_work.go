package memory

import (
	"context"
	"errors"
	"maps"
	"slices"

	"shift/internal/adapters/out/memory/sessionrepo"
	"shift/internal/core/domain/model/driver"
	"shift/internal/core/ports"
)

var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork stages session changes until Commit. A UnitOfWork belongs to a
// single goroutine.
type UnitOfWork struct {
	store  *Store
	staged map[string]sessionrepo.SessionDTO
	active bool
}

// Begin takes the store's write lock, giving up with ctx's error if ctx is
// done first. Calling Begin on an active unit of work is a no-op.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.active {
		return nil
	}
	if err := uow.store.lockWrite(ctx); err != nil {
		return err
	}

	uow.staged = make(map[string]sessionrepo.SessionDTO)
	uow.active = true
	return nil
}

// Commit publishes the staged sessions and releases the lock.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	maps.Copy(uow.store.rows, uow.staged)
	uow.finish()
	return nil
}

// Rollback drops the staged sessions and releases the lock.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.finish()
	return nil
}

// SessionRepository returns a repository over the staged and committed rows.
// Without an active transaction it can only read.
func (uow *UnitOfWork) SessionRepository() ports.SessionRepository {
	if !uow.active {
		return readLocked{store: uow.store}
	}
	return sessionrepo.NewRepository(stagedTable{uow})
}

func (uow *UnitOfWork) finish() {
	uow.staged = nil
	uow.active = false
	uow.store.unlockWrite()
}

// stagedTable sees staged rows over committed ones. The unit of work holds
// the write lock while it is in use.
type stagedTable struct {
	uow *UnitOfWork
}

func (t stagedTable) Load(name string) (sessionrepo.SessionDTO, bool) {
	if dto, ok := t.uow.staged[name]; ok {
		return dto, true
	}
	dto, ok := t.uow.store.rows[name]
	return dto, ok
}

func (t stagedTable) Names() []string {
	names := slices.Collect(maps.Keys(t.uow.store.rows))
	for name := range t.uow.staged {
		if _, ok := t.uow.store.rows[name]; !ok {
			names = append(names, name)
		}
	}
	return names
}

func (t stagedTable) Save(dto sessionrepo.SessionDTO) error {
	if !t.uow.active {
		return ErrNoActiveTransaction
	}
	t.uow.staged[dto.Name] = dto
	return nil
}

// readLocked serves SessionRepository calls made outside a transaction.
type readLocked struct {
	store *Store
}

func (r readLocked) Add(context.Context, *driver.Session) error {
	return ErrNoActiveTransaction
}

func (r readLocked) Update(context.Context, *driver.Session) error {
	return ErrNoActiveTransaction
}

func (r readLocked) GetByName(ctx context.Context, name string) (*driver.Session, error) {
	return r.store.GetByName(ctx, name)
}

func (r readLocked) GetAll(ctx context.Context) ([]*driver.Session, error) {
	return r.store.GetAll(ctx)
}
