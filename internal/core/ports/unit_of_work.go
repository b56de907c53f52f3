package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a transaction boundary around session changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit publishes the changes staged since Begin.
	// Returns error if no active transaction.
	Commit(ctx context.Context) error

	// Rollback discards the changes staged since Begin.
	// Returns error if no active transaction.
	Rollback(ctx context.Context) error

	// SessionRepository returns a repository bound to the current transaction.
	SessionRepository() SessionRepository
}
