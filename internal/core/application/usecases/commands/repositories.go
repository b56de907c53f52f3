// Package commands contains the operations that change driver sessions.
// Every handler follows the same pattern: validate the command, open a unit
// of work, load the session, apply the domain operation, store it, commit.
package commands

import (
	"context"

	"shift/internal/core/ports"
)

type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// SessionRepoFactory provides access to the session repository within a transaction.
	SessionRepoFactory interface {
		SessionRepository() ports.SessionRepository
	}

	// SessionUoW manages transactions for session operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   session, err := uow.SessionRepository().GetByName(ctx, "Alice")
	//   // ... apply the domain operation
	//
	//   err = uow.Commit(ctx)
	SessionUoW interface {
		TxManager
		SessionRepoFactory
	}

	// SessionUoWFactory creates new session unit of work instances.
	SessionUoWFactory interface {
		Create() SessionUoW
	}
)
