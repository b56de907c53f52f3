// Package ports defines the contracts between the shift domain and the
// adapters that store driver sessions.
package ports

import (
	"context"

	"shift/internal/core/domain/model/driver"
)

// SessionRepository stores driver sessions keyed by driver name.
type SessionRepository interface {
	// Add stores a new session. Returns errs.ErrObjectAlreadyExists when a
	// session with the same name exists.
	Add(ctx context.Context, session *driver.Session) error

	// Update replaces the stored state of an existing session.
	Update(ctx context.Context, session *driver.Session) error

	// GetByName returns the session registered under name, or
	// errs.ErrObjectNotFound.
	GetByName(ctx context.Context, name string) (*driver.Session, error)

	// GetAll returns every session ordered by name.
	GetAll(ctx context.Context) ([]*driver.Session, error)
}
