package commands

import (
	"context"

	"shift/internal/core/domain/model/driver"
)

// changeSession runs change against the session registered under name inside
// one unit of work. Nothing is stored when change fails.
func changeSession(
	ctx context.Context,
	uowFactory SessionUoWFactory,
	name string,
	change func(*driver.Session) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sessionRepo := uow.SessionRepository()
	session, err := sessionRepo.GetByName(ctx, name)
	if err != nil {
		return err
	}

	if err = change(session); err != nil {
		return err
	}

	if err = sessionRepo.Update(ctx, session); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
