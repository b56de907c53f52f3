package commands

import (
	"context"

	"shift/internal/core/domain/model/driver"
)

// RegisterDriverCommandHandler creates driver sessions.
type RegisterDriverCommandHandler struct {
	uowFactory SessionUoWFactory
}

func NewRegisterDriverCommandHandler(uowFactory SessionUoWFactory) RegisterDriverCommandHandler {
	return RegisterDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores a new logged out session. A name that is already registered
// fails with errs.ErrObjectAlreadyExists from the repository.
func (h RegisterDriverCommandHandler) Handle(ctx context.Context, cmd RegisterDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	session, err := driver.NewSession(cmd.DriverID(), cmd.Name())
	if err != nil {
		return err
	}

	if err = uow.SessionRepository().Add(ctx, session); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
