package commands

import (
	"context"

	"shift/internal/core/domain/model/driver"
)

// LoginCommandHandler starts a driver's shift.
type LoginCommandHandler struct {
	uowFactory SessionUoWFactory
}

func NewLoginCommandHandler(uowFactory SessionUoWFactory) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return changeSession(ctx, h.uowFactory, cmd.Name(), func(s *driver.Session) error {
		return s.Login()
	})
}
