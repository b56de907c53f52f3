package commands

import (
	"context"

	"shift/internal/core/domain/model/driver"
)

// LogoutCommandHandler ends a driver's shift. Drivers still out on a delivery
// are refused with driver.ErrCannotLogoutWhileDelivering.
type LogoutCommandHandler struct {
	uowFactory SessionUoWFactory
}

func NewLogoutCommandHandler(uowFactory SessionUoWFactory) LogoutCommandHandler {
	return LogoutCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h LogoutCommandHandler) Handle(ctx context.Context, cmd LogoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return changeSession(ctx, h.uowFactory, cmd.Name(), func(s *driver.Session) error {
		return s.Logout()
	})
}
