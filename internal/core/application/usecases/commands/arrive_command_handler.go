package commands

import (
	"context"

	"shift/internal/core/domain/model/driver"
)

// ArriveCommandHandler brings a driver back to Idle, whether or not the order
// was delivered.
type ArriveCommandHandler struct {
	uowFactory SessionUoWFactory
}

func NewArriveCommandHandler(uowFactory SessionUoWFactory) ArriveCommandHandler {
	return ArriveCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h ArriveCommandHandler) Handle(ctx context.Context, cmd ArriveCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return changeSession(ctx, h.uowFactory, cmd.Name(), func(s *driver.Session) error {
		return s.Arrive(cmd.At())
	})
}
