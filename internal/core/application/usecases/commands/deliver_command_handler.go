package commands

import (
	"context"

	"shift/internal/core/domain/model/driver"
)

type DeliverCommandHandler struct {
	uowFactory SessionUoWFactory
}

func NewDeliverCommandHandler(uowFactory SessionUoWFactory) DeliverCommandHandler {
	return DeliverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the description of the delivered order.
func (h DeliverCommandHandler) Handle(ctx context.Context, cmd DeliverCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	var delivered string
	err := changeSession(ctx, h.uowFactory, cmd.Name(), func(s *driver.Session) error {
		current := s.CurrentOrder()
		if err := s.Deliver(cmd.At(), cmd.Tip()); err != nil {
			return err
		}

		delivered = current.Describe()
		return nil
	})
	if err != nil {
		return "", err
	}

	return delivered, nil
}
