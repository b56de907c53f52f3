package commands

import (
	"context"

	"shift/internal/core/domain/model/driver"
	"shift/internal/core/domain/model/order"
)

// DepartCommandHandler builds the order and hands it to the driver.
type DepartCommandHandler struct {
	uowFactory SessionUoWFactory
}

func NewDepartCommandHandler(uowFactory SessionUoWFactory) DepartCommandHandler {
	return DepartCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DepartCommandHandler) Handle(ctx context.Context, cmd DepartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var o *order.Order
	if cmd.HasOrder() {
		var err error
		if o, err = order.NewOrder(cmd.OrderID(), cmd.Description(), cmd.PlacedAt()); err != nil {
			return err
		}
	}

	return changeSession(ctx, h.uowFactory, cmd.Name(), func(s *driver.Session) error {
		return s.Depart(cmd.At(), o)
	})
}
