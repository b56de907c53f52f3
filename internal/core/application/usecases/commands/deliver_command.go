package commands

import (
	"errors"

	"shift/internal/core/domain/model/kernel"
	"shift/internal/pkg/guard"
)

var ErrDeliverCommandIsNotConstructed = errors.New(
	"DeliverCommand must be created via NewDeliverCommand constructor",
)

// DeliverCommand reports the driver's current order handed over, with the tip
// received. The tip is checked by the session.
type DeliverCommand struct { //nolint:recvcheck //using for validation
	name string
	at   kernel.Instant
	tip  float64

	guard guard.ConstructorGuard
}

func NewDeliverCommand(name string, at kernel.Instant, tip float64) (DeliverCommand, error) {
	command := DeliverCommand{
		tip:   tip,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setAt(at),
	); err != nil {
		return DeliverCommand{}, err
	}

	return command, nil
}

func (c DeliverCommand) Validate() error {
	return c.guard.Validate(ErrDeliverCommandIsNotConstructed)
}

func (c DeliverCommand) Name() string {
	return c.name
}

func (c DeliverCommand) At() kernel.Instant {
	return c.at
}

func (c DeliverCommand) Tip() float64 {
	return c.tip
}

func (c *DeliverCommand) setName(name string) error {
	name, err := normalizeName(name)
	if err != nil {
		return err
	}

	c.name = name
	return nil
}

func (c *DeliverCommand) setAt(at kernel.Instant) error {
	if err := at.Validate(); err != nil {
		return err
	}

	c.at = at
	return nil
}
