package commands

import (
	"errors"

	"shift/internal/core/domain/model/kernel"
	"shift/internal/pkg/guard"
)

var ErrArriveCommandIsNotConstructed = errors.New(
	"ArriveCommand must be created via NewArriveCommand constructor",
)

// ArriveCommand reports the driver back at the store.
type ArriveCommand struct { //nolint:recvcheck //using for validation
	name string
	at   kernel.Instant

	guard guard.ConstructorGuard
}

func NewArriveCommand(name string, at kernel.Instant) (ArriveCommand, error) {
	command := ArriveCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setAt(at),
	); err != nil {
		return ArriveCommand{}, err
	}

	return command, nil
}

func (c ArriveCommand) Validate() error {
	return c.guard.Validate(ErrArriveCommandIsNotConstructed)
}

func (c ArriveCommand) Name() string {
	return c.name
}

func (c ArriveCommand) At() kernel.Instant {
	return c.at
}

func (c *ArriveCommand) setName(name string) error {
	name, err := normalizeName(name)
	if err != nil {
		return err
	}

	c.name = name
	return nil
}

func (c *ArriveCommand) setAt(at kernel.Instant) error {
	if err := at.Validate(); err != nil {
		return err
	}

	c.at = at
	return nil
}
