package commands

import (
	"errors"

	"shift/internal/pkg/guard"
)

var ErrLoginCommandIsNotConstructed = errors.New(
	"LoginCommand must be created via NewLoginCommand constructor",
)

// LoginCommand starts the shift of the driver registered under a name.
type LoginCommand struct { //nolint:recvcheck //using for validation
	name string

	guard guard.ConstructorGuard
}

func NewLoginCommand(name string) (LoginCommand, error) {
	command := LoginCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setName(name); err != nil {
		return LoginCommand{}, err
	}

	return command, nil
}

func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

func (c LoginCommand) Name() string {
	return c.name
}

func (c *LoginCommand) setName(name string) error {
	name, err := normalizeName(name)
	if err != nil {
		return err
	}

	c.name = name
	return nil
}
