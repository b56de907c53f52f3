package commands

import (
	"errors"

	"shift/internal/pkg/guard"
)

var ErrLogoutCommandIsNotConstructed = errors.New(
	"LogoutCommand must be created via NewLogoutCommand constructor",
)

type LogoutCommand struct { //nolint:recvcheck //using for validation
	name string

	guard guard.ConstructorGuard
}

func NewLogoutCommand(name string) (LogoutCommand, error) {
	command := LogoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setName(name); err != nil {
		return LogoutCommand{}, err
	}

	return command, nil
}

func (c LogoutCommand) Validate() error {
	return c.guard.Validate(ErrLogoutCommandIsNotConstructed)
}

func (c LogoutCommand) Name() string {
	return c.name
}

func (c *LogoutCommand) setName(name string) error {
	name, err := normalizeName(name)
	if err != nil {
		return err
	}

	c.name = name
	return nil
}
