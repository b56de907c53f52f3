package commands

import (
	"errors"
	"strings"

	"shift/internal/core/domain/model/kernel"
	"shift/internal/pkg/errs"
	"shift/internal/pkg/guard"
)

var (
	ErrRegisterDriverCommandIsNotConstructed = errors.New(
		"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
	)
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
)

// RegisterDriverCommand adds a new driver to the shift. The driver starts
// logged out.
//
// Example:
//
//	cmd, err := NewRegisterDriverCommand("Alice")
//	if err != nil {
//	    return fmt.Errorf("invalid driver data: %w", err)
//	}
//
//	handler := NewRegisterDriverCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register driver: %w", err)
//	}
type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	name     string

	guard guard.ConstructorGuard
}

// NewRegisterDriverCommand generates the driver ID and trims the name.
func NewRegisterDriverCommand(name string) (RegisterDriverCommand, error) {
	command := RegisterDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDriverID(kernel.NewUUID()),
		command.setName(name),
	); err != nil {
		return RegisterDriverCommand{}, err
	}

	return command, nil
}

func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

func (c RegisterDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c RegisterDriverCommand) Name() string {
	return c.name
}

func (c *RegisterDriverCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.driverID = id
	return nil
}

func (c *RegisterDriverCommand) setName(name string) error {
	name, err := normalizeName(name)
	if err != nil {
		return err
	}

	c.name = name
	return nil
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNameIsRequired
	}
	return name, nil
}
