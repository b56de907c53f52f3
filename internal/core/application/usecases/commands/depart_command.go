package commands

import (
	"errors"
	"strings"

	"shift/internal/core/domain/model/kernel"
	"shift/internal/core/domain/model/order"
	"shift/internal/pkg/guard"
)

var ErrDepartCommandIsNotConstructed = errors.New(
	"DepartCommand must be created via NewDepartCommand constructor",
)

// DepartCommand sends a driver out with a new order.
//
// Example:
//
//	now := kernel.MustNewInstant(time.Now())
//	cmd, err := NewDepartCommand("Alice", now, "2 pepperoni", now.Add(-5*time.Minute))
//	if err != nil {
//	    return err
//	}
//	err = NewDepartCommandHandler(uowFactory).Handle(ctx, cmd)
type DepartCommand struct { //nolint:recvcheck //using for validation
	name        string
	at          kernel.Instant
	orderID     kernel.UUID
	description string
	placedAt    kernel.Instant
	hasOrder    bool

	guard guard.ConstructorGuard
}

// NewDepartCommand generates the order ID. The order itself is built by the
// handler.
func NewDepartCommand(
	name string,
	at kernel.Instant,
	description string,
	placedAt kernel.Instant,
) (DepartCommand, error) {
	command := DepartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setAt(at),
		command.setOrderID(kernel.NewUUID()),
		command.setDescription(description),
		command.setPlacedAt(placedAt),
	); err != nil {
		return DepartCommand{}, err
	}

	command.hasOrder = true
	return command, nil
}

// NewDepartWithoutOrderCommand is a departure request that came without an
// order. The session rejects it with driver.ErrNoOrderToDepart.
func NewDepartWithoutOrderCommand(name string, at kernel.Instant) (DepartCommand, error) {
	command := DepartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setAt(at),
	); err != nil {
		return DepartCommand{}, err
	}

	return command, nil
}

func (c DepartCommand) Validate() error {
	return c.guard.Validate(ErrDepartCommandIsNotConstructed)
}

func (c DepartCommand) Name() string {
	return c.name
}

// At returns the departure instant.
func (c DepartCommand) At() kernel.Instant {
	return c.at
}

// HasOrder reports whether the command carries an order.
func (c DepartCommand) HasOrder() bool {
	return c.hasOrder
}

func (c DepartCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c DepartCommand) Description() string {
	return c.description
}

func (c DepartCommand) PlacedAt() kernel.Instant {
	return c.placedAt
}

func (c *DepartCommand) setName(name string) error {
	name, err := normalizeName(name)
	if err != nil {
		return err
	}

	c.name = name
	return nil
}

func (c *DepartCommand) setAt(at kernel.Instant) error {
	if err := at.Validate(); err != nil {
		return err
	}

	c.at = at
	return nil
}

func (c *DepartCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *DepartCommand) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return order.ErrDescriptionIsRequired
	}

	c.description = description
	return nil
}

func (c *DepartCommand) setPlacedAt(placedAt kernel.Instant) error {
	if err := placedAt.Validate(); err != nil {
		return err
	}

	c.placedAt = placedAt
	return nil
}
