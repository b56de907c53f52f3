package order

import (
	"errors"
	"strings"

	"shift/internal/core/domain/model/kernel"
	"shift/internal/pkg/errs"
)

// MaxDescriptionLength bounds the free text a store attaches to an order.
const MaxDescriptionLength = 200

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created
	// through NewOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	ErrDescriptionIsRequired = errs.NewValueIsRequiredError("description")
)

// Order is what a driver carries out on a delivery run: a fixed description
// of its contents and the instant the customer placed it.
//
// An Order is immutable once built. It travels with the driver session from
// departure until delivery and is discarded afterwards.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// description is the text shown on the driver status, e.g. "2 pepperoni"
	description string

	// placedAt is when the customer placed the order
	placedAt kernel.Instant

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder validates its arguments and returns a ready to use Order.
// Leading and trailing blanks are trimmed from the description; an empty
// result is rejected, as is a description longer than MaxDescriptionLength.
//
// Example:
//
//	placed := kernel.MustNewInstant(time.Now().Add(-5 * time.Minute))
//	o, err := order.NewOrder(kernel.NewUUID(), "2 pepperoni", placed)
func NewOrder(id kernel.UUID, description string, placedAt kernel.Instant) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setDescription(description),
		o.setPlacedAt(placedAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate reports ErrOrderIsNotConstructed for nil and zero-value orders.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// Describe returns the order's description.
func (o *Order) Describe() string {
	return o.description
}

// PlacedAt returns the instant the order was placed.
func (o *Order) PlacedAt() kernel.Instant {
	return o.placedAt
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return ErrDescriptionIsRequired
	}
	if n := len([]rune(description)); n > MaxDescriptionLength {
		return errs.NewValueIsOutOfRangeError("description length", n, 1, MaxDescriptionLength)
	}
	o.description = description
	return nil
}

func (o *Order) setPlacedAt(placedAt kernel.Instant) error {
	if err := placedAt.Validate(); err != nil {
		return err
	}
	o.placedAt = placedAt
	return nil
}
