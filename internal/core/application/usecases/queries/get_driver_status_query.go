// Package queries contains the read side: driver status and the shift
// summary. Queries never change sessions.
package queries

import (
	"context"
	"errors"
	"strings"

	"shift/internal/core/domain/model/driver"
	"shift/internal/core/domain/model/kernel"
	"shift/internal/pkg/errs"
	"shift/internal/pkg/guard"
)

var ErrGetDriverStatusQueryIsNotConstructed = errors.New(
	"GetDriverStatusQuery must be created via NewGetDriverStatusQuery constructor",
)

// SessionReader reads committed sessions.
type SessionReader interface {
	GetByName(ctx context.Context, name string) (*driver.Session, error)
	GetAll(ctx context.Context) ([]*driver.Session, error)
}

// GetDriverStatusQuery looks up one driver by name.
//
// Example:
//
//	query, err := NewGetDriverStatusQuery("Alice")
//	if err != nil {
//	    return err
//	}
//	status, err := NewGetDriverStatusQueryHandler(store).Handle(ctx, query)
//	fmt.Println(status.Status) // Logged in, currently delivering 2 pepperoni
type GetDriverStatusQuery struct {
	name string

	guard guard.ConstructorGuard
}

func NewGetDriverStatusQuery(name string) (GetDriverStatusQuery, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return GetDriverStatusQuery{}, errs.NewValueIsRequiredError("name")
	}
	return GetDriverStatusQuery{name: name, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDriverStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverStatusQueryIsNotConstructed)
}

func (q GetDriverStatusQuery) Name() string {
	return q.name
}

// GetDriverStatusQueryResponse is the read model of one driver.
type GetDriverStatusQueryResponse struct {
	ID         kernel.UUID
	Name       string
	State      driver.State
	Status     string
	OnDelivery bool
	Summary    driver.Summary
}
