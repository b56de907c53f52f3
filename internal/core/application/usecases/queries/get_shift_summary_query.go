package queries

import (
	"errors"

	"shift/internal/pkg/guard"
)

var ErrGetShiftSummaryQueryIsNotConstructed = errors.New(
	"GetShiftSummaryQuery must be created via NewGetShiftSummaryQuery constructor",
)

// GetShiftSummaryQuery asks for the report over every registered driver.
// This is a parameterless query.
type GetShiftSummaryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetShiftSummaryQuery() GetShiftSummaryQuery {
	return GetShiftSummaryQuery{guard: guard.NewConstructorGuard()}
}

func (q GetShiftSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetShiftSummaryQueryIsNotConstructed)
}
