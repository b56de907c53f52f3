package driver

import (
	"errors"
)

// ErrPrecondition is the sentinel every session precondition error unwraps
// to. None of them is fatal: the session is left exactly as it was.
var ErrPrecondition = errors.New("driver precondition violated")

// PreconditionError reports an operation attempted in a state that does not allow it.
type PreconditionError struct {
	Reason string
}

func newPreconditionError(reason string) *PreconditionError {
	return &PreconditionError{Reason: reason}
}

func (e *PreconditionError) Error() string {
	return e.Reason
}

func (e *PreconditionError) Unwrap() error {
	return ErrPrecondition
}

var (
	ErrAlreadyLoggedIn             = newPreconditionError("driver already logged in")
	ErrAlreadyLoggedOut            = newPreconditionError("driver already logged out")
	ErrCannotLogoutWhileDelivering = newPreconditionError("driver cannot logout while delivering")
	ErrNotLoggedIn                 = newPreconditionError("driver is logged out")
	ErrAlreadyDelivering           = newPreconditionError("driver already delivering an order")
	ErrNoOrderToDepart             = newPreconditionError("nothing to depart with")
	ErrNotCurrentlyDelivering      = newPreconditionError("driver is not currently delivering")
)

// ErrTimeGoesBackwards is returned when a reported instant precedes the
// instant it is measured from.
var ErrTimeGoesBackwards = errors.New("time goes backwards")

// ErrSessionIsNotConstructed is returned by Validate for sessions that were not
// built by NewSession or RestoreSession.
var ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession or RestoreSession")
