package driver

import (
	"fmt"

	"shift/internal/pkg/errs"
)

// State is where a driver is in the shift lifecycle.
//
//	LoggedOut ──login──> Idle ──depart──> Delivering ──deliver──> Returning
//	    ^                 │ ^                  │                      │
//	    └─────logout──────┘ └──────arrive──────┴───────arrive─────────┘
//
// Delivering and Returning both count as being on a delivery: the driver
// cannot log out or take another order until arrive brings them back to Idle.
type State int

const (
	// Unknown catches uninitialized State values.
	Unknown State = iota

	// LoggedOut is the initial state of every session.
	LoggedOut

	// Idle means logged in, at the store, free to take an order.
	Idle

	// Delivering means the driver holds an order and is on the way to the customer.
	Delivering

	// Returning means the order was handed over and the driver is driving back.
	Returning
)

func getStateStrings() map[State]string {
	return map[State]string{
		Unknown:    "Unknown",
		LoggedOut:  "LoggedOut",
		Idle:       "Idle",
		Delivering: "Delivering",
		Returning:  "Returning",
	}
}

// Validate rejects Unknown and out of range values, e.g. from storage.
func (s State) Validate() error {
	if s < LoggedOut || s > Returning {
		return errs.NewValueIsInvalidErrorWithCause("state is invalid", fmt.Errorf("%d is not a valid state", s))
	}
	return nil
}

func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsAuthenticated reports whether the driver is logged in.
func (s State) IsAuthenticated() bool {
	return s == Idle || s == Delivering || s == Returning
}

// IsOnDelivery reports whether the driver is out between depart and arrive.
func (s State) IsOnDelivery() bool {
	return s == Delivering || s == Returning
}

// Login transitions LoggedOut to Idle.
func (s State) Login() (State, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s != LoggedOut {
		return 0, ErrAlreadyLoggedIn
	}
	return Idle, nil
}

// Logout transitions Idle to LoggedOut. A driver still out on a delivery,
// returning included, must arrive first.
func (s State) Logout() (State, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	switch s {
	case LoggedOut:
		return 0, ErrAlreadyLoggedOut
	case Delivering, Returning:
		return 0, ErrCannotLogoutWhileDelivering
	default:
		return LoggedOut, nil
	}
}

// Depart transitions Idle to Delivering.
func (s State) Depart() (State, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	switch s {
	case LoggedOut:
		return 0, ErrNotLoggedIn
	case Delivering, Returning:
		return 0, ErrAlreadyDelivering
	default:
		return Delivering, nil
	}
}

// Deliver transitions Delivering to Returning.
func (s State) Deliver() (State, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	switch s {
	case LoggedOut:
		return 0, ErrNotLoggedIn
	case Delivering:
		return Returning, nil
	default:
		return 0, ErrNotCurrentlyDelivering
	}
}

// Arrive transitions Delivering or Returning back to Idle.
func (s State) Arrive() (State, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	switch s {
	case LoggedOut:
		return 0, ErrNotLoggedIn
	case Idle:
		return 0, ErrNotCurrentlyDelivering
	default:
		return Idle, nil
	}
}
