package kernel

import (
	"time"

	"shift/internal/pkg/errs"
	"shift/internal/pkg/guard"
)

// ErrInstantIsNotConstructed is returned when a zero-value Instant is validated.
var ErrInstantIsNotConstructed = errs.NewValueIsRequiredError(
	"instant must be created via NewInstant")

// Instant is a point in time reported by the shift: when an order was placed,
// when a driver departed, delivered or arrived. Only whole minutes between two
// instants matter to the domain.
type Instant struct {
	t     time.Time
	guard guard.ConstructorGuard
}

// NewInstant wraps t. A zero time.Time is rejected so that an unset field in a
// request can not silently become year 1.
func NewInstant(t time.Time) (Instant, error) {
	if t.IsZero() {
		return Instant{}, errs.NewValueIsRequiredError("instant")
	}
	return Instant{t: t, guard: guard.NewConstructorGuard()}, nil
}

// MustNewInstant is NewInstant for literals in tests and fixtures.
func MustNewInstant(t time.Time) Instant {
	i, err := NewInstant(t)
	if err != nil {
		panic(err)
	}
	return i
}

func (i Instant) Validate() error {
	return i.guard.Validate(ErrInstantIsNotConstructed)
}

// Time returns the wrapped time.Time.
func (i Instant) Time() time.Time {
	return i.t
}

// Before reports whether i is strictly earlier than other.
func (i Instant) Before(other Instant) bool {
	return i.t.Before(other.t)
}

// Add returns the instant shifted by d.
func (i Instant) Add(d time.Duration) Instant {
	return Instant{t: i.t.Add(d), guard: i.guard}
}

func (i Instant) String() string {
	return i.t.Format(time.RFC3339)
}

// ElapsedMinutes returns the whole minutes from earlier to later, truncated
// toward zero. The result is negative when later precedes earlier.
func ElapsedMinutes(later, earlier Instant) int {
	return int(later.t.Sub(earlier.t) / time.Minute)
}
