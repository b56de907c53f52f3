package driver

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"shift/internal/core/domain/model/kernel"
	"shift/internal/core/domain/model/order"
	"shift/internal/pkg/errs"
	"shift/internal/pkg/guard"
)

var ErrNameIsRequired = errs.NewValueIsRequiredError("name")

// Session is one driver's shift: whether they are logged in, the order they
// are carrying, and what they have delivered so far.
//
// Invariants:
//   - the current order is set exactly while the state is Delivering
//   - a logged out driver is never on a delivery
//   - statistics only grow, and only deliver and arrive change them
//
// Every operation checks its preconditions before touching any field, so a
// rejected call leaves the session unchanged. A Session is not safe for
// concurrent use; callers serialize access per driver.
type Session struct {
	id    kernel.UUID
	name  string
	state State

	currentOrder *order.Order

	orderPlacedAt kernel.Instant
	departedAt    kernel.Instant
	deliveredAt   kernel.Instant
	arrivedAt     kernel.Instant

	deliveryCount            int
	tipTotal                 float64
	sumOrderToDeliverMinutes int
	sumDepartToArriveMinutes int

	guard guard.ConstructorGuard
}

// NewSession starts a logged out session with empty statistics.
func NewSession(id kernel.UUID, name string) (*Session, error) {
	s := &Session{
		state: LoggedOut,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Snapshot is the full state of a Session, for adapters that store sessions.
// Instants that were never recorded are zero values.
type Snapshot struct {
	ID                       kernel.UUID
	Name                     string
	State                    State
	CurrentOrder             *order.Order
	OrderPlacedAt            kernel.Instant
	DepartedAt               kernel.Instant
	DeliveredAt              kernel.Instant
	ArrivedAt                kernel.Instant
	DeliveryCount            int
	TipTotal                 float64
	SumOrderToDeliverMinutes int
	SumDepartToArriveMinutes int
}

// RestoreSession rebuilds a session from a snapshot, rejecting snapshots that
// break the session invariants.
func RestoreSession(snap Snapshot) (*Session, error) {
	s := &Session{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(snap.ID),
		s.setName(snap.Name),
		s.restoreProgress(snap),
		s.restoreStatistics(snap),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Snapshot captures the session's current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ID:                       s.id,
		Name:                     s.name,
		State:                    s.state,
		CurrentOrder:             s.currentOrder,
		OrderPlacedAt:            s.orderPlacedAt,
		DepartedAt:               s.departedAt,
		DeliveredAt:              s.deliveredAt,
		ArrivedAt:                s.arrivedAt,
		DeliveryCount:            s.deliveryCount,
		TipTotal:                 s.tipTotal,
		SumOrderToDeliverMinutes: s.sumOrderToDeliverMinutes,
		SumDepartToArriveMinutes: s.sumDepartToArriveMinutes,
	}
}

func (s *Session) Validate() error {
	if s == nil {
		return ErrSessionIsNotConstructed
	}
	return s.guard.Validate(ErrSessionIsNotConstructed)
}

func (s *Session) ID() kernel.UUID {
	return s.id
}

func (s *Session) Name() string {
	return s.name
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) IsAuthenticated() bool {
	return s.state.IsAuthenticated()
}

func (s *Session) IsOnDelivery() bool {
	return s.state.IsOnDelivery()
}

// CurrentOrder returns the order being delivered, nil outside Delivering.
func (s *Session) CurrentOrder() *order.Order {
	return s.currentOrder
}

func (s *Session) OrderPlacedAt() kernel.Instant {
	return s.orderPlacedAt
}

func (s *Session) DepartedAt() kernel.Instant {
	return s.departedAt
}

func (s *Session) DeliveredAt() kernel.Instant {
	return s.deliveredAt
}

func (s *Session) ArrivedAt() kernel.Instant {
	return s.arrivedAt
}

// Login starts the shift.
func (s *Session) Login() error {
	next, err := s.state.Login()
	if err != nil {
		return err
	}

	s.state = next
	return nil
}

// Logout ends the shift. Rejected while the driver is out on a delivery.
func (s *Session) Logout() error {
	next, err := s.state.Logout()
	if err != nil {
		return err
	}

	s.state = next
	return nil
}

// Depart takes o out for delivery at the given instant. The session owns o
// until it is delivered.
//
// A nil order is rejected with ErrNoOrderToDepart whatever the state.
func (s *Session) Depart(at kernel.Instant, o *order.Order) error {
	if o == nil {
		return ErrNoOrderToDepart
	}

	next, err := s.state.Depart()
	if err != nil {
		return err
	}

	if err = errors.Join(at.Validate(), o.Validate()); err != nil {
		return err
	}
	if at.Before(o.PlacedAt()) {
		return timeGoesBackwards("departure", at, o.PlacedAt())
	}

	s.currentOrder = o
	s.orderPlacedAt = o.PlacedAt()
	s.departedAt = at
	s.state = next
	return nil
}

// Deliver hands the current order over at the given instant and books the tip.
// It adds the order-to-delivery minutes and the first leg of the driving
// minutes (departure to delivery); Arrive adds the way back.
func (s *Session) Deliver(at kernel.Instant, tip float64) error {
	next, err := s.state.Deliver()
	if err != nil {
		return err
	}
	if s.currentOrder == nil {
		return ErrNotCurrentlyDelivering
	}

	if err = errors.Join(at.Validate(), validateTip(tip)); err != nil {
		return err
	}
	if at.Before(s.departedAt) {
		return timeGoesBackwards("delivery", at, s.departedAt)
	}

	s.deliveryCount++
	s.deliveredAt = at
	s.tipTotal += tip
	s.sumOrderToDeliverMinutes += kernel.ElapsedMinutes(at, s.orderPlacedAt)
	s.sumDepartToArriveMinutes += kernel.ElapsedMinutes(at, s.departedAt)
	s.currentOrder = nil
	s.state = next
	return nil
}

// Arrive reports the driver back at the store. From Returning it adds the
// minutes since delivery to the driving total. From Delivering the order was
// never handed over: it is dropped without counting a delivery and the
// minutes since departure are added instead.
//
// Driving minutes of such an undelivered trip stay in TotalMinDriving, while
// Summary divides by delivered orders only, so they raise AvgDrivingMinutes.
func (s *Session) Arrive(at kernel.Instant) error {
	next, err := s.state.Arrive()
	if err != nil {
		return err
	}

	if err = at.Validate(); err != nil {
		return err
	}

	from := s.deliveredAt
	if s.state == Delivering {
		from = s.departedAt
	}
	if at.Before(from) {
		return timeGoesBackwards("arrival", at, from)
	}

	s.arrivedAt = at
	s.sumDepartToArriveMinutes += kernel.ElapsedMinutes(at, from)
	s.currentOrder = nil
	s.state = next
	return nil
}

// TotalDeliveries returns the number of completed deliveries.
func (s *Session) TotalDeliveries() int {
	return s.deliveryCount
}

// TotalMinDelivering returns the minutes from order placement to delivery,
// summed over all deliveries.
func (s *Session) TotalMinDelivering() int {
	return s.sumOrderToDeliverMinutes
}

// TotalMinDriving returns the minutes from departure to arrival, summed over
// all trips.
func (s *Session) TotalMinDriving() int {
	return s.sumDepartToArriveMinutes
}

// TotalTips returns the tips collected so far.
func (s *Session) TotalTips() float64 {
	return s.tipTotal
}

// Status describes the session for display, e.g.
// "Logged in, currently delivering 2 pepperoni".
func (s *Session) Status() string {
	var b strings.Builder

	switch s.state {
	case Idle:
		b.WriteString("Logged in")
	case Delivering:
		b.WriteString("Logged in")
		if s.currentOrder != nil {
			b.WriteString(", currently delivering ")
			b.WriteString(s.currentOrder.Describe())
		}
	case Returning:
		b.WriteString("Logged in, returning from delivery")
	default:
		b.WriteString("Logged out")
	}

	return b.String()
}

// Summary returns the session's statistics. With no deliveries only the zero
// count is reported. AvgDrivingMinutes spreads all driving time, undelivered
// trips included, over the delivered orders.
func (s *Session) Summary() Summary {
	if s.deliveryCount == 0 {
		return Summary{}
	}

	return Summary{
		Deliveries:             s.deliveryCount,
		AvgDeliveringMinutes:   s.sumOrderToDeliverMinutes / s.deliveryCount,
		AvgDrivingMinutes:      s.sumDepartToArriveMinutes / s.deliveryCount,
		Tips:                   s.tipTotal,
		TotalDeliveringMinutes: s.sumOrderToDeliverMinutes,
		TotalDrivingMinutes:    s.sumDepartToArriveMinutes,
	}
}

func (s *Session) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Session) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	s.name = name
	return nil
}

func (s *Session) restoreProgress(snap Snapshot) error {
	if err := snap.State.Validate(); err != nil {
		return err
	}

	switch snap.State {
	case Delivering:
		if err := snap.CurrentOrder.Validate(); err != nil {
			return err
		}
		if err := snap.DepartedAt.Validate(); err != nil {
			return err
		}
	case Returning:
		if err := snap.DeliveredAt.Validate(); err != nil {
			return err
		}
	}

	if snap.State != Delivering && snap.CurrentOrder != nil {
		return errs.NewValueIsInvalidErrorWithCause("current order",
			fmt.Errorf("%s session can not hold an order", snap.State))
	}

	s.state = snap.State
	s.currentOrder = snap.CurrentOrder
	s.orderPlacedAt = snap.OrderPlacedAt
	s.departedAt = snap.DepartedAt
	s.deliveredAt = snap.DeliveredAt
	s.arrivedAt = snap.ArrivedAt
	return nil
}

func (s *Session) restoreStatistics(snap Snapshot) error {
	if snap.DeliveryCount < 0 {
		return errs.NewValueIsOutOfRangeError("delivery count", snap.DeliveryCount, 0, math.MaxInt)
	}
	if err := validateTip(snap.TipTotal); err != nil {
		return err
	}
	if snap.SumOrderToDeliverMinutes < 0 {
		return errs.NewValueIsOutOfRangeError("delivering minutes", snap.SumOrderToDeliverMinutes, 0, math.MaxInt)
	}
	if snap.SumDepartToArriveMinutes < 0 {
		return errs.NewValueIsOutOfRangeError("driving minutes", snap.SumDepartToArriveMinutes, 0, math.MaxInt)
	}

	s.deliveryCount = snap.DeliveryCount
	s.tipTotal = snap.TipTotal
	s.sumOrderToDeliverMinutes = snap.SumOrderToDeliverMinutes
	s.sumDepartToArriveMinutes = snap.SumDepartToArriveMinutes
	return nil
}

func validateTip(tip float64) error {
	if tip < 0 || math.IsNaN(tip) || math.IsInf(tip, 0) {
		return errs.NewValueIsOutOfRangeError("tip", tip, 0, math.MaxFloat64)
	}
	return nil
}

func timeGoesBackwards(what string, at, from kernel.Instant) error {
	return fmt.Errorf("%w: %s at %s is before %s", ErrTimeGoesBackwards, what, at, from)
}
