// Package sessionrepo stores driver sessions as plain data transfer objects
// and maps them back to domain sessions on load.
package sessionrepo

import (
	"time"

	"shift/internal/core/domain/model/driver"
	"shift/internal/core/domain/model/kernel"
	"shift/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// SessionDTO is the stored form of a driver.Session. Unset instants are zero
// times.
type SessionDTO struct {
	ID                       uuid.UUID
	Name                     string
	State                    int
	CurrentOrder             *OrderDTO
	OrderPlacedAt            time.Time
	DepartedAt               time.Time
	DeliveredAt              time.Time
	ArrivedAt                time.Time
	DeliveryCount            int
	TipTotal                 float64
	SumOrderToDeliverMinutes int
	SumDepartToArriveMinutes int
}

// OrderDTO is the stored form of the order a driver is carrying.
type OrderDTO struct {
	ID          uuid.UUID
	Description string
	PlacedAt    time.Time
}

// fromDomain converts a session to its stored form.
func fromDomain(session *driver.Session) SessionDTO {
	snap := session.Snapshot()

	var current *OrderDTO
	if snap.CurrentOrder != nil {
		current = &OrderDTO{
			ID:          snap.CurrentOrder.ID().Bytes(),
			Description: snap.CurrentOrder.Describe(),
			PlacedAt:    snap.CurrentOrder.PlacedAt().Time(),
		}
	}

	return SessionDTO{
		ID:                       snap.ID.Bytes(),
		Name:                     snap.Name,
		State:                    int(snap.State),
		CurrentOrder:             current,
		OrderPlacedAt:            snap.OrderPlacedAt.Time(),
		DepartedAt:               snap.DepartedAt.Time(),
		DeliveredAt:              snap.DeliveredAt.Time(),
		ArrivedAt:                snap.ArrivedAt.Time(),
		DeliveryCount:            snap.DeliveryCount,
		TipTotal:                 snap.TipTotal,
		SumOrderToDeliverMinutes: snap.SumOrderToDeliverMinutes,
		SumDepartToArriveMinutes: snap.SumDepartToArriveMinutes,
	}
}

// toDomain rebuilds a session, running every invariant check of
// driver.RestoreSession.
func toDomain(dto SessionDTO) (*driver.Session, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var current *order.Order
	if dto.CurrentOrder != nil {
		current, err = orderToDomain(*dto.CurrentOrder)
		if err != nil {
			return nil, err
		}
	}

	return driver.RestoreSession(driver.Snapshot{
		ID:                       id,
		Name:                     dto.Name,
		State:                    driver.State(dto.State),
		CurrentOrder:             current,
		OrderPlacedAt:            instantOrZero(dto.OrderPlacedAt),
		DepartedAt:               instantOrZero(dto.DepartedAt),
		DeliveredAt:              instantOrZero(dto.DeliveredAt),
		ArrivedAt:                instantOrZero(dto.ArrivedAt),
		DeliveryCount:            dto.DeliveryCount,
		TipTotal:                 dto.TipTotal,
		SumOrderToDeliverMinutes: dto.SumOrderToDeliverMinutes,
		SumDepartToArriveMinutes: dto.SumDepartToArriveMinutes,
	})
}

func orderToDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	placedAt, err := kernel.NewInstant(dto.PlacedAt)
	if err != nil {
		return nil, err
	}

	return order.NewOrder(id, dto.Description, placedAt)
}

func instantOrZero(t time.Time) kernel.Instant {
	if t.IsZero() {
		return kernel.Instant{}
	}
	return kernel.MustNewInstant(t)
}
