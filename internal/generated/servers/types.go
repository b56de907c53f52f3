// Package servers holds the echo server interface and wire types of the
// shift API, laid out the way oapi-codegen emits them from api/openapi.yml.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for DriverStatusState.
const (
	Delivering DriverStatusState = "Delivering"
	Idle       DriverStatusState = "Idle"
	LoggedOut  DriverStatusState = "LoggedOut"
	Returning  DriverStatusState = "Returning"
)

// ArriveRequest defines model for ArriveRequest.
type ArriveRequest struct {
	Time time.Time `json:"time"`
}

// DeliverRequest defines model for DeliverRequest.
type DeliverRequest struct {
	Time time.Time `json:"time"`

	// Tip Defaults to no tip.
	Tip *float64 `json:"tip,omitempty"`
}

// DepartRequest defines model for DepartRequest.
type DepartRequest struct {
	Order *NewOrder `json:"order,omitempty"`
	Time  time.Time `json:"time"`
}

// DriverStatus defines model for DriverStatus.
type DriverStatus struct {
	Id         openapi_types.UUID `json:"id"`
	Name       string             `json:"name"`
	OnDelivery bool               `json:"on_delivery"`
	State      DriverStatusState  `json:"state"`
	Status     string             `json:"status"`

	// Summary A driver's statistics. Averages and tips are omitted until the first delivery.
	Summary Summary `json:"summary"`
}

// DriverStatusState defines model for DriverStatus.State.
type DriverStatusState string

// DriverSummary defines model for DriverSummary.
type DriverSummary struct {
	Name string `json:"name"`

	// Summary A driver's statistics. Averages and tips are omitted until the first delivery.
	Summary Summary `json:"summary"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Message defines model for Message.
type Message struct {
	Message string `json:"message"`
}

// NewDriver defines model for NewDriver.
type NewDriver struct {
	Name string `json:"name"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	Description string    `json:"description"`
	PlacedAt    time.Time `json:"placed_at"`
}

// ShiftSummary defines model for ShiftSummary.
type ShiftSummary struct {
	AvgDeliveringMinutes int             `json:"avg_delivering_minutes"`
	Deliveries           int             `json:"deliveries"`
	DeliveringMinutes    int             `json:"delivering_minutes"`
	Drivers              []DriverSummary `json:"drivers"`
	DrivingMinutes       int             `json:"driving_minutes"`
	Tips                 float64         `json:"tips"`
}

// Summary A driver's statistics. Averages and tips are omitted until the first delivery.
type Summary struct {
	AvgDeliveringMinutes *int     `json:"avg_delivering_minutes,omitempty"`
	AvgDrivingMinutes    *int     `json:"avg_driving_minutes,omitempty"`
	Deliveries           int      `json:"deliveries"`
	Tips                 *float64 `json:"tips,omitempty"`
}

// Name defines model for Name.
type Name = string

// RegisterDriverJSONRequestBody defines body for RegisterDriver for application/json ContentType.
type RegisterDriverJSONRequestBody = NewDriver

// ArriveJSONRequestBody defines body for Arrive for application/json ContentType.
type ArriveJSONRequestBody = ArriveRequest

// DeliverJSONRequestBody defines body for Deliver for application/json ContentType.
type DeliverJSONRequestBody = DeliverRequest

// DepartJSONRequestBody defines body for Depart for application/json ContentType.
type DepartJSONRequestBody = DepartRequest
