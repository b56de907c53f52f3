// Package http exposes the shift commands and queries over the JSON API
// described by api/openapi.yml.
package http

import (
	"log/slog"
	"net/http"

	"shift/internal/core/application/usecases/commands"
	"shift/internal/core/application/usecases/queries"
	"shift/internal/core/domain/model/driver"
	"shift/internal/core/domain/model/kernel"
	"shift/internal/core/domain/services"
	"shift/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerDriverHandler commands.RegisterDriverCommandHandler
	loginHandler          commands.LoginCommandHandler
	logoutHandler         commands.LogoutCommandHandler
	departHandler         commands.DepartCommandHandler
	deliverHandler        commands.DeliverCommandHandler
	arriveHandler         commands.ArriveCommandHandler

	// Query handlers
	driverStatusHandler queries.GetDriverStatusQueryHandler
	shiftSummaryHandler queries.GetShiftSummaryQueryHandler

	log *slog.Logger
}

// Handlers groups the use cases a Server needs.
type Handlers struct {
	RegisterDriver commands.RegisterDriverCommandHandler
	Login          commands.LoginCommandHandler
	Logout         commands.LogoutCommandHandler
	Depart         commands.DepartCommandHandler
	Deliver        commands.DeliverCommandHandler
	Arrive         commands.ArriveCommandHandler
	DriverStatus   queries.GetDriverStatusQueryHandler
	ShiftSummary   queries.GetShiftSummaryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(h Handlers, log *slog.Logger) *Server {
	return &Server{
		registerDriverHandler: h.RegisterDriver,
		loginHandler:          h.Login,
		logoutHandler:         h.Logout,
		departHandler:         h.Depart,
		deliverHandler:        h.Deliver,
		arriveHandler:         h.Arrive,
		driverStatusHandler:   h.DriverStatus,
		shiftSummaryHandler:   h.ShiftSummary,
		log:                   log.With("component", "http"),
	}
}

// RegisterDriver handles POST /api/v1/drivers - registers a logged out driver.
func (s *Server) RegisterDriver(ctx echo.Context) error {
	var req servers.RegisterDriverJSONRequestBody
	if err := ctx.Bind(&req); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRegisterDriverCommand(req.Name)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.registerDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	s.log.InfoContext(ctx.Request().Context(), "driver registered",
		slog.String("driver", cmd.Name()),
		slog.String("driver_id", cmd.DriverID().String()))

	return ctx.JSON(http.StatusCreated, servers.Message{Message: "Registered " + cmd.Name() + "."})
}

// Login handles POST /api/v1/drivers/{name}/login - starts the driver's shift.
func (s *Server) Login(ctx echo.Context, name servers.Name) error {
	cmd, err := commands.NewLoginCommand(name)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.loginHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Message{Message: "Logged in."})
}

// Logout handles POST /api/v1/drivers/{name}/logout - ends the driver's shift.
func (s *Server) Logout(ctx echo.Context, name servers.Name) error {
	cmd, err := commands.NewLogoutCommand(name)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.logoutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Message{Message: "Logged out."})
}

// Depart handles POST /api/v1/drivers/{name}/depart - sends the driver out.
// A request without an order reaches the session, which refuses it.
func (s *Server) Depart(ctx echo.Context, name servers.Name) error {
	var req servers.DepartJSONRequestBody
	if err := ctx.Bind(&req); err != nil {
		return s.fail(ctx, err)
	}

	at, err := kernel.NewInstant(req.Time)
	if err != nil {
		return s.fail(ctx, err)
	}

	var cmd commands.DepartCommand
	if req.Order == nil {
		cmd, err = commands.NewDepartWithoutOrderCommand(name, at)
	} else {
		var placedAt kernel.Instant
		placedAt, err = kernel.NewInstant(req.Order.PlacedAt)
		if err != nil {
			return s.fail(ctx, err)
		}
		cmd, err = commands.NewDepartCommand(name, at, req.Order.Description, placedAt)
	}
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.departHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Message{Message: "Confirmed departure with " + cmd.Description()})
}

// Deliver handles POST /api/v1/drivers/{name}/deliver - hands the current
// order over.
func (s *Server) Deliver(ctx echo.Context, name servers.Name) error {
	var req servers.DeliverJSONRequestBody
	if err := ctx.Bind(&req); err != nil {
		return s.fail(ctx, err)
	}

	at, err := kernel.NewInstant(req.Time)
	if err != nil {
		return s.fail(ctx, err)
	}

	var tip float64
	if req.Tip != nil {
		tip = *req.Tip
	}

	cmd, err := commands.NewDeliverCommand(name, at, tip)
	if err != nil {
		return s.fail(ctx, err)
	}

	description, err := s.deliverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Message{Message: "Confirmed delivery of " + description})
}

// Arrive handles POST /api/v1/drivers/{name}/arrive - brings the driver back
// to the store.
func (s *Server) Arrive(ctx echo.Context, name servers.Name) error {
	var req servers.ArriveJSONRequestBody
	if err := ctx.Bind(&req); err != nil {
		return s.fail(ctx, err)
	}

	at, err := kernel.NewInstant(req.Time)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewArriveCommand(name, at)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.arriveHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Message{Message: "Confirmed driver arrival."})
}

// GetDriver handles GET /api/v1/drivers/{name} - driver status and statistics.
func (s *Server) GetDriver(ctx echo.Context, name servers.Name) error {
	query, err := queries.NewGetDriverStatusQuery(name)
	if err != nil {
		return s.fail(ctx, err)
	}

	status, err := s.driverStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.DriverStatus{
		Id:         status.ID.Bytes(),
		Name:       status.Name,
		State:      servers.DriverStatusState(status.State.String()),
		Status:     status.Status,
		OnDelivery: status.OnDelivery,
		Summary:    toSummary(status.Summary),
	})
}

// GetSummary handles GET /api/v1/summary - shift summary over all drivers.
func (s *Server) GetSummary(ctx echo.Context) error {
	report, err := s.shiftSummaryHandler.Handle(ctx.Request().Context(), queries.NewGetShiftSummaryQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toShiftSummary(report))
}

func toSummary(summary driver.Summary) servers.Summary {
	out := servers.Summary{Deliveries: summary.Deliveries}
	if !summary.HasFigures() {
		return out
	}

	tips := summary.Tips
	avgDelivering := summary.AvgDeliveringMinutes
	avgDriving := summary.AvgDrivingMinutes
	out.Tips = &tips
	out.AvgDeliveringMinutes = &avgDelivering
	out.AvgDrivingMinutes = &avgDriving
	return out
}

func toShiftSummary(report services.ShiftReport) servers.ShiftSummary {
	drivers := make([]servers.DriverSummary, len(report.Drivers))
	for i, d := range report.Drivers {
		drivers[i] = servers.DriverSummary{Name: d.Name, Summary: toSummary(d.Summary)}
	}

	return servers.ShiftSummary{
		Drivers:              drivers,
		Deliveries:           report.Deliveries,
		DeliveringMinutes:    report.DeliveringMinutes,
		DrivingMinutes:       report.DrivingMinutes,
		Tips:                 report.Tips,
		AvgDeliveringMinutes: report.AvgDeliveringMinutes,
	}
}
