package cmd

import (
	"log/slog"

	httpin "shift/internal/adapters/in/http"
	"shift/internal/adapters/out/memory"
	"shift/internal/core/application/usecases/commands"
	"shift/internal/core/application/usecases/queries"
	"shift/internal/jobs"
)

type CompositionRoot struct {
	config     Config
	store      *memory.Store
	uowFactory *memory.UnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, logger *slog.Logger) CompositionRoot {
	store := memory.NewStore()
	return CompositionRoot{
		config:     config,
		store:      store,
		uowFactory: memory.NewUnitOfWorkFactory(store),
		logger:     logger,
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) sessionUoWFactory() commands.SessionUoWFactory {
	return FuncSessionUoWFactory(func() commands.SessionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterDriverCommandHandler() commands.RegisterDriverCommandHandler {
	return commands.NewRegisterDriverCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateLogoutCommandHandler() commands.LogoutCommandHandler {
	return commands.NewLogoutCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateDepartCommandHandler() commands.DepartCommandHandler {
	return commands.NewDepartCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateDeliverCommandHandler() commands.DeliverCommandHandler {
	return commands.NewDeliverCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateArriveCommandHandler() commands.ArriveCommandHandler {
	return commands.NewArriveCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateGetDriverStatusQueryHandler() queries.GetDriverStatusQueryHandler {
	return queries.NewGetDriverStatusQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetShiftSummaryQueryHandler() queries.GetShiftSummaryQueryHandler {
	return queries.NewGetShiftSummaryQueryHandler(c.store)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		RegisterDriver: c.CreateRegisterDriverCommandHandler(),
		Login:          c.CreateLoginCommandHandler(),
		Logout:         c.CreateLogoutCommandHandler(),
		Depart:         c.CreateDepartCommandHandler(),
		Deliver:        c.CreateDeliverCommandHandler(),
		Arrive:         c.CreateArriveCommandHandler(),
		DriverStatus:   c.CreateGetDriverStatusQueryHandler(),
		ShiftSummary:   c.CreateGetShiftSummaryQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetShiftSummaryQueryHandler(), c.config.ReportSchedule, c.logger)
}

type FuncSessionUoWFactory func() commands.SessionUoW

func (f FuncSessionUoWFactory) Create() commands.SessionUoW {
	return f()
}
