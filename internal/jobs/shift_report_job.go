package jobs

import (
	"context"
	"log/slog"

	"shift/internal/core/application/usecases/queries"
	"shift/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// DefaultReportSchedule runs the report at the top of every minute.
const DefaultReportSchedule = "0 * * * * *"

// ShiftSummaryHandler is the query ShiftReportJob runs on every tick.
type ShiftSummaryHandler interface {
	Handle(ctx context.Context, query queries.GetShiftSummaryQuery) (services.ShiftReport, error)
}

// ShiftReportJob periodically logs the shift totals.
type ShiftReportJob struct {
	handler  ShiftSummaryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewShiftReportJob creates the job. An empty schedule means DefaultReportSchedule.
func NewShiftReportJob(handler ShiftSummaryHandler, schedule string, logger *slog.Logger) *ShiftReportJob {
	if schedule == "" {
		schedule = DefaultReportSchedule
	}

	return &ShiftReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "shift_report_job"),
	}
}

// Start schedules the job. It fails on a malformed schedule.
func (j *ShiftReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Shift report job started", "schedule", j.schedule)
	return nil
}

// Run builds one report and logs it.
func (j *ShiftReportJob) Run(ctx context.Context) {
	report, err := j.handler.Handle(ctx, queries.NewGetShiftSummaryQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Shift report job failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Shift summary",
		slog.Int("drivers", len(report.Drivers)),
		slog.Int("deliveries", report.Deliveries),
		slog.Int("delivering_minutes", report.DeliveringMinutes),
		slog.Int("driving_minutes", report.DrivingMinutes),
		slog.Int("avg_delivering_minutes", report.AvgDeliveringMinutes),
		slog.Float64("tips", report.Tips),
	)
}

// Stop stops the schedule and waits for a running report to finish.
func (j *ShiftReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Shift report job stopped")
}
