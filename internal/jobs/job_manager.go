package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	shiftReportJob *ShiftReportJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	shiftSummaryHandler ShiftSummaryHandler,
	reportSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		shiftReportJob: NewShiftReportJob(shiftSummaryHandler, reportSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.shiftReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start shift report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.shiftReportJob.Stop()
}
