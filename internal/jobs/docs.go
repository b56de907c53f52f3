// Package jobs provides scheduled background tasks for the shift service.
//
// Jobs are cron-based, using github.com/robfig/cron/v3 with the seconds field
// enabled.
//
// # Available Jobs
//
// 1. ShiftReportJob - Logs the shift summary over all drivers, once a minute by default
//
// # Usage
//
//	jobManager := jobs.NewJobManager(shiftSummaryHandler, cfg.ReportSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// A report that fails is logged and retried on the next tick.
package jobs
