// Package jobs provides scheduled background tasks for docflow.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around package status changes.
//
// # Available Jobs
//
// NotificationDispatchJob drains the notification outbox that status changes
// write inside their transaction, handing each notification to the transport.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(dispatchHandler, config.NotificationDispatchSchedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use six fields with seconds first. The default "*/5 * * * * *"
// runs the dispatcher every five seconds; overlapping runs are skipped.
//
// # Error Handling
//
// A failed delivery is recorded on the notification and retried on the next
// run. Errors of the run itself (database unavailable, bad schedule) are logged.
package jobs
