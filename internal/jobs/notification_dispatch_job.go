package jobs

import (
	"context"
	"log/slog"

	"docflow/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultDispatchSchedule runs the dispatcher every five seconds.
const DefaultDispatchSchedule = "*/5 * * * * *"

// NotificationDispatcher delivers one batch of queued notifications.
type NotificationDispatcher interface {
	Handle(ctx context.Context, command commands.DispatchNotificationsCommand) (commands.DispatchNotificationsResult, error)
}

// NotificationDispatchJob periodically drains the notification outbox.
// Failed deliveries stay pending and are picked up by the next run.
type NotificationDispatchJob struct {
	handler   NotificationDispatcher
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewNotificationDispatchJob creates a dispatch job. An empty schedule falls
// back to DefaultDispatchSchedule (six fields, seconds first).
func NewNotificationDispatchJob(
	handler NotificationDispatcher,
	schedule string,
	batchSize int,
	logger *slog.Logger,
) *NotificationDispatchJob {
	if schedule == "" {
		schedule = DefaultDispatchSchedule
	}
	if batchSize <= 0 {
		batchSize = commands.DefaultDispatchBatchSize
	}
	return &NotificationDispatchJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "notification_dispatch_job"),
	}
}

// Start registers the dispatch run and starts the scheduler.
func (j *NotificationDispatchJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.Run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification dispatch job started", "schedule", j.schedule)
	return nil
}

// Run dispatches one batch. Start calls it on every tick.
func (j *NotificationDispatchJob) Run() {
	ctx := context.Background()

	cmd, err := commands.NewDispatchNotificationsCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Notification dispatch job misconfigured", "error", err)
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Notification dispatch job failed", "error", err)
		return
	}

	if result.Delivered > 0 || result.Failed > 0 {
		j.logger.InfoContext(ctx, "Notifications dispatched",
			"delivered", result.Delivered,
			"failed", result.Failed,
		)
	}
}

// Stop stops the scheduler and waits for a running dispatch to finish.
func (j *NotificationDispatchJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Notification dispatch job stopped")
}
