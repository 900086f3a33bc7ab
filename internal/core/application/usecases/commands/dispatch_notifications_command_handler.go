package commands

import (
	"context"
	"log/slog"

	"docflow/internal/core/ports"
)

// DispatchNotificationsResult counts the outcome of one run.
type DispatchNotificationsResult struct {
	Delivered int
	Failed    int
}

// DispatchNotificationsCommandHandler moves queued notifications to the
// transport. A failed delivery is recorded on the row and retried on the next
// run; it never fails the whole batch.
type DispatchNotificationsCommandHandler struct {
	uowFactory OutboxUoWFactory
	transport  ports.NotificationTransport
	logger     *slog.Logger
}

// NewDispatchNotificationsCommandHandler creates a handler that delivers
// outbox rows through transport.
func NewDispatchNotificationsCommandHandler(
	uowFactory OutboxUoWFactory,
	transport ports.NotificationTransport,
	logger *slog.Logger,
) DispatchNotificationsCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return DispatchNotificationsCommandHandler{
		uowFactory: uowFactory,
		transport:  transport,
		logger:     logger.With("component", "notification-dispatcher"),
	}
}

// Handle delivers one batch. A failed delivery marks its row failed and
// does not stop the batch.
func (h DispatchNotificationsCommandHandler) Handle(
	ctx context.Context,
	command DispatchNotificationsCommand,
) (DispatchNotificationsResult, error) {
	var result DispatchNotificationsResult
	if err := command.Validate(); err != nil {
		return result, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return result, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outbox := uow.NotificationOutbox()
	pending, err := outbox.Pending(ctx, command.BatchSize())
	if err != nil {
		return result, err
	}

	for _, n := range pending {
		if deliverErr := h.transport.Deliver(ctx, n); deliverErr != nil {
			h.logger.WarnContext(ctx, "notification delivery failed",
				"notification_id", n.ID.String(),
				"package_id", n.Message.PackageID.String(),
				"attempts", n.Attempts+1,
				"error", deliverErr,
			)
			if err = outbox.MarkFailed(ctx, n.ID, deliverErr.Error()); err != nil {
				return DispatchNotificationsResult{}, err
			}
			result.Failed++
			continue
		}

		if err = outbox.MarkSent(ctx, n.ID); err != nil {
			return DispatchNotificationsResult{}, err
		}
		result.Delivered++
	}

	if err = uow.Commit(ctx); err != nil {
		return DispatchNotificationsResult{}, err
	}

	return result, nil
}
