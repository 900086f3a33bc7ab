package ports

import (
	"context"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/notification"
)

// NotificationSender queues status change notifications. Implementations
// bound to a unit of work write into the same transaction as the change.
type NotificationSender interface {
	Notify(ctx context.Context, recipients []notification.Recipient, msg notification.StatusChanged) error
}

// NotificationOutbox is the delivery side of the queue.
type NotificationOutbox interface {
	// Pending returns up to limit undelivered notifications, oldest first.
	Pending(ctx context.Context, limit int) ([]notification.Outgoing, error)

	MarkSent(ctx context.Context, id kernel.UUID) error

	// MarkFailed records a failed attempt; the notification stays pending.
	MarkFailed(ctx context.Context, id kernel.UUID, reason string) error
}

// NotificationTransport delivers one notification to its recipient.
type NotificationTransport interface {
	Deliver(ctx context.Context, n notification.Outgoing) error
}
