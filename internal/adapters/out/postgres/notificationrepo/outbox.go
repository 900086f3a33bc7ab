package notificationrepo

import (
	"context"
	"time"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/notification"
	"docflow/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOutbox implements ports.NotificationSender and ports.NotificationOutbox.
// Notify writes through the connection it was built with, so inside a unit of
// work the notification commits or rolls back together with the status change.
type GormOutbox struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormOutbox creates an outbox over the notifications table.
func NewGormOutbox(db *gorm.DB) *GormOutbox {
	return &GormOutbox{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Notify enqueues one notification per recipient in a single insert.
func (o *GormOutbox) Notify(
	ctx context.Context,
	recipients []notification.Recipient,
	msg notification.StatusChanged,
) error {
	if len(recipients) == 0 {
		return nil
	}
	if err := msg.PackageID.Validate(); err != nil {
		return err
	}

	now := o.now()
	rows := make([]NotificationDTO, 0, len(recipients))
	for _, r := range recipients {
		if err := r.ID.Validate(); err != nil {
			return err
		}
		if err := r.Role.Validate(); err != nil {
			return err
		}
		rows = append(rows, fromDomain(r, msg, now))
	}

	return o.db.WithContext(ctx).Create(&rows).Error
}

// Pending locks the returned rows with SKIP LOCKED so that concurrent
// dispatchers never pick the same notification.
func (o *GormOutbox) Pending(ctx context.Context, limit int) ([]notification.Outgoing, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsInvalidError("limit")
	}

	var dtos []NotificationDTO
	err := o.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("sent_at IS NULL").
		Order("created_at, id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	result := make([]notification.Outgoing, 0, len(dtos))
	for _, dto := range dtos {
		n, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	return result, nil
}

// MarkSent flags the row as delivered.
func (o *GormOutbox) MarkSent(ctx context.Context, id kernel.UUID) error {
	return o.update(ctx, id, map[string]any{
		"sent_at":  o.now(),
		"attempts": gorm.Expr("attempts + 1"),
	})
}

// MarkFailed flags the row as failed and stores reason.
func (o *GormOutbox) MarkFailed(ctx context.Context, id kernel.UUID, reason string) error {
	return o.update(ctx, id, map[string]any{
		"last_error": reason,
		"attempts":   gorm.Expr("attempts + 1"),
	})
}

func (o *GormOutbox) update(ctx context.Context, id kernel.UUID, values map[string]any) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := o.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("id = ? AND sent_at IS NULL", id.Bytes()).
		Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notification", id.String())
	}
	return nil
}
