// Package notificationrepo is the transactional outbox of status change
// notifications.
package notificationrepo

import (
	"time"

	"docflow/internal/core/domain/model/actor"
	"docflow/internal/core/domain/model/docpackage"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/notification"
	"docflow/internal/core/domain/model/status"

	"github.com/google/uuid"
)

// NotificationDTO is one queued notification for one recipient.
type NotificationDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	PackageID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	PackageType   string     `gorm:"type:varchar(32);not null"`
	Period        string     `gorm:"type:varchar(32);not null"`
	Status        int        `gorm:"not null"`
	ForOperator   bool       `gorm:"not null;default:false"`
	RecipientID   uuid.UUID  `gorm:"type:uuid;not null"`
	RecipientRole string     `gorm:"type:varchar(16);not null"`
	Attempts      int        `gorm:"not null;default:0"`
	LastError     string     `gorm:"type:text"`
	SentAt        *time.Time `gorm:"index"`
	CreatedAt     time.Time  `gorm:"not null;index"`
}

func (NotificationDTO) TableName() string {
	return "package_notifications"
}

func fromDomain(r notification.Recipient, msg notification.StatusChanged, now time.Time) NotificationDTO {
	return NotificationDTO{
		ID:            uuid.New(),
		PackageID:     msg.PackageID.Bytes(),
		PackageType:   msg.PackageType.String(),
		Period:        msg.Period,
		Status:        int(msg.Status),
		ForOperator:   msg.ForOperator,
		RecipientID:   r.ID.Bytes(),
		RecipientRole: r.Role.String(),
		CreatedAt:     now,
	}
}

func toDomain(dto NotificationDTO) (notification.Outgoing, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return notification.Outgoing{}, err
	}
	packageID, err := kernel.UUIDFromBytes(dto.PackageID[:])
	if err != nil {
		return notification.Outgoing{}, err
	}
	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return notification.Outgoing{}, err
	}
	role, err := actor.RoleByName(dto.RecipientRole)
	if err != nil {
		return notification.Outgoing{}, err
	}

	return notification.Outgoing{
		ID:        id,
		Recipient: notification.Recipient{ID: recipientID, Role: role},
		Message: notification.StatusChanged{
			PackageID:   packageID,
			PackageType: docpackage.Type(dto.PackageType),
			Period:      dto.Period,
			Status:      status.Status(dto.Status),
			ForOperator: dto.ForOperator,
		},
		Attempts:  dto.Attempts,
		CreatedAt: dto.CreatedAt,
	}, nil
}
