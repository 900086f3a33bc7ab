// Package auditrepo stores status change records in package_logs.
package auditrepo

import (
	"time"

	"docflow/internal/core/domain/model/audit"

	"github.com/google/uuid"
)

// PackageLogDTO is one audited field change.
type PackageLogDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	PackageID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ActorID      uuid.UUID `gorm:"type:uuid;not null"`
	Field        string    `gorm:"type:varchar(64);not null"`
	Before       string    `gorm:"type:text"`
	After        string    `gorm:"type:text"`
	IsAutoChange bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time `gorm:"not null;index"`
}

func (PackageLogDTO) TableName() string {
	return "package_logs"
}

func fromDomain(r audit.Record) PackageLogDTO {
	return PackageLogDTO{
		ID:           uuid.New(),
		PackageID:    r.PackageID.Bytes(),
		ActorID:      r.ActorID.Bytes(),
		Field:        r.Field,
		Before:       r.Before,
		After:        r.After,
		IsAutoChange: r.IsAutoChange,
		CreatedAt:    r.At,
	}
}
