package auditrepo

import (
	"context"
	"errors"
	"time"

	"docflow/internal/core/domain/model/audit"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAuditLogger implements ports.AuditLogger.
type GormAuditLogger struct {
	db *gorm.DB
}

// NewGormAuditLogger creates a logger that writes to package_logs.
func NewGormAuditLogger(db *gorm.DB) *GormAuditLogger {
	return &GormAuditLogger{db: db}
}

// Record appends one audit row.
func (l *GormAuditLogger) Record(ctx context.Context, record audit.Record) error {
	if err := errors.Join(record.PackageID.Validate(), record.ActorID.Validate()); err != nil {
		return err
	}
	if record.Field == "" {
		return errs.NewValueIsRequiredError("field")
	}
	if record.At.IsZero() {
		record.At = time.Now().UTC()
	}

	dto := fromDomain(record)
	return l.db.WithContext(ctx).Create(&dto).Error
}

// History returns the records of a package, oldest first.
func (l *GormAuditLogger) History(ctx context.Context, packageID kernel.UUID) ([]audit.Record, error) {
	var dtos []PackageLogDTO
	err := l.db.WithContext(ctx).
		Where("package_id = ?", packageID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]audit.Record, 0, len(dtos))
	for _, dto := range dtos {
		pkgID, err := kernel.UUIDFromBytes(dto.PackageID[:])
		if err != nil {
			return nil, err
		}
		actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
		if err != nil {
			return nil, err
		}
		records = append(records, audit.Record{
			PackageID:    pkgID,
			ActorID:      actorID,
			Field:        dto.Field,
			Before:       dto.Before,
			After:        dto.After,
			IsAutoChange: dto.IsAutoChange,
			At:           dto.CreatedAt,
		})
	}
	return records, nil
}
