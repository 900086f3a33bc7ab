package ports

import (
	"context"

	"docflow/internal/core/domain/model/audit"
)

// AuditLogger stores one record per committed field change.
type AuditLogger interface {
	Record(ctx context.Context, record audit.Record) error
}
