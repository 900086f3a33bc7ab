// Package audit defines the change record written for every committed
// status hop, including each cascade hop.
package audit

import (
	"time"

	"docflow/internal/core/domain/model/kernel"
)

// FieldStatus is the audited field name for status changes.
const FieldStatus = "status"

// Record is one field change of a package.
type Record struct {
	PackageID    kernel.UUID
	ActorID      kernel.UUID
	Field        string
	Before       string
	After        string
	IsAutoChange bool
	At           time.Time
}
