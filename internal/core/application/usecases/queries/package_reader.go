// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models for specific use cases and never change state.
package queries

import (
	"context"

	"docflow/internal/core/domain/model/docpackage"
	"docflow/internal/core/domain/model/kernel"
)

// PackageReader loads packages outside of a transaction.
type PackageReader interface {
	Get(ctx context.Context, id kernel.UUID) (*docpackage.Package, error)
}
