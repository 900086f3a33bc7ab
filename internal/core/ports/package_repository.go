package ports

import (
	"context"

	"docflow/internal/core/domain/model/docpackage"
	"docflow/internal/core/domain/model/kernel"
)

// PackageRepository defines the persistence contract for package aggregates.
type PackageRepository interface {
	// Add persists a new package aggregate.
	Add(ctx context.Context, aggregate *docpackage.Package) error

	// Update persists status and timestamp changes of an existing package.
	Update(ctx context.Context, aggregate *docpackage.Package) error

	// Get retrieves a package by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*docpackage.Package, error)

	// GetForUpdate retrieves a package and locks its row until the surrounding
	// transaction ends. Concurrent status changes of one package serialize here.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*docpackage.Package, error)
}
