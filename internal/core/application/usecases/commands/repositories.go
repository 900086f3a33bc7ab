// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"docflow/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// PackageRepoFactory provides access to the package repository within a transaction.
	PackageRepoFactory interface {
		PackageRepository() ports.PackageRepository
	}

	// PackageUoW manages transactions for operations touching packages only.
	PackageUoW interface {
		TxManager
		PackageRepoFactory
	}

	// PackageUoWFactory creates new package unit of work instances.
	PackageUoWFactory interface {
		Create() PackageUoW
	}

	// StatusChangeUoW binds everything a status change reads and writes to one
	// transaction: the locked package, its documents, the actor's permissions,
	// the audit log and the notification outbox.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   pkg, err := uow.PackageRepository().GetForUpdate(ctx, id)
	//   // ... change status
	//
	//   err = uow.Commit(ctx)
	StatusChangeUoW interface {
		TxManager
		PackageRepoFactory
		AuditLogger() ports.AuditLogger
		DocumentRequirementOracle() ports.DocumentRequirementOracle
		PermissionOracle() ports.PermissionOracle
		NotificationSender() ports.NotificationSender
	}

	// StatusChangeUoWFactory creates new status change unit of work instances.
	StatusChangeUoWFactory interface {
		Create() StatusChangeUoW
	}

	// OutboxUoW manages transactions over the notification outbox.
	OutboxUoW interface {
		TxManager
		NotificationOutbox() ports.NotificationOutbox
	}

	// OutboxUoWFactory creates new outbox unit of work instances.
	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
