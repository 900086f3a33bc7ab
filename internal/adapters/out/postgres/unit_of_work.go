// Package postgres provides the GORM-based Unit of Work. Every adapter a
// status change needs is handed out bound to the same transaction, so the
// package row, its audit records and the queued notifications commit or roll
// back together.
//
// Usage:
//
//	uow := NewGormUnitOfWorkFactory(db).Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	pkg, err := uow.PackageRepository().GetForUpdate(ctx, id)
//	if err != nil {
//	    return err
//	}
//	// change the package, record audit, queue notifications
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance holds one transaction; goroutines must create
// their own instances.
package postgres

import (
	"context"

	"docflow/internal/adapters/out/postgres/auditrepo"
	"docflow/internal/adapters/out/postgres/documentrepo"
	"docflow/internal/adapters/out/postgres/notificationrepo"
	"docflow/internal/adapters/out/postgres/packagerepo"
	"docflow/internal/adapters/out/postgres/permissionrepo"
	"docflow/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory over the given connection pool.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh unit of work with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates a database transaction. After Commit or Rollback
// the instance can begin a new one.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts a transaction. Calling it again while a transaction is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback returns gorm.ErrInvalidTransaction when no transaction is open,
// which makes a deferred Rollback after Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// PackageRepository returns the package repository bound to the current transaction.
func (uow *GormUnitOfWork) PackageRepository() ports.PackageRepository {
	return packagerepo.NewGormPackageRepository(uow.conn())
}

// AuditLogger returns the audit log writer bound to the current transaction.
func (uow *GormUnitOfWork) AuditLogger() ports.AuditLogger {
	return auditrepo.NewGormAuditLogger(uow.conn())
}

// DocumentRequirementOracle reads documents through the current transaction.
func (uow *GormUnitOfWork) DocumentRequirementOracle() ports.DocumentRequirementOracle {
	return documentrepo.NewGormDocumentOracle(uow.conn())
}

// PermissionOracle reads granted permissions through the current transaction.
func (uow *GormUnitOfWork) PermissionOracle() ports.PermissionOracle {
	return permissionrepo.NewGormPermissionOracle(uow.conn())
}

// NotificationSender queues notifications in the outbox of the current transaction.
func (uow *GormUnitOfWork) NotificationSender() ports.NotificationSender {
	return notificationrepo.NewGormOutbox(uow.conn())
}

// NotificationOutbox claims and marks queued notifications.
func (uow *GormUnitOfWork) NotificationOutbox() ports.NotificationOutbox {
	return notificationrepo.NewGormOutbox(uow.conn())
}

// conn returns the open transaction, or the plain connection outside of one.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
