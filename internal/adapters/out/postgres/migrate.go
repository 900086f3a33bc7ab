package postgres

import (
	"docflow/internal/adapters/out/postgres/auditrepo"
	"docflow/internal/adapters/out/postgres/documentrepo"
	"docflow/internal/adapters/out/postgres/notificationrepo"
	"docflow/internal/adapters/out/postgres/packagerepo"
	"docflow/internal/adapters/out/postgres/permissionrepo"

	"gorm.io/gorm"
)

// Tables lists every table owned by docflow, in truncation-safe order.
var Tables = []string{
	"package_notifications",
	"package_logs",
	"package_documents",
	"packages",
	"counterparties",
	"actor_permissions",
}

// AutoMigrate creates or updates the schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&packagerepo.PackageDTO{},
		&auditrepo.PackageLogDTO{},
		&documentrepo.DocumentDTO{},
		&documentrepo.CounterpartyDTO{},
		&permissionrepo.ActorPermissionDTO{},
		&notificationrepo.NotificationDTO{},
	)
}
