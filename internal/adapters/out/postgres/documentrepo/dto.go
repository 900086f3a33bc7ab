// Package documentrepo reads uploaded documents and their signatures and
// joins them with the per-type document catalog.
package documentrepo

import (
	"time"

	"github.com/google/uuid"
)

// DocumentDTO is an uploaded file of a package slot.
type DocumentDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	PackageID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_package_slot"`
	Slot                 string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_package_slot"`
	FileName             string    `gorm:"type:varchar(255)"`
	OperatorSignedAt     *time.Time
	CounterpartySignedAt *time.Time
	CreatedAt            time.Time
}

func (DocumentDTO) TableName() string {
	return "package_documents"
}

// CounterpartyDTO carries what the catalog needs to know about a counterparty.
type CounterpartyDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string    `gorm:"type:varchar(255);not null"`
	OrganizationForm string    `gorm:"type:varchar(16);not null"`
}

func (CounterpartyDTO) TableName() string {
	return "counterparties"
}
