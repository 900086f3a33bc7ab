// Package packagerepo persists the package aggregate, converting between the
// domain type and its table row.
package packagerepo

import (
	"time"

	"docflow/internal/core/domain/model/docpackage"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/status"

	"github.com/google/uuid"
)

// PackageDTO is the row of the packages table.
type PackageDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Type           string    `gorm:"type:varchar(32);not null;index"`
	Status         int       `gorm:"not null;index"`
	CounterpartyID uuid.UUID `gorm:"type:uuid;not null;index"`
	OperatorID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Period         string    `gorm:"type:varchar(32);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (PackageDTO) TableName() string {
	return "packages"
}

func fromDomain(p *docpackage.Package) PackageDTO {
	return PackageDTO{
		ID:             p.ID().Bytes(),
		Type:           p.Type().String(),
		Status:         int(p.Status()),
		CounterpartyID: p.CounterpartyID().Bytes(),
		OperatorID:     p.OperatorID().Bytes(),
		Period:         p.Period(),
		CreatedAt:      p.CreatedAt(),
		UpdatedAt:      p.UpdatedAt(),
	}
}

func toDomain(dto PackageDTO) (*docpackage.Package, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	counterpartyID, err := kernel.UUIDFromBytes(dto.CounterpartyID[:])
	if err != nil {
		return nil, err
	}
	operatorID, err := kernel.UUIDFromBytes(dto.OperatorID[:])
	if err != nil {
		return nil, err
	}

	return docpackage.RestorePackage(
		id,
		docpackage.Type(dto.Type),
		status.Status(dto.Status),
		counterpartyID,
		operatorID,
		dto.Period,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
