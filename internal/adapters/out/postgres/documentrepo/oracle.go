package documentrepo

import (
	"context"
	"errors"
	"time"

	"docflow/internal/core/domain/model/actor"
	"docflow/internal/core/domain/model/docpackage"
	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormDocumentOracle implements ports.DocumentRequirementOracle.
type GormDocumentOracle struct {
	db *gorm.DB
}

// NewGormDocumentOracle creates an oracle over the documents table.
func NewGormDocumentOracle(db *gorm.DB) *GormDocumentOracle {
	return &GormDocumentOracle{db: db}
}

// RequiredDocuments returns one requirement per catalog slot of the package
// type. Types without a catalog expect no documents.
func (o *GormDocumentOracle) RequiredDocuments(
	ctx context.Context,
	pkg *docpackage.Package,
) ([]document.Requirement, error) {
	if err := pkg.Validate(); err != nil {
		return nil, err
	}

	catalog, ok := document.CatalogFor(pkg.Type())
	if !ok {
		return []document.Requirement{}, nil
	}

	uploaded, err := o.uploaded(ctx, pkg.ID())
	if err != nil {
		return nil, err
	}

	form, err := o.organizationForm(ctx, pkg.CounterpartyID())
	if err != nil {
		return nil, err
	}

	return document.Fill(catalog(pkg, form, uploaded), uploaded), nil
}

func (o *GormDocumentOracle) uploaded(ctx context.Context, packageID kernel.UUID) ([]document.Uploaded, error) {
	var dtos []DocumentDTO
	err := o.db.WithContext(ctx).
		Where("package_id = ?", packageID.Bytes()).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	result := make([]document.Uploaded, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}
		result = append(result, document.Uploaded{
			ID:   id,
			Slot: dto.Slot,
			SignedAt: map[actor.Role]*time.Time{
				actor.Operator:     dto.OperatorSignedAt,
				actor.Counterparty: dto.CounterpartySignedAt,
			},
		})
	}
	return result, nil
}

// organizationForm falls back to a legal entity, the stricter catalog, when the
// counterparty is not known locally.
func (o *GormDocumentOracle) organizationForm(ctx context.Context, id kernel.UUID) (document.OrganizationForm, error) {
	var dto CounterpartyDTO
	err := o.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return document.LegalEntity, nil
	}
	if err != nil {
		return "", err
	}

	if document.OrganizationForm(dto.OrganizationForm) == document.Individual {
		return document.Individual, nil
	}
	return document.LegalEntity, nil
}
