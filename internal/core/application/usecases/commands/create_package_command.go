package commands

import (
	"errors"
	"strings"

	"docflow/internal/core/domain/model/docpackage"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/errs"
	"docflow/internal/pkg/guard"
)

var ErrCreatePackageCommandIsNotConstructed = errors.New(
	"CreatePackageCommand must be created via NewCreatePackageCommand constructor",
)

// CreatePackageCommand opens a new package in Draft.
type CreatePackageCommand struct {
	packageID      kernel.UUID
	packageType    docpackage.Type
	counterpartyID kernel.UUID
	operatorID     kernel.UUID
	period         string

	guard guard.ConstructorGuard
}

// NewCreatePackageCommand validates every field. The caller supplies the ID.
func NewCreatePackageCommand(
	packageID kernel.UUID,
	packageType docpackage.Type,
	counterpartyID kernel.UUID,
	operatorID kernel.UUID,
	period string,
) (CreatePackageCommand, error) {
	err := errors.Join(
		packageID.Validate(),
		packageType.Validate(),
		counterpartyID.Validate(),
		operatorID.Validate(),
	)
	if err != nil {
		return CreatePackageCommand{}, err
	}
	if strings.TrimSpace(period) == "" {
		return CreatePackageCommand{}, errs.NewValueIsRequiredError("period")
	}

	return CreatePackageCommand{
		packageID:      packageID,
		packageType:    packageType,
		counterpartyID: counterpartyID,
		operatorID:     operatorID,
		period:         period,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c CreatePackageCommand) PackageID() kernel.UUID {
	return c.packageID
}

func (c CreatePackageCommand) PackageType() docpackage.Type {
	return c.packageType
}

func (c CreatePackageCommand) CounterpartyID() kernel.UUID {
	return c.counterpartyID
}

func (c CreatePackageCommand) OperatorID() kernel.UUID {
	return c.operatorID
}

func (c CreatePackageCommand) Period() string {
	return c.period
}

// Validate ensures the command was created through the constructor.
func (c CreatePackageCommand) Validate() error {
	return c.guard.Validate(ErrCreatePackageCommandIsNotConstructed)
}
