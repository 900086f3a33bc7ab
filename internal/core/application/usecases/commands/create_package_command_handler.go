package commands

import (
	"context"
	"time"

	"docflow/internal/core/domain/model/docpackage"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/transition"
)

// CreatePackageCommandHandler stores new packages of registered types.
type CreatePackageCommandHandler struct {
	uowFactory PackageUoWFactory
	registry   *transition.Registry
	now        func() time.Time
}

// NewCreatePackageCommandHandler creates a handler for CreatePackageCommand.
func NewCreatePackageCommandHandler(
	uowFactory PackageUoWFactory,
	registry *transition.Registry,
) CreatePackageCommandHandler {
	return CreatePackageCommandHandler{
		uowFactory: uowFactory,
		registry:   registry,
		now:        time.Now,
	}
}

// Handle refuses types without a registered workflow with
// *transition.UnknownPackageTypeError and returns the new package ID.
func (h CreatePackageCommandHandler) Handle(ctx context.Context, command CreatePackageCommand) (kernel.UUID, error) {
	if err := command.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	if _, err := h.registry.Resolve(command.PackageType()); err != nil {
		return kernel.UUID{}, err
	}

	pkg, err := docpackage.NewPackage(
		command.PackageID(),
		command.PackageType(),
		command.CounterpartyID(),
		command.OperatorID(),
		command.Period(),
		h.now().UTC(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PackageRepository().Add(ctx, pkg); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return pkg.ID(), nil
}
