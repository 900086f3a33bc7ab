package commands

import (
	"context"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/status"
	"docflow/internal/core/domain/services"
)

// ChangePackageStatusResult reports where the package ended up. Current can
// differ from the requested target when the action cascades.
type ChangePackageStatusResult struct {
	PackageID kernel.UUID
	Previous  status.Status
	Current   status.Status
}

// ChangePackageStatusCommandHandler runs a status change in one transaction.
// The package row stays locked until commit, so concurrent requests for the
// same package are applied one after another, each against the status the
// previous one left behind.
//
// Example:
//
//	handler := NewChangePackageStatusCommandHandler(uowFactory, changer)
//	result, err := handler.Handle(ctx, cmd)
//	var changeErr *transition.ChangeStatusError
//	if errors.As(err, &changeErr) {
//	    // changeErr.Message() is safe to show
//	}
type ChangePackageStatusCommandHandler struct {
	uowFactory StatusChangeUoWFactory
	changer    *services.StatusChanger
}

// NewChangePackageStatusCommandHandler creates a handler that runs each
// change in its own unit of work.
func NewChangePackageStatusCommandHandler(
	uowFactory StatusChangeUoWFactory,
	changer *services.StatusChanger,
) ChangePackageStatusCommandHandler {
	return ChangePackageStatusCommandHandler{
		uowFactory: uowFactory,
		changer:    changer,
	}
}

// Handle locks the package, applies the change and commits. Any failure rolls
// back the package update, its audit records and queued notifications together.
func (h ChangePackageStatusCommandHandler) Handle(
	ctx context.Context,
	command ChangePackageStatusCommand,
) (ChangePackageStatusResult, error) {
	if err := command.Validate(); err != nil {
		return ChangePackageStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ChangePackageStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	packages := uow.PackageRepository()
	pkg, err := packages.GetForUpdate(ctx, command.PackageID())
	if err != nil {
		return ChangePackageStatusResult{}, err
	}

	previous := pkg.Status()
	env := services.ChangeEnv{
		Packages:    packages,
		Audit:       uow.AuditLogger(),
		Documents:   uow.DocumentRequirementOracle(),
		Permissions: uow.PermissionOracle(),
		Notifier:    uow.NotificationSender(),
	}

	current, err := h.changer.ChangeStatus(ctx, env, pkg, command.Target(), command.Actor(), services.ChangeOptions{
		IsAutoChange: command.IsAutoChange(),
		Persist:      true,
	})
	if err != nil {
		return ChangePackageStatusResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ChangePackageStatusResult{}, err
	}

	return ChangePackageStatusResult{
		PackageID: pkg.ID(),
		Previous:  previous,
		Current:   current,
	}, nil
}
