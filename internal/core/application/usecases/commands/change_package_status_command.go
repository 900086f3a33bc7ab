package commands

import (
	"errors"

	"docflow/internal/core/domain/model/actor"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/status"
	"docflow/internal/pkg/guard"
)

var ErrChangePackageStatusCommandIsNotConstructed = errors.New(
	"ChangePackageStatusCommand must be created via NewChangePackageStatusCommand constructor",
)

// ChangePackageStatusCommand asks to move a package into a target status on
// behalf of an actor.
//
// Example:
//
//	cmd, err := NewChangePackageStatusCommand(packageID, status.Approval, operator)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type ChangePackageStatusCommand struct {
	packageID    kernel.UUID
	target       status.Status
	actor        actor.Actor
	isAutoChange bool

	guard guard.ConstructorGuard
}

// NewChangePackageStatusCommand validates the request parameters. The target
// must belong to the status catalog; whether it is reachable is decided later.
func NewChangePackageStatusCommand(
	packageID kernel.UUID,
	target status.Status,
	who actor.Actor,
) (ChangePackageStatusCommand, error) {
	if err := errors.Join(packageID.Validate(), target.Validate(), who.Validate()); err != nil {
		return ChangePackageStatusCommand{}, err
	}

	return ChangePackageStatusCommand{
		packageID: packageID,
		target:    target,
		actor:     who,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// AsAutoChange marks the change as triggered by the system rather than the actor.
func (c ChangePackageStatusCommand) AsAutoChange() ChangePackageStatusCommand {
	c.isAutoChange = true
	return c
}

func (c ChangePackageStatusCommand) PackageID() kernel.UUID {
	return c.packageID
}

func (c ChangePackageStatusCommand) Target() status.Status {
	return c.target
}

func (c ChangePackageStatusCommand) Actor() actor.Actor {
	return c.actor
}

func (c ChangePackageStatusCommand) IsAutoChange() bool {
	return c.isAutoChange
}

// Validate ensures the command was created through the constructor.
func (c ChangePackageStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangePackageStatusCommandIsNotConstructed)
}
