package queries

import (
	"errors"

	"docflow/internal/core/domain/model/actor"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/guard"
)

var ErrGetForwardActionsQueryIsNotConstructed = errors.New(
	"GetForwardActionsQuery must be created via NewGetForwardActionsQuery constructor",
)

// GetForwardActionsQuery asks for the forward actions of a package together
// with everything that blocks them.
type GetForwardActionsQuery struct {
	packageID kernel.UUID
	actor     actor.Actor

	guard guard.ConstructorGuard
}

// NewGetForwardActionsQuery creates a query for the forward moves open to who.
func NewGetForwardActionsQuery(packageID kernel.UUID, who actor.Actor) (GetForwardActionsQuery, error) {
	if err := errors.Join(packageID.Validate(), who.Validate()); err != nil {
		return GetForwardActionsQuery{}, err
	}
	return GetForwardActionsQuery{
		packageID: packageID,
		actor:     who,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetForwardActionsQuery) PackageID() kernel.UUID {
	return q.packageID
}

func (q GetForwardActionsQuery) Actor() actor.Actor {
	return q.actor
}

func (q GetForwardActionsQuery) Validate() error {
	return q.guard.Validate(ErrGetForwardActionsQueryIsNotConstructed)
}
