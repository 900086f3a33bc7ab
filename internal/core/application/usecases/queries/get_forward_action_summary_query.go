package queries

import (
	"errors"

	"docflow/internal/core/domain/model/actor"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/guard"
)

var ErrGetForwardActionSummaryQueryIsNotConstructed = errors.New(
	"GetForwardActionSummaryQuery must be created via NewGetForwardActionSummaryQuery constructor",
)

// GetForwardActionSummaryQuery asks for the one-line hint shown in package lists.
type GetForwardActionSummaryQuery struct {
	packageID kernel.UUID
	actor     actor.Actor

	guard guard.ConstructorGuard
}

// NewGetForwardActionSummaryQuery creates a query for the aggregated
// forward availability of a package.
func NewGetForwardActionSummaryQuery(packageID kernel.UUID, who actor.Actor) (GetForwardActionSummaryQuery, error) {
	if err := errors.Join(packageID.Validate(), who.Validate()); err != nil {
		return GetForwardActionSummaryQuery{}, err
	}
	return GetForwardActionSummaryQuery{
		packageID: packageID,
		actor:     who,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetForwardActionSummaryQuery) PackageID() kernel.UUID {
	return q.packageID
}

func (q GetForwardActionSummaryQuery) Actor() actor.Actor {
	return q.actor
}

func (q GetForwardActionSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetForwardActionSummaryQueryIsNotConstructed)
}
