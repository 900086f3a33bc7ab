package queries

import (
	"errors"

	"docflow/internal/core/domain/model/actor"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/status"
	"docflow/internal/core/domain/transition"
	"docflow/internal/pkg/guard"
)

var ErrGetAvailableStatusesQueryIsNotConstructed = errors.New(
	"GetAvailableStatusesQuery must be created via NewGetAvailableStatusesQuery constructor",
)

// GetAvailableStatusesQuery asks which statuses an actor may move a package to.
//
// Example:
//
//	query, err := NewGetAvailableStatusesQuery(packageID, who)
//	response, err := handler.Handle(ctx, query)
//	for _, entry := range response.Entries {
//	    fmt.Println(entry.Title, entry.Available, entry.BlockingMessage)
//	}
type GetAvailableStatusesQuery struct {
	packageID kernel.UUID
	actor     actor.Actor

	guard guard.ConstructorGuard
}

// NewGetAvailableStatusesQuery creates a query for the statuses who can move
// the package into.
func NewGetAvailableStatusesQuery(packageID kernel.UUID, who actor.Actor) (GetAvailableStatusesQuery, error) {
	if err := errors.Join(packageID.Validate(), who.Validate()); err != nil {
		return GetAvailableStatusesQuery{}, err
	}
	return GetAvailableStatusesQuery{
		packageID: packageID,
		actor:     who,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetAvailableStatusesQuery) PackageID() kernel.UUID {
	return q.packageID
}

func (q GetAvailableStatusesQuery) Actor() actor.Actor {
	return q.actor
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableStatusesQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableStatusesQueryIsNotConstructed)
}

// GetAvailableStatusesQueryResponse lists the offered targets in map order.
type GetAvailableStatusesQueryResponse struct {
	PackageID kernel.UUID
	Current   status.Status
	Entries   []transition.AvailabilityEntry
}
