package queries

import (
	"errors"

	"docflow/internal/core/domain/model/actor"
	"docflow/internal/core/domain/model/status"
	"docflow/internal/pkg/guard"
)

var ErrGetStatusesForActorQueryIsNotConstructed = errors.New(
	"GetStatusesForActorQuery must be created via NewGetStatusesForActorQuery constructor",
)

// GetStatusesForActorQuery asks which statuses an actor may browse packages in.
// Counterparties see every status; operators see the statuses their
// status view permissions grant.
type GetStatusesForActorQuery struct {
	actor actor.Actor

	guard guard.ConstructorGuard
}

// NewGetStatusesForActorQuery creates a query for the status map visible to
// who.
func NewGetStatusesForActorQuery(who actor.Actor) (GetStatusesForActorQuery, error) {
	if err := who.Validate(); err != nil {
		return GetStatusesForActorQuery{}, err
	}
	return GetStatusesForActorQuery{actor: who, guard: guard.NewConstructorGuard()}, nil
}

func (q GetStatusesForActorQuery) Actor() actor.Actor {
	return q.actor
}

func (q GetStatusesForActorQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusesForActorQueryIsNotConstructed)
}

// GetStatusesForActorQueryResponse is one catalog status.
type GetStatusesForActorQueryResponse struct {
	ID    status.Status
	Name  string
	Label string
}

func newStatusResponse(s status.Status) GetStatusesForActorQueryResponse {
	return GetStatusesForActorQueryResponse{ID: s, Name: s.Name(), Label: s.Label()}
}
