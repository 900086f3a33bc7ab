package http

import (
	"docflow/internal/core/application/usecases/queries"
	"docflow/internal/core/domain/model/actor"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/status"
	"docflow/internal/core/domain/transition"
	"docflow/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// actorFromParams builds the actor from the identity headers. Authentication
// happens in front of docflow; the headers are trusted.
func actorFromParams(params servers.ActorParams) (actor.Actor, error) {
	id, err := kernel.UUIDFromBytes(params.XActorID[:])
	if err != nil {
		return actor.Actor{}, err
	}
	role, err := actor.RoleByName(string(params.XActorRole))
	if err != nil {
		return actor.Actor{}, err
	}
	return actor.New(id, role)
}

func packageAndActor(id openapi_types.UUID, params servers.ActorParams) (kernel.UUID, actor.Actor, error) {
	packageID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, actor.Actor{}, err
	}
	who, err := actorFromParams(params)
	if err != nil {
		return kernel.UUID{}, actor.Actor{}, err
	}
	return packageID, who, nil
}

func toStatus(s status.Status) servers.Status {
	return servers.Status{Id: int(s), Name: s.Name(), Label: s.Label()}
}

func toAvailabilityEntry(e transition.AvailabilityEntry) servers.AvailabilityEntry {
	entry := servers.AvailabilityEntry{
		Id:          int(e.ID),
		Name:        e.Name,
		Label:       e.Label,
		Direction:   servers.Direction(e.Direction.String()),
		Title:       e.Title,
		Message:     e.Message,
		Available:   e.Available,
		Remediation: toRemediation(e.Remediation),
	}
	if e.BlockingMessage != "" {
		msg := e.BlockingMessage
		entry.BlockingMessage = &msg
	}
	return entry
}

func toRemediation(r transition.Remediation) *servers.Remediation {
	if len(r) == 0 {
		return nil
	}

	result := make(servers.Remediation, len(r))
	for slot, item := range r {
		converted := servers.RemediationItem{Reason: item.Reason, Message: item.Message}
		if len(item.DocumentIDs) > 0 {
			ids := make([]openapi_types.UUID, len(item.DocumentIDs))
			for i, id := range item.DocumentIDs {
				ids[i] = id.Bytes()
			}
			converted.DocumentIds = &ids
		}
		result[slot] = converted
	}
	return &result
}

func toPackage(p queries.GetPackageQueryResponse) servers.Package {
	documents := make([]servers.PackageDocument, len(p.Documents))
	for i, d := range p.Documents {
		doc := servers.PackageDocument{
			Slot:                  d.Slot,
			Title:                 d.Title,
			Required:              d.IsRequired,
			Uploaded:              d.IsUploaded,
			SignedBy:              toActorRoles(d.SignedBy),
			AwaitingSignatureFrom: toActorRoles(d.AwaitingSignatureFrom),
		}
		if d.DocumentID != nil {
			id := openapi_types.UUID(d.DocumentID.Bytes())
			doc.DocumentId = &id
		}
		documents[i] = doc
	}

	return servers.Package{
		Id:             p.ID.Bytes(),
		Type:           p.Type.String(),
		Status:         toStatus(p.Status),
		CounterpartyId: p.CounterpartyID.Bytes(),
		OperatorId:     p.OperatorID.Bytes(),
		Period:         p.Period,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
		Documents:      documents,
	}
}

func toActorRoles(roles []actor.Role) []servers.ActorRole {
	result := make([]servers.ActorRole, len(roles))
	for i, r := range roles {
		result[i] = servers.ActorRole(r.String())
	}
	return result
}
