package ports

import (
	"context"

	"docflow/internal/core/domain/model/actor"
)

// PermissionOracle answers permission questions about an actor.
type PermissionOracle interface {
	HasPermission(ctx context.Context, who actor.Actor, key string) (bool, error)
	HasAnyPermission(ctx context.Context, who actor.Actor, keys []string) (bool, error)

	// Permissions lists every key granted to the actor.
	Permissions(ctx context.Context, who actor.Actor) ([]string, error)
}
