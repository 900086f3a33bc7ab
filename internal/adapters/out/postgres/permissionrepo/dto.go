// Package permissionrepo answers permission questions from the
// actor_permissions table.
package permissionrepo

import (
	"github.com/google/uuid"
)

// ActorPermissionDTO grants one permission key to an actor.
type ActorPermissionDTO struct {
	ActorID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Permission string    `gorm:"type:varchar(128);primaryKey"`
}

func (ActorPermissionDTO) TableName() string {
	return "actor_permissions"
}
