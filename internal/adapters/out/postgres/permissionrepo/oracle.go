package permissionrepo

import (
	"context"

	"docflow/internal/core/domain/model/actor"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPermissionOracle implements ports.PermissionOracle.
type GormPermissionOracle struct {
	db *gorm.DB
}

// NewGormPermissionOracle creates an oracle over the actor_permissions table.
func NewGormPermissionOracle(db *gorm.DB) *GormPermissionOracle {
	return &GormPermissionOracle{db: db}
}

// HasPermission reports whether key is granted to who.
func (o *GormPermissionOracle) HasPermission(ctx context.Context, who actor.Actor, key string) (bool, error) {
	return o.HasAnyPermission(ctx, who, []string{key})
}

// HasAnyPermission is false for an empty key list.
func (o *GormPermissionOracle) HasAnyPermission(ctx context.Context, who actor.Actor, keys []string) (bool, error) {
	if err := who.Validate(); err != nil {
		return false, err
	}
	if len(keys) == 0 {
		return false, nil
	}

	var count int64
	err := o.db.WithContext(ctx).
		Model(&ActorPermissionDTO{}).
		Where("actor_id = ? AND permission IN ?", who.ID().Bytes(), keys).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Permissions lists every key held by who.
func (o *GormPermissionOracle) Permissions(ctx context.Context, who actor.Actor) ([]string, error) {
	if err := who.Validate(); err != nil {
		return nil, err
	}

	var keys []string
	err := o.db.WithContext(ctx).
		Model(&ActorPermissionDTO{}).
		Where("actor_id = ?", who.ID().Bytes()).
		Order("permission").
		Pluck("permission", &keys).Error
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// Grant adds permission keys to an actor; keys already granted are kept.
func (o *GormPermissionOracle) Grant(ctx context.Context, who actor.Actor, keys ...string) error {
	if err := who.Validate(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}

	rows := make([]ActorPermissionDTO, 0, len(keys))
	for _, key := range keys {
		rows = append(rows, ActorPermissionDTO{ActorID: who.ID().Bytes(), Permission: key})
	}
	return o.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}
