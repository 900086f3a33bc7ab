package queries

import (
	"context"

	"docflow/internal/core/domain/model/status"
	"docflow/internal/core/domain/transition"

	"gorm.io/gorm"
)

// GetStatusesForActorQueryHandler reads granted permissions straight from the
// database and maps them through the permission table built at startup.
//
// Example:
//
//	handler := NewGetStatusesForActorQueryHandler(db, permissionTable)
//	statuses, err := handler.Handle(ctx, query)
type GetStatusesForActorQueryHandler struct {
	db          *gorm.DB
	permissions *transition.PermissionTable
}

// NewGetStatusesForActorQueryHandler creates a handler that builds the map
// for every registered package type.
func NewGetStatusesForActorQueryHandler(
	db *gorm.DB,
	permissions *transition.PermissionTable,
) GetStatusesForActorQueryHandler {
	return GetStatusesForActorQueryHandler{db: db, permissions: permissions}
}

// Handle returns statuses in catalog order without duplicates.
func (h GetStatusesForActorQueryHandler) Handle(
	ctx context.Context,
	query GetStatusesForActorQuery,
) ([]GetStatusesForActorQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	result := make([]GetStatusesForActorQueryResponse, 0)

	if query.Actor().IsCounterparty() {
		for _, s := range status.All() {
			result = append(result, newStatusResponse(s))
		}
		return result, nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			permission
		FROM actor_permissions
		WHERE actor_id = ?
		ORDER BY permission
	`, query.Actor().ID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	granted := map[status.Status]bool{}
	for rows.Next() {
		var key string
		if err = rows.Scan(&key); err != nil {
			return nil, err
		}
		if entry, ok := h.permissions.Lookup(key); ok {
			granted[entry.Status] = true
		}
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for _, s := range status.All() {
		if granted[s] {
			result = append(result, newStatusResponse(s))
		}
	}
	return result, nil
}
