package transition

import (
	"fmt"
	"slices"

	"docflow/internal/core/domain/model/docpackage"
	"docflow/internal/core/domain/model/status"
)

// PermissionCanCancelFromCompleted lets an operator cancel a completed package.
const PermissionCanCancelFromCompleted = "documents.can_cancel_from_completed"

const statusPermissionPrefix = "statuses"

// StatusViewPermission is the key an operator needs to work with packages of
// type t while they are in status s.
func StatusViewPermission(t docpackage.Type, s status.Status) string {
	return fmt.Sprintf("%s.%s.%s", statusPermissionPrefix, t, s.Name())
}

// PermissionEntry is what a status view permission grants.
type PermissionEntry struct {
	Key    string
	Type   docpackage.Type
	Status status.Status
}

// PermissionTable maps status view permission keys onto (type, status) pairs.
// It is derived from the registry once at startup.
type PermissionTable struct {
	entries []PermissionEntry
	byKey   map[string]PermissionEntry
}

// NewPermissionTable builds the table from every status of every registered map.
func NewPermissionTable(registry *Registry) (*PermissionTable, error) {
	table := &PermissionTable{byKey: map[string]PermissionEntry{}}
	for _, t := range registry.Types() {
		provider, err := registry.Resolve(t)
		if err != nil {
			return nil, err
		}
		for _, s := range provider.Statuses() {
			entry := PermissionEntry{Key: StatusViewPermission(t, s), Type: t, Status: s}
			table.entries = append(table.entries, entry)
			table.byKey[entry.Key] = entry
		}
	}
	if err := table.Validate(registry); err != nil {
		return nil, err
	}
	return table, nil
}

// Validate checks that every entry names a registered type and a catalog status.
func (p *PermissionTable) Validate(registry *Registry) error {
	types := registry.Types()
	for _, e := range p.entries {
		if !slices.Contains(types, e.Type) {
			return fmt.Errorf("permission %s: %w", e.Key, NewUnknownPackageTypeError(e.Type))
		}
		if err := e.Status.Validate(); err != nil {
			return fmt.Errorf("permission %s: %w", e.Key, err)
		}
	}
	return nil
}

// Lookup returns the entry stored under key.
func (p *PermissionTable) Lookup(key string) (PermissionEntry, bool) {
	e, ok := p.byKey[key]
	return e, ok
}

// Entries returns all entries in registration and catalog order.
func (p *PermissionTable) Entries() []PermissionEntry {
	return slices.Clone(p.entries)
}

// Keys returns all permission keys.
func (p *PermissionTable) Keys() []string {
	keys := make([]string, 0, len(p.entries))
	for _, e := range p.entries {
		keys = append(keys, e.Key)
	}
	return keys
}
