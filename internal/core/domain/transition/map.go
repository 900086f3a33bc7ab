package transition

import (
	"context"
	"fmt"
	"slices"

	"docflow/internal/core/domain/model/actor"
	"docflow/internal/core/domain/model/status"
)

// Descriptor is one outgoing edge of a status.
type Descriptor struct {
	Target    status.Status
	Direction status.Direction

	// Permission, when set, hides the edge from actors without it.
	Permission string
}

// StatusRule lists the edges of a status and who may see them.
type StatusRule struct {
	Descriptors []Descriptor

	// Roles restricts the status to the listed roles. Empty means any role.
	Roles []actor.Role

	// Permissions must all be held by an operator. When set, Roles is not
	// consulted for operators.
	Permissions []string
}

// Map is the transition graph of one package type as seen by one actor.
type Map map[status.Status]StatusRule

// Rule returns the rule of a status; statuses without edges yield an empty rule.
func (m Map) Rule(s status.Status) StatusRule {
	return m[s]
}

// Descriptor finds the edge from one status to another.
func (m Map) Descriptor(from, to status.Status) (Descriptor, bool) {
	for _, d := range m[from].Descriptors {
		if d.Target == to {
			return d, true
		}
	}
	return Descriptor{}, false
}

// MapProvider builds the transition map for an actor.
type MapProvider interface {
	Map(ctx context.Context, who actor.Actor, perms PermissionChecker) (Map, error)

	// Statuses lists every status that appears in the map, in catalog order.
	Statuses() []status.Status

	// Targets lists every target any actor could see.
	Targets() []status.Status
}

// StaticMap is a declared map whose only dynamic part is per-descriptor
// permissions.
type StaticMap Map

// Map returns the targets reachable from each source status for who.
// Edges whose permission key who does not hold are left out.
func (m StaticMap) Map(ctx context.Context, who actor.Actor, perms PermissionChecker) (Map, error) {
	out := make(Map, len(m))
	for from, rule := range m {
		descriptors := make([]Descriptor, 0, len(rule.Descriptors))
		for _, d := range rule.Descriptors {
			if d.Permission != "" {
				ok, err := perms.HasPermission(ctx, who, d.Permission)
				if err != nil {
					return nil, fmt.Errorf("check permission %s: %w", d.Permission, err)
				}
				if !ok {
					continue
				}
			}
			descriptors = append(descriptors, d)
		}
		out[from] = StatusRule{
			Descriptors: descriptors,
			Roles:       rule.Roles,
			Permissions: rule.Permissions,
		}
	}
	return out, nil
}

// Statuses lists the source statuses of the map in status order.
func (m StaticMap) Statuses() []status.Status {
	var out []status.Status
	for _, s := range status.All() {
		if _, ok := m[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

// Targets lists the statuses that have at least one incoming edge.
func (m StaticMap) Targets() []status.Status {
	var out []status.Status
	for _, s := range status.All() {
		for _, rule := range m {
			if slices.ContainsFunc(rule.Descriptors, func(d Descriptor) bool { return d.Target == s }) {
				out = append(out, s)
				break
			}
		}
	}
	return out
}
