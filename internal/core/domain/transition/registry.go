package transition

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"docflow/internal/core/domain/model/actor"
	"docflow/internal/core/domain/model/docpackage"
	"docflow/internal/core/domain/model/status"
)

// Definition is everything the engine knows about one package type.
type Definition struct {
	Type    docpackage.Type
	Map     MapProvider
	Actions []*Action
}

type registered struct {
	definition Definition
	actions    map[status.Status]*Action
}

// Registry holds package type definitions. It is filled at startup and read
// concurrently afterwards.
type Registry struct {
	mu    sync.RWMutex
	types map[docpackage.Type]*registered
	order []docpackage.Type
}

// NewRegistry returns an empty registry. Register every package type before
// the first lookup.
func NewRegistry() *Registry {
	return &Registry{types: map[docpackage.Type]*registered{}}
}

// Register adds a definition after checking it is self-consistent: every map
// edge and every cascade target must have an action.
func (r *Registry) Register(def Definition) error {
	if err := def.Type.Validate(); err != nil {
		return err
	}
	if def.Map == nil {
		return fmt.Errorf("register %s: transition map is required", def.Type)
	}

	actions := make(map[status.Status]*Action, len(def.Actions))
	for _, a := range def.Actions {
		if a == nil {
			return fmt.Errorf("register %s: nil action", def.Type)
		}
		if err := a.Target().Validate(); err != nil {
			return fmt.Errorf("register %s: %w", def.Type, err)
		}
		if _, dup := actions[a.Target()]; dup {
			return fmt.Errorf("register %s: duplicate action for %s", def.Type, a.Target().Name())
		}
		actions[a.Target()] = a
	}

	for _, target := range def.Map.Targets() {
		if _, ok := actions[target]; !ok {
			return NewActionNotConfiguredError(def.Type, target, nil)
		}
	}
	for _, a := range actions {
		if next, ok := a.Cascade(); ok {
			if _, found := actions[next]; !found {
				return NewActionNotConfiguredError(def.Type, next, nil)
			}
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.types[def.Type]; dup {
		return fmt.Errorf("register %s: package type already registered", def.Type)
	}
	r.types[def.Type] = &registered{definition: def, actions: actions}
	r.order = append(r.order, def.Type)
	return nil
}

// MustRegister panics on an invalid definition. Use it in startup code only.
func (r *Registry) MustRegister(def Definition) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// Resolve returns the map provider of a package type.
func (r *Registry) Resolve(t docpackage.Type) (MapProvider, error) {
	reg, err := r.lookup(t)
	if err != nil {
		return nil, err
	}
	return reg.definition.Map, nil
}

// Action returns the action moving a package of type t into target.
func (r *Registry) Action(t docpackage.Type, target status.Status) (*Action, error) {
	reg, err := r.lookup(t)
	if err != nil {
		return nil, NewActionNotConfiguredError(t, target, err)
	}
	a, ok := reg.actions[target]
	if !ok {
		return nil, NewActionNotConfiguredError(t, target, nil)
	}
	return a, nil
}

// Direction finds the direction of the edge between two statuses as the
// actor sees the map. Requests off the map are treated as forward so that
// guards still run for them.
func (r *Registry) Direction(
	ctx context.Context,
	t docpackage.Type,
	who actor.Actor,
	perms PermissionChecker,
	from, to status.Status,
) (status.Direction, error) {
	provider, err := r.Resolve(t)
	if err != nil {
		return status.Forward, err
	}
	m, err := provider.Map(ctx, who, perms)
	if err != nil {
		return status.Forward, err
	}
	if d, ok := m.Descriptor(from, to); ok {
		return d.Direction, nil
	}
	return status.Forward, nil
}

// Types lists registered package types in registration order.
func (r *Registry) Types() []docpackage.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

func (r *Registry) lookup(t docpackage.Type) (*registered, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.types[t]
	if !ok {
		return nil, NewUnknownPackageTypeError(t)
	}
	return reg, nil
}

// IsUnknownPackageType reports whether err comes from resolving an
// unregistered type.
func IsUnknownPackageType(err error) bool {
	return errors.Is(err, ErrUnknownPackageType)
}
