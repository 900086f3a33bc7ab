package transition

import (
	"context"
	"fmt"
	"slices"

	"docflow/internal/core/domain/model/actor"
	"docflow/internal/core/domain/model/status"
)

// CommitHook runs after a transition is applied. Failures are logged by the
// caller and never undo the status change.
type CommitHook func(ctx context.Context, committed Committed) error

type reachability struct {
	from       []status.Status
	permission string
}

// Action is the rule set for moving a package into one target status:
// who may ask for it from where, what must hold first, the UI wording and
// what happens after it commits.
type Action struct {
	target      status.Status
	reachable   map[actor.Role][]reachability
	guard       Guard
	titles      map[status.Status]string
	messages    map[status.Status]string
	message     string
	cascade     status.Status
	onCommitted CommitHook
}

// ActionOption configures an Action.
type ActionOption func(*Action)

// NewAction builds the action for target.
//
// Example:
//
//	toApproval := transition.NewAction(status.Approval,
//	    transition.ReachableFrom(actor.Operator, status.Draft, status.Revision),
//	    transition.WithGuard(transition.RequireUploadedDocuments()),
//	)
func NewAction(target status.Status, opts ...ActionOption) *Action {
	a := &Action{
		target:    target,
		reachable: map[actor.Role][]reachability{},
		titles:    map[status.Status]string{},
		messages:  map[status.Status]string{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ReachableFrom lets role request the action from the given statuses.
func ReachableFrom(role actor.Role, from ...status.Status) ActionOption {
	return func(a *Action) {
		a.reachable[role] = append(a.reachable[role], reachability{from: from})
	}
}

// ReachableFromIfPermitted is ReachableFrom limited to actors holding permission.
func ReachableFromIfPermitted(role actor.Role, permission string, from ...status.Status) ActionOption {
	return func(a *Action) {
		a.reachable[role] = append(a.reachable[role], reachability{from: from, permission: permission})
	}
}

// WithGuard sets the check that must pass before a forward move into the
// target. Backward moves skip it.
func WithGuard(g Guard) ActionOption {
	return func(a *Action) {
		a.guard = g
	}
}

// WithTitles overrides the button title per source status.
func WithTitles(titles map[status.Status]string) ActionOption {
	return func(a *Action) {
		for from, title := range titles {
			a.titles[from] = title
		}
	}
}

// WithMessage sets the confirmation message for every source status.
func WithMessage(msg string) ActionOption {
	return func(a *Action) {
		a.message = msg
	}
}

// WithMessages overrides the confirmation message per source status.
func WithMessages(messages map[status.Status]string) ActionOption {
	return func(a *Action) {
		for from, msg := range messages {
			a.messages[from] = msg
		}
	}
}

// CascadeTo makes the action request next automatically once it commits.
func CascadeTo(next status.Status) ActionOption {
	return func(a *Action) {
		a.cascade = next
	}
}

// OnCommitted sets a hook that runs once the hop is saved and audited, before
// any cascade.
func OnCommitted(hook CommitHook) ActionOption {
	return func(a *Action) {
		a.onCommitted = hook
	}
}

// Target returns the status this action moves a package into.
func (a *Action) Target() status.Status {
	return a.target
}

// Cascade returns the status requested after this action commits.
func (a *Action) Cascade() (status.Status, bool) {
	return a.cascade, a.cascade != status.Unknown
}

// Title is the UI label of the action when started from the given status.
func (a *Action) Title(from status.Status) string {
	if title, ok := a.titles[from]; ok {
		return title
	}
	return a.target.Label()
}

// Message confirms the action when started from the given status.
func (a *Action) Message(from status.Status) string {
	if msg, ok := a.messages[from]; ok {
		return msg
	}
	if a.message != "" {
		return a.message
	}
	return fmt.Sprintf("Status changed to \"%s\"", a.target.Label())
}

// DeclaredReachableFrom lists the statuses role may start from without any
// permission condition.
func (a *Action) DeclaredReachableFrom(role actor.Role) []status.Status {
	var out []status.Status
	for _, r := range a.reachable[role] {
		if r.permission == "" {
			out = append(out, r.from...)
		}
	}
	return out
}

// ReachableFor lists the statuses who may start the action from, resolving
// permission conditions through perms.
func (a *Action) ReachableFor(ctx context.Context, who actor.Actor, perms PermissionChecker) ([]status.Status, error) {
	var out []status.Status
	for _, r := range a.reachable[who.Role()] {
		if r.permission != "" {
			ok, err := perms.HasPermission(ctx, who, r.permission)
			if err != nil {
				return nil, fmt.Errorf("check permission %s: %w", r.permission, err)
			}
			if !ok {
				continue
			}
		}
		for _, s := range r.from {
			if !slices.Contains(out, s) {
				out = append(out, s)
			}
		}
	}
	return out, nil
}

// IsReachableFrom reports whether who may start the action from the given status.
func (a *Action) IsReachableFrom(ctx context.Context, who actor.Actor, perms PermissionChecker, from status.Status) (bool, error) {
	reachable, err := a.ReachableFor(ctx, who, perms)
	if err != nil {
		return false, err
	}
	return slices.Contains(reachable, from), nil
}
