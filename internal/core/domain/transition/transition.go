package transition

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"docflow/internal/core/domain/model/actor"
	"docflow/internal/core/domain/model/docpackage"
	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/notification"
	"docflow/internal/core/domain/model/status"
)

// DocumentSource answers which document slots a package has and their state.
type DocumentSource interface {
	RequiredDocuments(ctx context.Context, pkg *docpackage.Package) ([]document.Requirement, error)
}

type PermissionChecker interface {
	HasPermission(ctx context.Context, who actor.Actor, key string) (bool, error)
	HasAnyPermission(ctx context.Context, who actor.Actor, keys []string) (bool, error)
}

type Notifier interface {
	Notify(ctx context.Context, recipients []notification.Recipient, msg notification.StatusChanged) error
}

// Deps are the collaborators a transition needs. Notifier and Logger may be
// nil when only availability is computed.
type Deps struct {
	Documents   DocumentSource
	Permissions PermissionChecker
	Notifier    Notifier
	Logger      *slog.Logger
}

// Subject is what guards look at.
type Subject struct {
	Package     *docpackage.Package
	Actor       actor.Actor
	Documents   DocumentSource
	Permissions PermissionChecker
}

// Committed is passed to commit hooks.
type Committed struct {
	Package      *docpackage.Package
	Actor        actor.Actor
	From         status.Status
	IsAutoChange bool
	Notifier     Notifier
}

// Transition is a prepared, validated request to apply an action to a package.
type Transition struct {
	action       *Action
	subject      Subject
	from         status.Status
	direction    status.Direction
	isAutoChange bool
	notifier     Notifier
	logger       *slog.Logger
}

// Prepare validates a transition request without changing anything.
//
// The actor's role must reach the action from the current status. Operators
// failing that get *UnexpectedStatusChangeError, counterparties get a
// *ValidationError. The guard runs for forward transitions only; moving
// backward is always allowed once the role check passes.
func Prepare(
	ctx context.Context,
	deps Deps,
	action *Action,
	pkg *docpackage.Package,
	who actor.Actor,
	direction status.Direction,
	isAutoChange bool,
) (*Transition, error) {
	if action == nil {
		return nil, errors.New("prepare transition: action is nil")
	}
	if err := pkg.Validate(); err != nil {
		return nil, err
	}
	if err := who.Validate(); err != nil {
		return nil, err
	}

	from := pkg.Status()
	if err := checkRole(ctx, deps, action, who, from); err != nil {
		return nil, err
	}

	subject := Subject{
		Package:     pkg,
		Actor:       who,
		Documents:   deps.Documents,
		Permissions: deps.Permissions,
	}

	if direction != status.Backward && action.guard != nil {
		if err := action.guard(ctx, subject); err != nil {
			return nil, err
		}
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Transition{
		action:       action,
		subject:      subject,
		from:         from,
		direction:    direction,
		isAutoChange: isAutoChange,
		notifier:     deps.Notifier,
		logger:       logger,
	}, nil
}

func checkRole(ctx context.Context, deps Deps, action *Action, who actor.Actor, from status.Status) error {
	ok, err := action.IsReachableFrom(ctx, who, deps.Permissions, from)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	if who.IsCounterparty() {
		return NewValidationError(
			fmt.Sprintf("Transition \"%s\" -> \"%s\" is not available for the counterparty",
				from.Label(), action.Target().Label()),
			nil,
		)
	}
	return NewUnexpectedStatusChangeError(from, action.Target())
}

// Action returns the action configured for the target status.
func (t *Transition) Action() *Action {
	return t.action
}

// From returns the status the package had before the transition.
func (t *Transition) From() status.Status {
	return t.from
}

// Target returns the requested status.
func (t *Transition) Target() status.Status {
	return t.action.Target()
}

// Direction reports whether the transition moves forward or backward.
func (t *Transition) Direction() status.Direction {
	return t.direction
}

// IsAutoChange is true for cascade hops issued by the system.
func (t *Transition) IsAutoChange() bool {
	return t.isAutoChange
}

// Cascade returns the follow-up status the action requests after commit.
func (t *Transition) Cascade() (status.Status, bool) {
	return t.action.Cascade()
}

// OnCommitted runs the action's commit hook. Errors are logged and dropped.
func (t *Transition) OnCommitted(ctx context.Context) {
	if t.action.onCommitted == nil {
		return
	}

	err := t.action.onCommitted(ctx, Committed{
		Package:      t.subject.Package,
		Actor:        t.subject.Actor,
		From:         t.from,
		IsAutoChange: t.isAutoChange,
		Notifier:     t.notifier,
	})
	if err != nil {
		t.logger.ErrorContext(ctx, "status change hook failed",
			"package_id", t.subject.Package.ID().String(),
			"from", t.from.Name(),
			"to", t.Target().Name(),
			"error", err,
		)
	}
}
