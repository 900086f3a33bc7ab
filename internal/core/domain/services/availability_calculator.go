package services

import (
	"context"
	"errors"
	"slices"

	"docflow/internal/core/domain/model/actor"
	"docflow/internal/core/domain/model/docpackage"
	"docflow/internal/core/domain/model/status"
	"docflow/internal/core/domain/transition"
	"docflow/internal/pkg/errs"
)

// DefaultStatusChangeMessage is shown when a forward change is available but
// its action has no message of its own.
const DefaultStatusChangeMessage = "Status change available"

// ForwardActionSummary is the short hint shown next to a package.
type ForwardActionSummary struct {
	StatusChangeMessage *string
	BlockingMessage     *string
}

// ForwardAction is a forward target with the reasons it is blocked, if any.
type ForwardAction struct {
	Target   transition.AvailabilityEntry
	Title    string
	Messages []string
}

// AvailabilityCalculator computes which status changes an actor is offered.
type AvailabilityCalculator struct {
	registry    *transition.Registry
	documents   transition.DocumentSource
	permissions transition.PermissionChecker
}

// NewAvailabilityCalculator creates a calculator over registry.
func NewAvailabilityCalculator(
	registry *transition.Registry,
	documents transition.DocumentSource,
	permissions transition.PermissionChecker,
) (*AvailabilityCalculator, error) {
	if registry == nil {
		return nil, errs.NewValueIsRequiredError("registry")
	}
	if documents == nil {
		return nil, errs.NewValueIsRequiredError("documents")
	}
	if permissions == nil {
		return nil, errs.NewValueIsRequiredError("permissions")
	}
	return &AvailabilityCalculator{
		registry:    registry,
		documents:   documents,
		permissions: permissions,
	}, nil
}

// ComputeAvailability lists every target the actor can reach from the
// current status, marking the ones whose guard refuses. Actors without access
// to the current status get an empty report. Only validation refusals are
// folded into the report; every other error is returned.
func (c *AvailabilityCalculator) ComputeAvailability(
	ctx context.Context,
	pkg *docpackage.Package,
	who actor.Actor,
) (transition.AvailabilityReport, error) {
	var report transition.AvailabilityReport

	graph, ok, err := c.accessibleMap(ctx, pkg, who)
	if err != nil || !ok {
		return report, err
	}

	deps := transition.Deps{Documents: c.documents, Permissions: c.permissions}
	from := pkg.Status()

	for _, d := range graph.Rule(from).Descriptors {
		action, err := c.registry.Action(pkg.Type(), d.Target)
		if err != nil {
			return transition.AvailabilityReport{}, err
		}

		reachable, err := action.IsReachableFrom(ctx, who, c.permissions, from)
		if err != nil {
			return transition.AvailabilityReport{}, err
		}
		if !reachable {
			continue
		}

		entry := transition.AvailabilityEntry{
			ID:        d.Target,
			Name:      d.Target.Name(),
			Label:     d.Target.Label(),
			Direction: d.Direction,
			Title:     action.Title(from),
			Message:   action.Message(from),
		}

		_, err = transition.Prepare(ctx, deps, action, pkg, who, d.Direction, false)
		var validation *transition.ValidationError
		switch {
		case err == nil:
			entry.Available = true
		case errors.As(err, &validation):
			entry.BlockingMessage = validation.Message()
			entry.Remediation = validation.Remediation
		default:
			return transition.AvailabilityReport{}, err
		}

		report.Add(entry)
	}

	return report, nil
}

// ComputeForwardActionSummary condenses the report into the message of the
// first available forward change and the first blocking message.
func (c *AvailabilityCalculator) ComputeForwardActionSummary(
	ctx context.Context,
	pkg *docpackage.Package,
	who actor.Actor,
) (ForwardActionSummary, error) {
	report, err := c.ComputeAvailability(ctx, pkg, who)
	if err != nil {
		return ForwardActionSummary{}, err
	}

	var summary ForwardActionSummary
	for _, e := range report.Entries() {
		if summary.StatusChangeMessage == nil && e.Available && e.Direction == status.Forward {
			msg := e.Message
			if msg == "" {
				msg = DefaultStatusChangeMessage
			}
			summary.StatusChangeMessage = &msg
		}
		if summary.BlockingMessage == nil && !e.Available {
			msg := e.BlockingMessage
			summary.BlockingMessage = &msg
		}
	}
	return summary, nil
}

// ComputeForwardActions lists forward targets of the current status with the
// reasons each is blocked. Role refusals are reported as messages as well.
func (c *AvailabilityCalculator) ComputeForwardActions(
	ctx context.Context,
	pkg *docpackage.Package,
	who actor.Actor,
) ([]ForwardAction, error) {
	graph, ok, err := c.accessibleMap(ctx, pkg, who)
	if err != nil || !ok {
		return nil, err
	}

	deps := transition.Deps{Documents: c.documents, Permissions: c.permissions}
	from := pkg.Status()

	var actions []ForwardAction
	for _, d := range graph.Rule(from).Descriptors {
		if d.Direction != status.Forward {
			continue
		}

		action, err := c.registry.Action(pkg.Type(), d.Target)
		if err != nil {
			return nil, err
		}

		entry := transition.AvailabilityEntry{
			ID:        d.Target,
			Name:      d.Target.Name(),
			Label:     d.Target.Label(),
			Direction: d.Direction,
			Title:     action.Title(from),
			Message:   action.Message(from),
		}

		_, err = transition.Prepare(ctx, deps, action, pkg, who, d.Direction, false)
		var (
			validation *transition.ValidationError
			unexpected *transition.UnexpectedStatusChangeError
		)
		switch {
		case err == nil:
			entry.Available = true
		case errors.As(err, &validation):
			entry.BlockingMessage = validation.Message()
			entry.Remediation = validation.Remediation
		case errors.As(err, &unexpected):
			entry.BlockingMessage = unexpected.Message()
		default:
			return nil, err
		}

		actions = append(actions, ForwardAction{
			Target:   entry,
			Title:    entry.Title,
			Messages: transition.SplitMessage(entry.BlockingMessage),
		})
	}
	return actions, nil
}

// accessibleMap resolves the actor's map and applies the coarse access gate:
// operators need the status view permission, then the per-status permission
// and role restrictions of the map apply.
func (c *AvailabilityCalculator) accessibleMap(
	ctx context.Context,
	pkg *docpackage.Package,
	who actor.Actor,
) (transition.Map, bool, error) {
	if err := pkg.Validate(); err != nil {
		return nil, false, err
	}
	if err := who.Validate(); err != nil {
		return nil, false, err
	}

	provider, err := c.registry.Resolve(pkg.Type())
	if err != nil {
		return nil, false, err
	}
	graph, err := provider.Map(ctx, who, c.permissions)
	if err != nil {
		return nil, false, err
	}

	if who.IsOperator() {
		ok, err := c.permissions.HasPermission(ctx, who, transition.StatusViewPermission(pkg.Type(), pkg.Status()))
		if err != nil || !ok {
			return nil, false, err
		}
	}

	rule := graph.Rule(pkg.Status())
	if len(rule.Permissions) > 0 && who.IsOperator() {
		for _, p := range rule.Permissions {
			ok, err := c.permissions.HasPermission(ctx, who, p)
			if err != nil || !ok {
				return nil, false, err
			}
		}
		return graph, true, nil
	}
	if len(rule.Roles) > 0 && !slices.Contains(rule.Roles, who.Role()) {
		return nil, false, nil
	}
	return graph, true, nil
}
