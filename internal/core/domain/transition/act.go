package transition

import (
	"context"

	"docflow/internal/core/domain/model/actor"
	"docflow/internal/core/domain/model/docpackage"
	"docflow/internal/core/domain/model/notification"
	"docflow/internal/core/domain/model/status"
)

// ActMap is the transition graph of closing-document packages.
var ActMap = StaticMap{
	status.Draft: {
		Descriptors: []Descriptor{
			{Target: status.Canceled, Direction: status.Backward},
			{Target: status.Approval, Direction: status.Forward},
		},
	},
	status.Approval: {
		Descriptors: []Descriptor{
			{Target: status.Revision, Direction: status.Backward},
			{Target: status.Verification, Direction: status.Forward},
		},
		Roles: []actor.Role{actor.Counterparty},
	},
	status.Revision: {
		Descriptors: []Descriptor{
			{Target: status.Canceled, Direction: status.Backward},
			{Target: status.Approval, Direction: status.Forward},
		},
	},
	status.Verification: {
		Descriptors: []Descriptor{
			{Target: status.Approval, Direction: status.Backward},
			{Target: status.Completed, Direction: status.Forward},
		},
	},
	status.Canceled: {},
	status.Completed: {
		Descriptors: []Descriptor{
			{Target: status.Canceled, Direction: status.Backward, Permission: PermissionCanCancelFromCompleted},
		},
	},
}

// ActActions returns the actions of the ACT package type.
func ActActions() []*Action {
	return []*Action{
		NewAction(status.Approval,
			ReachableFrom(actor.Operator, status.Draft, status.Revision, status.Verification),
			ReachableFrom(actor.Counterparty, status.Verification),
			WithGuard(RequireUploadedDocuments()),
			WithTitles(map[status.Status]string{
				status.Draft:        "Send to counterparty for signing",
				status.Revision:     "Return to counterparty for signing",
				status.Verification: "Return for revision",
			}),
			WithMessage("Sent to counterparty for signing"),
			OnCommitted(notifyCounterparty),
		),
		NewAction(status.Revision,
			ReachableFrom(actor.Counterparty, status.Approval),
			WithTitles(map[status.Status]string{
				status.Approval: "Return for revision",
			}),
			WithMessage("Sent for revision"),
			OnCommitted(notifyOperator),
		),
		NewAction(status.Verification,
			ReachableFrom(actor.Counterparty, status.Approval),
			WithGuard(AllOf(
				RequireUploadedDocuments(),
				RequireSignedBy(actor.Counterparty),
			)),
			WithTitles(map[status.Status]string{
				status.Approval: "Send for verification",
			}),
			WithMessage("Sent for verification"),
			OnCommitted(notifyOperator),
		),
		NewAction(status.Canceled,
			ReachableFrom(actor.Operator, status.Draft, status.Revision),
			ReachableFromIfPermitted(actor.Operator, PermissionCanCancelFromCompleted, status.Completed),
			WithTitles(map[status.Status]string{
				status.Draft:     "Cancel",
				status.Revision:  "Cancel",
				status.Completed: "Cancel",
			}),
			WithMessage("Canceled"),
		),
		NewAction(status.Completed,
			ReachableFrom(actor.Operator, status.Verification),
			WithGuard(RequireSignedBy(actor.Operator)),
			WithTitles(map[status.Status]string{
				status.Verification: "Finish work with package",
			}),
			WithMessage("Document exchange completed"),
			OnCommitted(notifyCounterparty),
		),
	}
}

// RegisterAct adds the ACT package type to the registry.
func RegisterAct(r *Registry) error {
	return r.Register(Definition{
		Type:    docpackage.Act,
		Map:     ActMap,
		Actions: ActActions(),
	})
}

func notifyCounterparty(ctx context.Context, c Committed) error {
	return notify(ctx, c, notification.Recipient{ID: c.Package.CounterpartyID(), Role: actor.Counterparty})
}

func notifyOperator(ctx context.Context, c Committed) error {
	return notify(ctx, c, notification.Recipient{ID: c.Package.OperatorID(), Role: actor.Operator})
}

func notify(ctx context.Context, c Committed, to notification.Recipient) error {
	if c.Notifier == nil {
		return nil
	}
	return c.Notifier.Notify(ctx, []notification.Recipient{to}, notification.StatusChanged{
		PackageID:   c.Package.ID(),
		PackageType: c.Package.Type(),
		Period:      c.Package.Period(),
		Status:      c.Package.Status(),
		ForOperator: to.Role == actor.Operator,
	})
}
