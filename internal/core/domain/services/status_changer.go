package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"docflow/internal/core/domain/model/actor"
	"docflow/internal/core/domain/model/audit"
	"docflow/internal/core/domain/model/docpackage"
	"docflow/internal/core/domain/model/status"
	"docflow/internal/core/domain/transition"
	"docflow/internal/pkg/errs"
)

// DefaultMaxHops bounds how many cascaded changes one request may apply.
const DefaultMaxHops = 10

type PackageWriter interface {
	Update(ctx context.Context, pkg *docpackage.Package) error
}

type AuditRecorder interface {
	Record(ctx context.Context, record audit.Record) error
}

// ChangeEnv binds a status change to the surrounding transaction. Every
// collaborator must read and write through that same transaction.
type ChangeEnv struct {
	Packages    PackageWriter
	Audit       AuditRecorder
	Documents   transition.DocumentSource
	Permissions transition.PermissionChecker
	Notifier    transition.Notifier
}

func (e ChangeEnv) validate() error {
	switch {
	case e.Packages == nil:
		return errs.NewValueIsRequiredError("packages")
	case e.Audit == nil:
		return errs.NewValueIsRequiredError("audit")
	case e.Documents == nil:
		return errs.NewValueIsRequiredError("documents")
	case e.Permissions == nil:
		return errs.NewValueIsRequiredError("permissions")
	}
	return nil
}

type ChangeOptions struct {
	// IsAutoChange marks changes not directly requested by the actor.
	IsAutoChange bool

	// Persist saves the package after every hop. Without it the caller is
	// responsible for saving.
	Persist bool
}

// StatusChanger applies status changes to packages.
type StatusChanger struct {
	registry *transition.Registry
	logger   *slog.Logger
	now      func() time.Time
	maxHops  int
}

type StatusChangerOption func(*StatusChanger)

// WithClock overrides the time stamped on the package and its audit record.
func WithClock(now func() time.Time) StatusChangerOption {
	return func(c *StatusChanger) {
		c.now = now
	}
}

// WithMaxHops limits how many cascade hops one change may take.
// NewStatusChanger rejects values below one.
func WithMaxHops(n int) StatusChangerOption {
	return func(c *StatusChanger) {
		c.maxHops = n
	}
}

// NewStatusChanger creates a changer that resolves actions from registry.
func NewStatusChanger(registry *transition.Registry, logger *slog.Logger, opts ...StatusChangerOption) (*StatusChanger, error) {
	if registry == nil {
		return nil, errs.NewValueIsRequiredError("registry")
	}
	if logger == nil {
		logger = slog.Default()
	}

	c := &StatusChanger{
		registry: registry,
		logger:   logger.With("component", "status-changer"),
		now:      time.Now,
		maxHops:  DefaultMaxHops,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.maxHops < 1 {
		return nil, errs.NewValueIsInvalidError("maxHops")
	}
	return c, nil
}

// ChangeStatus moves pkg to target on behalf of who and returns the status
// the package ends in, which differs from target when the action cascades.
//
// Asking for the current status is a no-op. On failure the package keeps the
// status it had before the call and the error is a *transition.ChangeStatusError.
// The caller must roll back the transaction behind env in that case.
func (c *StatusChanger) ChangeStatus(
	ctx context.Context,
	env ChangeEnv,
	pkg *docpackage.Package,
	target status.Status,
	who actor.Actor,
	opts ChangeOptions,
) (status.Status, error) {
	if err := errors.Join(pkg.Validate(), who.Validate(), env.validate()); err != nil {
		return status.Unknown, transition.NewChangeStatusError(err)
	}

	if pkg.Status() == target {
		return target, nil
	}

	before, beforeAt := pkg.Status(), pkg.UpdatedAt()

	final, err := c.change(ctx, env, pkg, target, who, opts, 1)
	if err == nil {
		return final, nil
	}

	// A cascade that lands on the status it is already in ends the chain.
	var same *transition.SameStatusError
	if errors.As(err, &same) {
		return pkg.Status(), nil
	}

	pkg.RevertStatus(before, beforeAt)
	return before, transition.NewChangeStatusError(err)
}

func (c *StatusChanger) change(
	ctx context.Context,
	env ChangeEnv,
	pkg *docpackage.Package,
	target status.Status,
	who actor.Actor,
	opts ChangeOptions,
	hop int,
) (status.Status, error) {
	from := pkg.Status()
	log := c.logger.With(
		"package_id", pkg.ID().String(),
		"package_type", pkg.Type().String(),
		"from", from.Name(),
		"to", target.Name(),
		"hop", hop,
	)

	if hop > c.maxHops {
		err := transition.NewHopLimitExceededError(c.maxHops, from)
		log.ErrorContext(ctx, "status cascade does not converge", "error", err)
		return from, err
	}

	if from == target {
		return from, transition.NewSameStatusError(target)
	}

	action, err := c.registry.Action(pkg.Type(), target)
	if err != nil {
		log.ErrorContext(ctx, "status transition is not configured", "error", err)
		return from, err
	}

	direction, err := c.registry.Direction(ctx, pkg.Type(), who, env.Permissions, from, target)
	if err != nil {
		return from, err
	}

	deps := transition.Deps{
		Documents:   env.Documents,
		Permissions: env.Permissions,
		Notifier:    env.Notifier,
		Logger:      c.logger,
	}
	tr, err := transition.Prepare(ctx, deps, action, pkg, who, direction, opts.IsAutoChange)
	if err != nil {
		var unexpected *transition.UnexpectedStatusChangeError
		if errors.As(err, &unexpected) {
			log.WarnContext(ctx, "operator requested a transition outside their role",
				"actor_id", who.ID().String(), "error", err)
		}
		return from, err
	}

	if err := pkg.ChangeStatus(target, c.now()); err != nil {
		return from, err
	}

	if opts.Persist {
		if err := env.Packages.Update(ctx, pkg); err != nil {
			return from, fmt.Errorf("save package: %w", err)
		}
	}

	err = env.Audit.Record(ctx, audit.Record{
		PackageID:    pkg.ID(),
		ActorID:      who.ID(),
		Field:        audit.FieldStatus,
		Before:       strconv.Itoa(int(from)),
		After:        strconv.Itoa(int(target)),
		IsAutoChange: opts.IsAutoChange,
		At:           pkg.UpdatedAt(),
	})
	if err != nil {
		return from, fmt.Errorf("record status change: %w", err)
	}

	tr.OnCommitted(ctx)

	log.InfoContext(ctx, "package status changed",
		"actor_id", who.ID().String(),
		"direction", direction.String(),
		"auto", opts.IsAutoChange,
	)

	if next, ok := tr.Cascade(); ok {
		return c.change(ctx, env, pkg, next, who, ChangeOptions{IsAutoChange: true, Persist: opts.Persist}, hop+1)
	}
	return target, nil
}
