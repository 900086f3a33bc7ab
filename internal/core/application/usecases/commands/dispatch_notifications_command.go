package commands

import (
	"errors"

	"docflow/internal/pkg/errs"
	"docflow/internal/pkg/guard"
)

// DefaultDispatchBatchSize bounds one dispatch run.
const DefaultDispatchBatchSize = 50

var ErrDispatchNotificationsCommandIsNotConstructed = errors.New(
	"DispatchNotificationsCommand must be created via NewDispatchNotificationsCommand constructor",
)

// DispatchNotificationsCommand delivers a batch of queued notifications.
type DispatchNotificationsCommand struct {
	batchSize int

	guard guard.ConstructorGuard
}

// NewDispatchNotificationsCommand creates a command that claims at most
// batchSize pending notifications.
func NewDispatchNotificationsCommand(batchSize int) (DispatchNotificationsCommand, error) {
	if batchSize <= 0 {
		return DispatchNotificationsCommand{}, errs.NewValueIsInvalidError("batchSize")
	}
	return DispatchNotificationsCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DispatchNotificationsCommand) BatchSize() int {
	return c.batchSize
}

// Validate ensures the command was created through the constructor.
func (c DispatchNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrDispatchNotificationsCommandIsNotConstructed)
}
