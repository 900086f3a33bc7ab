// Package notification describes the messages sent to package parties when
// a status change commits. Delivery itself is done by adapters.
package notification

import (
	"time"

	"docflow/internal/core/domain/model/actor"
	"docflow/internal/core/domain/model/docpackage"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/status"
)

// Recipient is a party to notify. For counterparties the ID is the
// counterparty organisation; the transport fans out to its users.
type Recipient struct {
	ID   kernel.UUID
	Role actor.Role
}

// StatusChanged is the context of a status change notification.
type StatusChanged struct {
	PackageID   kernel.UUID
	PackageType docpackage.Type
	Period      string
	Status      status.Status

	// ForOperator selects the operator-facing wording.
	ForOperator bool
}

// Outgoing is a queued notification waiting for delivery.
type Outgoing struct {
	ID        kernel.UUID
	Recipient Recipient
	Message   StatusChanged
	Attempts  int
	CreatedAt time.Time
}
