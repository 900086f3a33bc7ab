// Package servers holds the HTTP contract of docflow: the OpenAPI document,
// its request and response models and the echo bindings.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for ActorRole.
const (
	OPERATOR     ActorRole = "OPERATOR"
	COUNTERPARTY ActorRole = "COUNTERPARTY"
)

// Defines values for Direction.
const (
	Backward Direction = "backward"
	Forward  Direction = "forward"
)

// ActorRole defines model for ActorRole.
type ActorRole string

// Direction defines model for AvailabilityEntry.Direction.
type Direction string

// AvailabilityEntry defines model for AvailabilityEntry.
type AvailabilityEntry struct {
	Available       bool         `json:"available"`
	BlockingMessage *string      `json:"blockingMessage,omitempty"`
	Direction       Direction    `json:"direction"`
	Id              int          `json:"id"`
	Label           string       `json:"label"`
	Message         string       `json:"message"`
	Name            string       `json:"name"`
	Remediation     *Remediation `json:"remediation,omitempty"`
	Title           string       `json:"title"`
}

// AvailableStatuses defines model for AvailableStatuses.
type AvailableStatuses struct {
	Current   Status              `json:"current"`
	PackageId openapi_types.UUID  `json:"packageId"`
	Statuses  []AvailabilityEntry `json:"statuses"`
}

// ChangeStatusRequest defines model for ChangeStatusRequest.
type ChangeStatusRequest struct {
	Status int `json:"status" validate:"required,min=1"`
}

// ChangeStatusResult defines model for ChangeStatusResult.
type ChangeStatusResult struct {
	Current   Status             `json:"current"`
	PackageId openapi_types.UUID `json:"packageId"`
	Previous  Status             `json:"previous"`
}

// Error defines model for Error.
type Error struct {
	Code        int          `json:"code"`
	ErrorCode   *string      `json:"errorCode,omitempty"`
	Message     string       `json:"message"`
	Remediation *Remediation `json:"remediation,omitempty"`
}

// ForwardAction defines model for ForwardAction.
type ForwardAction struct {
	Messages []string          `json:"messages"`
	Target   AvailabilityEntry `json:"target"`
	Title    string            `json:"title"`
}

// ForwardActionSummary defines model for ForwardActionSummary.
type ForwardActionSummary struct {
	BlockingMessage     *string `json:"blockingMessage,omitempty"`
	StatusChangeMessage *string `json:"statusChangeMessage,omitempty"`
}

// NewPackage defines model for NewPackage.
type NewPackage struct {
	CounterpartyId openapi_types.UUID `json:"counterpartyId" validate:"required"`
	Period         string             `json:"period" validate:"required,max=32"`
	Type           string             `json:"type" validate:"required,uppercase"`
}

// Package defines model for Package.
type Package struct {
	CounterpartyId openapi_types.UUID `json:"counterpartyId"`
	CreatedAt      time.Time          `json:"createdAt"`
	Documents      []PackageDocument  `json:"documents"`
	Id             openapi_types.UUID `json:"id"`
	OperatorId     openapi_types.UUID `json:"operatorId"`
	Period         string             `json:"period"`
	Status         Status             `json:"status"`
	Type           string             `json:"type"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

// PackageDocument defines model for PackageDocument.
type PackageDocument struct {
	AwaitingSignatureFrom []ActorRole         `json:"awaitingSignatureFrom"`
	DocumentId            *openapi_types.UUID `json:"documentId,omitempty"`
	Required              bool                `json:"required"`
	SignedBy              []ActorRole         `json:"signedBy"`
	Slot                  string              `json:"slot"`
	Title                 string              `json:"title"`
	Uploaded              bool                `json:"uploaded"`
}

// PackageCreated defines model for PackageCreated.
type PackageCreated struct {
	Id openapi_types.UUID `json:"id"`
}

// Remediation defines model for Remediation.
type Remediation map[string]RemediationItem

// RemediationItem defines model for RemediationItem.
type RemediationItem struct {
	DocumentIds *[]openapi_types.UUID `json:"documentIds,omitempty"`
	Message     string                `json:"message"`
	Reason      string                `json:"reason"`
}

// Status defines model for Status.
type Status struct {
	Id    int    `json:"id"`
	Label string `json:"label"`
	Name  string `json:"name"`
}

// ActorParams carries the actor headers every operation requires.
type ActorParams struct {
	XActorID   openapi_types.UUID `json:"X-Actor-ID"`
	XActorRole ActorRole          `json:"X-Actor-Role"`
}

// GetStatusesParams defines parameters for GetStatuses.
type GetStatusesParams = ActorParams

// CreatePackageParams defines parameters for CreatePackage.
type CreatePackageParams = ActorParams

// GetPackageParams defines parameters for GetPackage.
type GetPackageParams = ActorParams

// GetAvailableStatusesParams defines parameters for GetAvailableStatuses.
type GetAvailableStatusesParams = ActorParams

// GetForwardActionSummaryParams defines parameters for GetForwardActionSummary.
type GetForwardActionSummaryParams = ActorParams

// GetForwardActionsParams defines parameters for GetForwardActions.
type GetForwardActionsParams = ActorParams

// ChangePackageStatusParams defines parameters for ChangePackageStatus.
type ChangePackageStatusParams = ActorParams

// CreatePackageJSONRequestBody defines body for CreatePackage for application/json ContentType.
type CreatePackageJSONRequestBody = NewPackage

// ChangePackageStatusJSONRequestBody defines body for ChangePackageStatus for application/json ContentType.
type ChangePackageStatusJSONRequestBody = ChangeStatusRequest
