package transition

import (
	"errors"
	"fmt"

	"docflow/internal/core/domain/model/docpackage"
	"docflow/internal/core/domain/model/status"
)

var (
	ErrSameStatus             = errors.New("package already has the requested status")
	ErrValidation             = errors.New("status transition is not allowed")
	ErrUnexpectedStatusChange = errors.New("status transition is not provided")
	ErrActionNotConfigured    = errors.New("status transition action is not configured")
	ErrUnknownPackageType     = errors.New("package type is not configured")
	ErrHopLimitExceeded       = errors.New("status cascade exceeded the hop limit")
	ErrChangeStatus           = errors.New("package status change failed")
)

// Code classifies status errors for callers that map them onto a transport.
type Code string

const (
	CodeSameStatus             Code = "same_status"
	CodeValidation             Code = "validation_failed"
	CodeUnexpectedStatusChange Code = "unexpected_status_change"
	CodeActionNotConfigured    Code = "action_not_configured"
	CodeUnknownPackageType     Code = "unknown_package_type"
	CodeHopLimitExceeded       Code = "hop_limit_exceeded"
	CodeChangeStatus           Code = "change_status_failed"
)

// DefaultChangeStatusMessage is shown to users when the real cause must stay
// internal.
const DefaultChangeStatusMessage = "Error while changing package status"

// StatusError is the common surface of every error in this package.
type StatusError interface {
	error
	Code() Code
	Message() string
}

// SameStatusError means the target equals the current status.
type SameStatusError struct {
	Status status.Status
}

// NewSameStatusError reports a request to move a package into the status it
// already has.
func NewSameStatusError(s status.Status) *SameStatusError {
	return &SameStatusError{Status: s}
}

func (e *SameStatusError) Error() string {
	return fmt.Sprintf("%s: %s", ErrSameStatus.Error(), e.Status.Name())
}

func (e *SameStatusError) Message() string { return e.Error() }
func (e *SameStatusError) Code() Code      { return CodeSameStatus }
func (e *SameStatusError) Unwrap() error   { return ErrSameStatus }

// ValidationError is a user-fixable refusal. Message is displayable as is and
// Remediation tells the UI what to do per document slot.
type ValidationError struct {
	Msg         string
	Remediation Remediation
}

// NewValidationError creates a guard failure with a user facing message and
// the remediation that lists what to fix.
func NewValidationError(msg string, remediation Remediation) *ValidationError {
	return &ValidationError{Msg: msg, Remediation: remediation}
}

func (e *ValidationError) Error() string   { return e.Msg }
func (e *ValidationError) Message() string { return e.Msg }
func (e *ValidationError) Code() Code      { return CodeValidation }
func (e *ValidationError) Unwrap() error   { return ErrValidation }

// UnexpectedStatusChangeError means an operator asked for a transition their
// role cannot reach. It usually points at a stale UI or a crafted request.
type UnexpectedStatusChangeError struct {
	From status.Status
	To   status.Status
}

// NewUnexpectedStatusChangeError reports a move that is not an edge of the
// graph for the actor.
func NewUnexpectedStatusChangeError(from, to status.Status) *UnexpectedStatusChangeError {
	return &UnexpectedStatusChangeError{From: from, To: to}
}

func (e *UnexpectedStatusChangeError) Error() string {
	return fmt.Sprintf(
		"Transition of the package from the current status to the requested one is not provided (%s->%s).",
		e.From.Label(), e.To.Label(),
	)
}

func (e *UnexpectedStatusChangeError) Message() string { return e.Error() }
func (e *UnexpectedStatusChangeError) Code() Code      { return CodeUnexpectedStatusChange }
func (e *UnexpectedStatusChangeError) Unwrap() error   { return ErrUnexpectedStatusChange }

// ActionNotConfiguredError is a configuration defect: no action is
// registered for the (type, target) pair.
type ActionNotConfiguredError struct {
	Type   docpackage.Type
	Target status.Status
	Cause  error
}

// NewActionNotConfiguredError wraps a registry lookup failure for the given
// package type and target.
func NewActionNotConfiguredError(t docpackage.Type, target status.Status, cause error) *ActionNotConfiguredError {
	return &ActionNotConfiguredError{Type: t, Target: target, Cause: cause}
}

func (e *ActionNotConfiguredError) Error() string {
	msg := fmt.Sprintf("%s: type %q, target %s", ErrActionNotConfigured.Error(), e.Type, e.Target.Name())
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e *ActionNotConfiguredError) Message() string { return e.Error() }
func (e *ActionNotConfiguredError) Code() Code      { return CodeActionNotConfigured }

func (e *ActionNotConfiguredError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrActionNotConfigured}
	}
	return []error{ErrActionNotConfigured, e.Cause}
}

// UnknownPackageTypeError means the registry has no definition for the type.
type UnknownPackageTypeError struct {
	Type docpackage.Type
}

// NewUnknownPackageTypeError reports a package type without a registered
// graph.
func NewUnknownPackageTypeError(t docpackage.Type) *UnknownPackageTypeError {
	return &UnknownPackageTypeError{Type: t}
}

func (e *UnknownPackageTypeError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownPackageType.Error(), e.Type)
}

func (e *UnknownPackageTypeError) Message() string { return e.Error() }
func (e *UnknownPackageTypeError) Code() Code      { return CodeUnknownPackageType }
func (e *UnknownPackageTypeError) Unwrap() error   { return ErrUnknownPackageType }

// HopLimitExceededError stops a cascade that does not converge.
type HopLimitExceededError struct {
	Limit int
	At    status.Status
}

// NewHopLimitExceededError reports a cascade that did not settle within limit
// hops.
func NewHopLimitExceededError(limit int, at status.Status) *HopLimitExceededError {
	return &HopLimitExceededError{Limit: limit, At: at}
}

func (e *HopLimitExceededError) Error() string {
	return fmt.Sprintf("%s: %d hops, stopped at %s", ErrHopLimitExceeded.Error(), e.Limit, e.At.Name())
}

func (e *HopLimitExceededError) Message() string { return e.Error() }
func (e *HopLimitExceededError) Code() Code      { return CodeHopLimitExceeded }
func (e *HopLimitExceededError) Unwrap() error   { return ErrHopLimitExceeded }

// ChangeStatusError is the single wrapper the status changer returns. Its
// Message is safe to show: validation and role errors pass their text
// through, everything else collapses into DefaultChangeStatusMessage.
type ChangeStatusError struct {
	Cause error
}

// NewChangeStatusError wraps the failure returned by a status change so
// callers can match ErrChangeStatus and the cause with errors.Is.
func NewChangeStatusError(cause error) *ChangeStatusError {
	return &ChangeStatusError{Cause: cause}
}

func (e *ChangeStatusError) Error() string {
	if e.Cause == nil {
		return ErrChangeStatus.Error()
	}
	return fmt.Sprintf("%s: %v", ErrChangeStatus.Error(), e.Cause)
}

func (e *ChangeStatusError) Message() string {
	var validation *ValidationError
	if errors.As(e.Cause, &validation) {
		return validation.Message()
	}
	var unexpected *UnexpectedStatusChangeError
	if errors.As(e.Cause, &unexpected) {
		return unexpected.Message()
	}
	return DefaultChangeStatusMessage
}

func (e *ChangeStatusError) Code() Code {
	var se StatusError
	if errors.As(e.Cause, &se) {
		return se.Code()
	}
	return CodeChangeStatus
}

// Remediation returns the remediation of a wrapped validation error, if any.
func (e *ChangeStatusError) Remediation() Remediation {
	var validation *ValidationError
	if errors.As(e.Cause, &validation) {
		return validation.Remediation
	}
	return nil
}

func (e *ChangeStatusError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrChangeStatus}
	}
	return []error{ErrChangeStatus, e.Cause}
}

// IsConfigurationError reports defects in the registered workflow rather than
// in the request.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrActionNotConfigured) ||
		errors.Is(err, ErrUnknownPackageType) ||
		errors.Is(err, ErrHopLimitExceeded)
}
