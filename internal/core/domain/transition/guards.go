package transition

import (
	"context"
	"fmt"

	"docflow/internal/core/domain/model/actor"
	"docflow/internal/core/domain/model/kernel"
)

// Guard decides whether a forward transition may proceed. A refusal the user
// can fix is a *ValidationError; any other error aborts the caller.
type Guard func(ctx context.Context, subject Subject) error

// RequireUploadedDocuments refuses while a required slot has no file.
func RequireUploadedDocuments() Guard {
	return func(ctx context.Context, subject Subject) error {
		requirements, err := subject.Documents.RequiredDocuments(ctx, subject.Package)
		if err != nil {
			return fmt.Errorf("load document requirements: %w", err)
		}

		var messages messageList
		remediation := Remediation{}
		for _, req := range requirements {
			if !req.MissingUpload() {
				continue
			}
			messages.add(fmt.Sprintf("Document \"%s\" is not uploaded", req.Title))
			remediation[req.Slot] = RemediationItem{
				Reason:  ReasonUpload,
				Message: "Document upload required",
			}
		}

		if messages.empty() {
			return nil
		}
		return NewValidationError(messages.String(), remediation)
	}
}

// RequireSignedBy refuses while role still has slots to sign.
func RequireSignedBy(role actor.Role) Guard {
	return func(ctx context.Context, subject Subject) error {
		requirements, err := subject.Documents.RequiredDocuments(ctx, subject.Package)
		if err != nil {
			return fmt.Errorf("load document requirements: %w", err)
		}

		var messages messageList
		remediation := Remediation{}
		for _, req := range requirements {
			if !req.MissingSignatureBy(role) {
				continue
			}
			messages.add(fmt.Sprintf("Document \"%s\" is not signed", req.Title))

			var ids []kernel.UUID
			if req.DocumentID != nil {
				ids = append(ids, *req.DocumentID)
			}
			remediation[req.Slot] = RemediationItem{
				Reason:      ReasonSign,
				Message:     "Document signature required",
				DocumentIDs: ids,
			}
		}

		if messages.empty() {
			return nil
		}
		return NewValidationError(messages.String(), remediation)
	}
}

// AllOf runs guards in order and returns the first refusal.
func AllOf(guards ...Guard) Guard {
	return func(ctx context.Context, subject Subject) error {
		for _, g := range guards {
			if err := g(ctx, subject); err != nil {
				return err
			}
		}
		return nil
	}
}
