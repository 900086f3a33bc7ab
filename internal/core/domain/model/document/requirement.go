package document

import (
	"time"

	"docflow/internal/core/domain/model/actor"
	"docflow/internal/core/domain/model/kernel"
)

// Requirement is the per-package view of one document slot as seen by guards.
type Requirement struct {
	// DocumentID is set when a file has been uploaded into the slot.
	DocumentID *kernel.UUID

	Slot       string
	Title      string
	IsRequired bool
	IsUploaded bool

	NeedsSignature map[actor.Role]bool
	SignedAt       map[actor.Role]*time.Time
}

// MissingUpload reports a required slot without a file. Optional slots are exempt.
func (r Requirement) MissingUpload() bool {
	return r.IsRequired && !r.IsUploaded
}

// MissingSignatureBy reports that role still has to sign the slot.
// Slots the role does not sign are exempt, and so are slots that are neither
// uploaded nor required.
func (r Requirement) MissingSignatureBy(role actor.Role) bool {
	if !r.IsRequired && !r.IsUploaded {
		return false
	}
	if !r.NeedsSignature[role] {
		return false
	}
	signedAt := r.SignedAt[role]
	return signedAt == nil || signedAt.IsZero()
}
