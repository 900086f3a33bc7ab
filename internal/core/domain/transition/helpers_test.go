package transition_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"docflow/internal/core/domain/model/actor"
	"docflow/internal/core/domain/model/docpackage"
	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/notification"
	"docflow/internal/core/domain/model/status"

	"github.com/stretchr/testify/require"
)

type stubDocuments struct {
	requirements []document.Requirement
	err          error
}

func (s stubDocuments) RequiredDocuments(context.Context, *docpackage.Package) ([]document.Requirement, error) {
	return s.requirements, s.err
}

type stubPermissions map[string]bool

func (p stubPermissions) HasPermission(_ context.Context, _ actor.Actor, key string) (bool, error) {
	return p[key], nil
}

func (p stubPermissions) HasAnyPermission(_ context.Context, _ actor.Actor, keys []string) (bool, error) {
	for _, k := range keys {
		if p[k] {
			return true, nil
		}
	}
	return false, nil
}

type recordingNotifier struct {
	recipients []notification.Recipient
	messages   []notification.StatusChanged
	err        error
}

func (n *recordingNotifier) Notify(_ context.Context, to []notification.Recipient, msg notification.StatusChanged) error {
	if n.err != nil {
		return n.err
	}
	n.recipients = append(n.recipients, to...)
	n.messages = append(n.messages, msg)
	return nil
}

var errStorage = errors.New("storage unavailable")

func newPackage(t *testing.T, current status.Status) *docpackage.Package {
	t.Helper()
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	pkg, err := docpackage.RestorePackage(
		kernel.NewUUID(), docpackage.Act, current,
		kernel.NewUUID(), kernel.NewUUID(), "2024-03", now, now,
	)
	require.NoError(t, err)
	return pkg
}

func newActor(t *testing.T, role actor.Role) actor.Actor {
	t.Helper()
	a, err := actor.New(kernel.NewUUID(), role)
	require.NoError(t, err)
	return a
}

func signedAt() *time.Time {
	at := time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)
	return &at
}

// actRequirement is the "view" slot of an ACT package.
func actRequirement(uploaded bool, signedBy ...actor.Role) document.Requirement {
	req := document.Requirement{
		Slot:       document.SlotAct,
		Title:      "Act",
		IsRequired: true,
		IsUploaded: uploaded,
		NeedsSignature: map[actor.Role]bool{
			actor.Operator:     true,
			actor.Counterparty: true,
		},
		SignedAt: map[actor.Role]*time.Time{},
	}
	if uploaded {
		id := kernel.NewUUID()
		req.DocumentID = &id
	}
	for _, role := range signedBy {
		req.SignedAt[role] = signedAt()
	}
	return req
}

func billRequirement(required, uploaded bool, signed bool) document.Requirement {
	req := document.Requirement{
		Slot:       document.SlotBill,
		Title:      "Invoice",
		IsRequired: required,
		IsUploaded: uploaded,
		NeedsSignature: map[actor.Role]bool{
			actor.Counterparty: true,
		},
		SignedAt: map[actor.Role]*time.Time{},
	}
	if uploaded {
		id := kernel.NewUUID()
		req.DocumentID = &id
	}
	if signed {
		req.SignedAt[actor.Counterparty] = signedAt()
	}
	return req
}
