package services_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"docflow/internal/core/domain/model/actor"
	"docflow/internal/core/domain/model/audit"
	"docflow/internal/core/domain/model/docpackage"
	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/notification"
	"docflow/internal/core/domain/model/status"
	"docflow/internal/core/domain/services"
	"docflow/internal/core/domain/transition"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errStorage = errors.New("storage unavailable")

var fixedNow = time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)

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

// operatorPermissions grants the view permission on every ACT status.
func operatorPermissions(extra ...string) stubPermissions {
	perms := stubPermissions{}
	for _, s := range status.All() {
		perms[transition.StatusViewPermission(docpackage.Act, s)] = true
	}
	for _, p := range extra {
		perms[p] = true
	}
	return perms
}

type MockPackageWriter struct {
	mock.Mock
}

func (m *MockPackageWriter) Update(ctx context.Context, pkg *docpackage.Package) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}

type MockAuditRecorder struct {
	mock.Mock
}

func (m *MockAuditRecorder) Record(ctx context.Context, record audit.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, to []notification.Recipient, msg notification.StatusChanged) error {
	args := m.Called(ctx, to, msg)
	return args.Error(0)
}

func newPackage(t *testing.T, packageType docpackage.Type, current status.Status) *docpackage.Package {
	t.Helper()
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	pkg, err := docpackage.RestorePackage(
		kernel.NewUUID(), packageType, current,
		kernel.NewUUID(), kernel.NewUUID(), "2024-03", created, created,
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

func newActRegistry(t *testing.T) *transition.Registry {
	t.Helper()
	r := transition.NewRegistry()
	require.NoError(t, transition.RegisterAct(r))
	return r
}

func newChanger(t *testing.T, r *transition.Registry, opts ...services.StatusChangerOption) (*services.StatusChanger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	opts = append([]services.StatusChangerOption{services.WithClock(func() time.Time { return fixedNow })}, opts...)
	changer, err := services.NewStatusChanger(r, logger, opts...)
	require.NoError(t, err)
	return changer, &buf
}

func signed() *time.Time {
	at := time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)
	return &at
}

// actDocs describes the ACT requirement list: the act itself and,
// optionally, the invoice.
type actDocs struct {
	actUploaded  bool
	actSignedBy  []actor.Role
	withBill     bool
	billRequired bool
	billUploaded bool
	billSigned   bool
}

func (d actDocs) requirements() []document.Requirement {
	act := document.Requirement{
		Slot:       document.SlotAct,
		Title:      "Act",
		IsRequired: true,
		IsUploaded: d.actUploaded,
		NeedsSignature: map[actor.Role]bool{
			actor.Operator:     true,
			actor.Counterparty: true,
		},
		SignedAt: map[actor.Role]*time.Time{},
	}
	if d.actUploaded {
		id := kernel.NewUUID()
		act.DocumentID = &id
	}
	for _, role := range d.actSignedBy {
		act.SignedAt[role] = signed()
	}

	reqs := []document.Requirement{act}
	if d.withBill {
		bill := document.Requirement{
			Slot:           document.SlotBill,
			Title:          "Invoice",
			IsRequired:     d.billRequired,
			IsUploaded:     d.billUploaded,
			NeedsSignature: map[actor.Role]bool{actor.Counterparty: true},
			SignedAt:       map[actor.Role]*time.Time{},
		}
		if d.billUploaded {
			id := kernel.NewUUID()
			bill.DocumentID = &id
		}
		if d.billSigned {
			bill.SignedAt[actor.Counterparty] = signed()
		}
		reqs = append(reqs, bill)
	}
	return reqs
}

func (d actDocs) source() stubDocuments {
	return stubDocuments{requirements: d.requirements()}
}
