package queries_test

import (
	"context"
	"testing"
	"time"

	"docflow/internal/core/domain/model/actor"
	"docflow/internal/core/domain/model/docpackage"
	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/status"
	"docflow/internal/core/domain/services"
	"docflow/internal/core/domain/transition"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPackageReader struct {
	mock.Mock
}

func (m *MockPackageReader) Get(ctx context.Context, id kernel.UUID) (*docpackage.Package, error) {
	args := m.Called(ctx, id)
	if pkg := args.Get(0); pkg != nil {
		return pkg.(*docpackage.Package), args.Error(1)
	}
	return nil, args.Error(1)
}

type stubDocuments []document.Requirement

func (s stubDocuments) RequiredDocuments(context.Context, *docpackage.Package) ([]document.Requirement, error) {
	return s, nil
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

func viewEverything() stubPermissions {
	perms := stubPermissions{}
	for _, s := range status.All() {
		perms[transition.StatusViewPermission(docpackage.Act, s)] = true
	}
	return perms
}

func newCalculator(t *testing.T, docs stubDocuments, perms stubPermissions) *services.AvailabilityCalculator {
	t.Helper()
	registry := transition.NewRegistry()
	require.NoError(t, transition.RegisterAct(registry))
	calculator, err := services.NewAvailabilityCalculator(registry, docs, perms)
	require.NoError(t, err)
	return calculator
}

func newActor(t *testing.T, role actor.Role) actor.Actor {
	t.Helper()
	a, err := actor.New(kernel.NewUUID(), role)
	require.NoError(t, err)
	return a
}

func newPackage(t *testing.T, current status.Status) *docpackage.Package {
	t.Helper()
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	pkg, err := docpackage.RestorePackage(
		kernel.NewUUID(), docpackage.Act, current,
		kernel.NewUUID(), kernel.NewUUID(), "2024-03", created, created,
	)
	require.NoError(t, err)
	return pkg
}

func act(uploaded bool, signedBy ...actor.Role) stubDocuments {
	signedAt := map[actor.Role]*time.Time{}
	for _, role := range signedBy {
		at := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
		signedAt[role] = &at
	}
	req := document.Requirement{
		Slot:       document.SlotAct,
		Title:      "Act",
		IsRequired: true,
		IsUploaded: uploaded,
		NeedsSignature: map[actor.Role]bool{
			actor.Operator:     true,
			actor.Counterparty: true,
		},
		SignedAt: signedAt,
	}
	if uploaded {
		id := kernel.NewUUID()
		req.DocumentID = &id
	}
	return stubDocuments{req}
}
