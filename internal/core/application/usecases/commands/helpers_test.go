package commands_test

import (
	"testing"
	"time"

	"docflow/internal/core/domain/model/actor"
	"docflow/internal/core/domain/model/docpackage"
	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/status"

	"github.com/stretchr/testify/require"
)

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

func uploadedAct() []document.Requirement {
	id := kernel.NewUUID()
	return []document.Requirement{{
		DocumentID: &id,
		Slot:       document.SlotAct,
		Title:      "Act",
		IsRequired: true,
		IsUploaded: true,
		NeedsSignature: map[actor.Role]bool{
			actor.Operator:     true,
			actor.Counterparty: true,
		},
		SignedAt: map[actor.Role]*time.Time{},
	}}
}

func uploadedActMissing() []document.Requirement {
	reqs := uploadedAct()
	reqs[0].DocumentID = nil
	reqs[0].IsUploaded = false
	return reqs
}
