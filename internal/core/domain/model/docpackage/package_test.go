package docpackage_test

import (
	"testing"
	"time"

	"docflow/internal/core/domain/model/docpackage"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/status"
	"docflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPackage(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("should create package in Draft", func(t *testing.T) {
		id := kernel.NewUUID()
		counterpartyID := kernel.NewUUID()
		operatorID := kernel.NewUUID()

		pkg, err := docpackage.NewPackage(id, docpackage.Act, counterpartyID, operatorID, " 2024-03 ", now)

		require.NoError(t, err)
		require.NoError(t, pkg.Validate())
		assert.True(t, pkg.ID().IsEqual(id))
		assert.Equal(t, docpackage.Act, pkg.Type())
		assert.Equal(t, status.Draft, pkg.Status())
		assert.True(t, pkg.CounterpartyID().IsEqual(counterpartyID))
		assert.True(t, pkg.OperatorID().IsEqual(operatorID))
		assert.Equal(t, "2024-03", pkg.Period())
		assert.Equal(t, now, pkg.CreatedAt())
		assert.Equal(t, now, pkg.UpdatedAt())
	})

	t.Run("should collect every validation error", func(t *testing.T) {
		pkg, err := docpackage.NewPackage(kernel.UUID{}, "", kernel.UUID{}, kernel.UUID{}, "", now)

		require.Error(t, err)
		assert.Nil(t, pkg)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "package type")
		assert.Contains(t, err.Error(), "counterparty")
		assert.Contains(t, err.Error(), "operator")
		assert.Contains(t, err.Error(), "period")
	})

	t.Run("should accept unregistered but well-formed type", func(t *testing.T) {
		pkg, err := docpackage.NewPackage(kernel.NewUUID(), "XYZ", kernel.NewUUID(), kernel.NewUUID(), "2024-03", now)

		require.NoError(t, err)
		assert.Equal(t, docpackage.Type("XYZ"), pkg.Type())
	})

	t.Run("should reject malformed type", func(t *testing.T) {
		_, err := docpackage.NewPackage(kernel.NewUUID(), "act", kernel.NewUUID(), kernel.NewUUID(), "2024-03", now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestorePackage(t *testing.T) {
	t.Run("should reject status outside the catalog", func(t *testing.T) {
		_, err := docpackage.RestorePackage(
			kernel.NewUUID(), docpackage.Act, status.Status(42),
			kernel.NewUUID(), kernel.NewUUID(), "2024-03", time.Now(), time.Now(),
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPackage_ChangeStatus(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	pkg, err := docpackage.NewPackage(kernel.NewUUID(), docpackage.Act, kernel.NewUUID(), kernel.NewUUID(), "2024-03", created)
	require.NoError(t, err)

	t.Run("should change status and touch updatedAt", func(t *testing.T) {
		later := created.Add(time.Hour)

		require.NoError(t, pkg.ChangeStatus(status.Approval, later))

		assert.Equal(t, status.Approval, pkg.Status())
		assert.Equal(t, later, pkg.UpdatedAt())
	})

	t.Run("should keep status on invalid target", func(t *testing.T) {
		err := pkg.ChangeStatus(status.Unknown, created)

		require.Error(t, err)
		assert.Equal(t, status.Approval, pkg.Status())
	})

	t.Run("should revert to a previous snapshot", func(t *testing.T) {
		pkg.RevertStatus(status.Draft, created)

		assert.Equal(t, status.Draft, pkg.Status())
		assert.Equal(t, created, pkg.UpdatedAt())
	})
}

func TestPackage_Validate(t *testing.T) {
	var nilPkg *docpackage.Package
	require.ErrorIs(t, nilPkg.Validate(), docpackage.ErrPackageIsNotConstructed)
	require.ErrorIs(t, (&docpackage.Package{}).Validate(), docpackage.ErrPackageIsNotConstructed)
}
