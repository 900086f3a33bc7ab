package commands_test

import (
	"testing"

	"docflow/internal/core/application/usecases/commands"
	"docflow/internal/core/domain/model/docpackage"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreatePackageCommand(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		id, counterparty, operator := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

		cmd, err := commands.NewCreatePackageCommand(id, docpackage.Act, counterparty, operator, "2024-03")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, id, cmd.PackageID())
		assert.Equal(t, docpackage.Act, cmd.PackageType())
		assert.Equal(t, counterparty, cmd.CounterpartyID())
		assert.Equal(t, operator, cmd.OperatorID())
		assert.Equal(t, "2024-03", cmd.Period())
	})

	t.Run("blank period", func(t *testing.T) {
		_, err := commands.NewCreatePackageCommand(kernel.NewUUID(), docpackage.Act, kernel.NewUUID(), kernel.NewUUID(), "  ")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("malformed type", func(t *testing.T) {
		_, err := commands.NewCreatePackageCommand(kernel.NewUUID(), "act-1", kernel.NewUUID(), kernel.NewUUID(), "2024-03")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value", func(t *testing.T) {
		var cmd commands.CreatePackageCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreatePackageCommandIsNotConstructed)
	})
}
