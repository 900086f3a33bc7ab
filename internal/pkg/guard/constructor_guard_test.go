package guard_test

import (
	"errors"
	"testing"

	"docflow/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("command not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

// TestConstructorGuardEmbedded shows the guard embedded in a command value.
func TestConstructorGuardEmbedded(t *testing.T) {
	errCommandNotConstructed := errors.New("Command must be created via NewCommand")

	type command struct {
		target int
		guard  guard.ConstructorGuard
	}

	newCommand := func(target int) (command, error) {
		if target <= 0 {
			return command{}, errors.New("target is required")
		}
		return command{target: target, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_command_validates", func(t *testing.T) {
		cmd, err := newCommand(2)
		require.NoError(t, err)
		require.NoError(t, cmd.guard.Validate(errCommandNotConstructed))
		assert.Equal(t, 2, cmd.target)
	})

	t.Run("literal_command_fails", func(t *testing.T) {
		cmd := command{target: 2}
		require.ErrorIs(t, cmd.guard.Validate(errCommandNotConstructed), errCommandNotConstructed)
	})

	t.Run("copy_keeps_constructed_flag", func(t *testing.T) {
		cmd, err := newCommand(3)
		require.NoError(t, err)
		copied := cmd
		require.NoError(t, copied.guard.Validate(errCommandNotConstructed))
	})
}

func BenchmarkConstructorGuard(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(err)
	}
}
