package commands_test

import (
	"errors"
	"testing"

	"docflow/internal/core/application/usecases/commands"
	"docflow/internal/core/domain/model/docpackage"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/status"
	"docflow/internal/core/domain/transition"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateHandler(t *testing.T, factory commands.PackageUoWFactory) commands.CreatePackageCommandHandler {
	t.Helper()
	registry := transition.NewRegistry()
	require.NoError(t, transition.RegisterAct(registry))
	return commands.NewCreatePackageCommandHandler(factory, registry)
}

func TestCreatePackageCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	mockRepo := new(MockPackageRepository)
	mockUoW := new(MockPackageUoW)
	mockFactory := new(MockPackageUoWFactory)

	cmd, err := commands.NewCreatePackageCommand(kernel.NewUUID(), docpackage.Act, kernel.NewUUID(), kernel.NewUUID(), "2024-03")
	require.NoError(t, err)

	isNewDraft := mock.MatchedBy(func(p *docpackage.Package) bool {
		return p.ID() == cmd.PackageID() && p.Status() == status.Draft && p.Period() == "2024-03"
	})

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("PackageRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, isNewDraft).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := newCreateHandler(t, mockFactory)

	// Act
	id, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, cmd.PackageID(), id)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCreatePackageCommandHandler_Handle_UnknownType(t *testing.T) {
	mockFactory := new(MockPackageUoWFactory)
	cmd, err := commands.NewCreatePackageCommand(kernel.NewUUID(), "XYZ", kernel.NewUUID(), kernel.NewUUID(), "2024-03")
	require.NoError(t, err)

	_, err = newCreateHandler(t, mockFactory).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, transition.ErrUnknownPackageType)
	mockFactory.AssertNotCalled(t, "Create")
}

func TestCreatePackageCommandHandler_Handle_AddFails(t *testing.T) {
	ctx := t.Context()
	mockRepo := new(MockPackageRepository)
	mockUoW := new(MockPackageUoW)
	mockFactory := new(MockPackageUoWFactory)
	addErr := errors.New("duplicate key")

	cmd, err := commands.NewCreatePackageCommand(kernel.NewUUID(), docpackage.Act, kernel.NewUUID(), kernel.NewUUID(), "2024-03")
	require.NoError(t, err)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("PackageRepository").Return(mockRepo).Once()
	mockRepo.On("Add", ctx, mock.Anything).Return(addErr).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	_, err = newCreateHandler(t, mockFactory).Handle(ctx, cmd)

	require.ErrorIs(t, err, addErr)
	mockUoW.AssertNotCalled(t, "Commit", mock.Anything)
	mockUoW.AssertExpectations(t)
}
