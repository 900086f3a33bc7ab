package commands_test

import (
	"context"

	"docflow/internal/core/application/usecases/commands"
	"docflow/internal/core/domain/model/actor"
	"docflow/internal/core/domain/model/audit"
	"docflow/internal/core/domain/model/docpackage"
	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/notification"
	"docflow/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockPackageRepository struct {
	mock.Mock
}

func (m *MockPackageRepository) Add(ctx context.Context, aggregate *docpackage.Package) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPackageRepository) Update(ctx context.Context, aggregate *docpackage.Package) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPackageRepository) Get(ctx context.Context, id kernel.UUID) (*docpackage.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*docpackage.Package), args.Error(1)
}

func (m *MockPackageRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*docpackage.Package, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*docpackage.Package), args.Error(1)
}

type MockAuditLogger struct {
	mock.Mock
}

func (m *MockAuditLogger) Record(ctx context.Context, record audit.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

type MockDocumentOracle struct {
	mock.Mock
}

func (m *MockDocumentOracle) RequiredDocuments(ctx context.Context, pkg *docpackage.Package) ([]document.Requirement, error) {
	args := m.Called(ctx, pkg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]document.Requirement), args.Error(1)
}

type MockPermissionOracle struct {
	mock.Mock
}

func (m *MockPermissionOracle) HasPermission(ctx context.Context, who actor.Actor, key string) (bool, error) {
	args := m.Called(ctx, who, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockPermissionOracle) HasAnyPermission(ctx context.Context, who actor.Actor, keys []string) (bool, error) {
	args := m.Called(ctx, who, keys)
	return args.Bool(0), args.Error(1)
}

func (m *MockPermissionOracle) Permissions(ctx context.Context, who actor.Actor) ([]string, error) {
	args := m.Called(ctx, who)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) Notify(ctx context.Context, to []notification.Recipient, msg notification.StatusChanged) error {
	args := m.Called(ctx, to, msg)
	return args.Error(0)
}

type MockOutbox struct {
	mock.Mock
}

func (m *MockOutbox) Pending(ctx context.Context, limit int) ([]notification.Outgoing, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]notification.Outgoing), args.Error(1)
}

func (m *MockOutbox) MarkSent(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOutbox) MarkFailed(ctx context.Context, id kernel.UUID, reason string) error {
	args := m.Called(ctx, id, reason)
	return args.Error(0)
}

type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Deliver(ctx context.Context, n notification.Outgoing) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

// txMock is shared by every unit of work mock.
type txMock struct {
	mock.Mock
}

func (m *txMock) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *txMock) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *txMock) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockStatusChangeUoW struct {
	txMock
}

func (m *MockStatusChangeUoW) PackageRepository() ports.PackageRepository {
	return m.Called().Get(0).(ports.PackageRepository)
}

func (m *MockStatusChangeUoW) AuditLogger() ports.AuditLogger {
	return m.Called().Get(0).(ports.AuditLogger)
}

func (m *MockStatusChangeUoW) DocumentRequirementOracle() ports.DocumentRequirementOracle {
	return m.Called().Get(0).(ports.DocumentRequirementOracle)
}

func (m *MockStatusChangeUoW) PermissionOracle() ports.PermissionOracle {
	return m.Called().Get(0).(ports.PermissionOracle)
}

func (m *MockStatusChangeUoW) NotificationSender() ports.NotificationSender {
	return m.Called().Get(0).(ports.NotificationSender)
}

type MockStatusChangeUoWFactory struct {
	mock.Mock
}

func (m *MockStatusChangeUoWFactory) Create() commands.StatusChangeUoW {
	return m.Called().Get(0).(commands.StatusChangeUoW)
}

type MockPackageUoW struct {
	txMock
}

func (m *MockPackageUoW) PackageRepository() ports.PackageRepository {
	return m.Called().Get(0).(ports.PackageRepository)
}

type MockPackageUoWFactory struct {
	mock.Mock
}

func (m *MockPackageUoWFactory) Create() commands.PackageUoW {
	return m.Called().Get(0).(commands.PackageUoW)
}

type MockOutboxUoW struct {
	txMock
}

func (m *MockOutboxUoW) NotificationOutbox() ports.NotificationOutbox {
	return m.Called().Get(0).(ports.NotificationOutbox)
}

type MockOutboxUoWFactory struct {
	mock.Mock
}

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	return m.Called().Get(0).(commands.OutboxUoW)
}
