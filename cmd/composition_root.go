package cmd

import (
	"log/slog"

	"docflow/internal/adapters/in/http"
	"docflow/internal/adapters/out/pgnotify"
	"docflow/internal/adapters/out/postgres"
	"docflow/internal/adapters/out/postgres/documentrepo"
	"docflow/internal/adapters/out/postgres/permissionrepo"
	"docflow/internal/core/application/usecases/commands"
	"docflow/internal/core/application/usecases/queries"
	"docflow/internal/core/domain/services"
	"docflow/internal/core/domain/transition"
	"docflow/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config      Config
	gormDB      *gorm.DB
	logger      *slog.Logger
	uowFactory  *postgres.GormUnitOfWorkFactory
	registry    *transition.Registry
	permissions *transition.PermissionTable
	changer     *services.StatusChanger
	calculator  *services.AvailabilityCalculator
}

// NewCompositionRoot registers every package type and builds the domain
// services shared by all handlers. Reads outside a status change use the
// oracles directly on the connection pool.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	registry := transition.NewRegistry()
	if err := transition.RegisterAct(registry); err != nil {
		return nil, err
	}

	permissions, err := transition.NewPermissionTable(registry)
	if err != nil {
		return nil, err
	}

	changer, err := services.NewStatusChanger(registry, logger)
	if err != nil {
		return nil, err
	}

	calculator, err := services.NewAvailabilityCalculator(
		registry,
		documentrepo.NewGormDocumentOracle(gormDB),
		permissionrepo.NewGormPermissionOracle(gormDB),
	)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		config:      config,
		gormDB:      gormDB,
		logger:      logger,
		uowFactory:  postgres.NewGormUnitOfWorkFactory(gormDB),
		registry:    registry,
		permissions: permissions,
		changer:     changer,
		calculator:  calculator,
	}, nil
}

// CreateChangePackageStatusCommandHandler wires the status changer to a
// transactional unit of work.
func (c *CompositionRoot) CreateChangePackageStatusCommandHandler() commands.ChangePackageStatusCommandHandler {
	var f commands.StatusChangeUoWFactory = FuncStatusChangeUoWFactory(func() commands.StatusChangeUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangePackageStatusCommandHandler(f, c.changer)
}

// CreateCreatePackageCommandHandler wires package creation.
func (c *CompositionRoot) CreateCreatePackageCommandHandler() commands.CreatePackageCommandHandler {
	var f commands.PackageUoWFactory = FuncPackageUoWFactory(func() commands.PackageUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePackageCommandHandler(f, c.registry)
}

// CreateDispatchNotificationsCommandHandler wires the outbox to the NOTIFY
// transport.
func (c *CompositionRoot) CreateDispatchNotificationsCommandHandler() (commands.DispatchNotificationsCommandHandler, error) {
	transport, err := pgnotify.NewTransport(c.gormDB, c.config.NotifyChannel)
	if err != nil {
		return commands.DispatchNotificationsCommandHandler{}, err
	}

	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchNotificationsCommandHandler(f, transport, c.logger), nil
}

// CreateGetPackageQueryHandler reads a package and its documents outside of any transaction.
func (c *CompositionRoot) CreateGetPackageQueryHandler() queries.GetPackageQueryHandler {
	return queries.NewGetPackageQueryHandler(c.packageReader(), documentrepo.NewGormDocumentOracle(c.gormDB))
}

// CreateGetAvailableStatusesQueryHandler wires the availability query.
func (c *CompositionRoot) CreateGetAvailableStatusesQueryHandler() queries.GetAvailableStatusesQueryHandler {
	return queries.NewGetAvailableStatusesQueryHandler(c.packageReader(), c.calculator)
}

// CreateGetForwardActionSummaryQueryHandler wires the forward summary query.
func (c *CompositionRoot) CreateGetForwardActionSummaryQueryHandler() queries.GetForwardActionSummaryQueryHandler {
	return queries.NewGetForwardActionSummaryQueryHandler(c.packageReader(), c.calculator)
}

// CreateGetForwardActionsQueryHandler wires the forward actions query.
func (c *CompositionRoot) CreateGetForwardActionsQueryHandler() queries.GetForwardActionsQueryHandler {
	return queries.NewGetForwardActionsQueryHandler(c.packageReader(), c.calculator)
}

// CreateGetStatusesForActorQueryHandler wires the status map query.
func (c *CompositionRoot) CreateGetStatusesForActorQueryHandler() queries.GetStatusesForActorQueryHandler {
	return queries.NewGetStatusesForActorQueryHandler(c.gormDB, c.permissions)
}

// CreateHTTPServer wires every use case into the echo adapter.
func (c *CompositionRoot) CreateHTTPServer(metrics *http.Metrics) *http.Server {
	return http.NewServer(http.Handlers{
		ChangePackageStatus:     c.CreateChangePackageStatusCommandHandler(),
		CreatePackage:           c.CreateCreatePackageCommandHandler(),
		GetPackage:              c.CreateGetPackageQueryHandler(),
		GetAvailableStatuses:    c.CreateGetAvailableStatusesQueryHandler(),
		GetForwardActionSummary: c.CreateGetForwardActionSummaryQueryHandler(),
		GetForwardActions:       c.CreateGetForwardActionsQueryHandler(),
		GetStatusesForActor:     c.CreateGetStatusesForActorQueryHandler(),
	}, metrics, c.logger)
}

// CreateJobManager registers the background jobs on a cron scheduler.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	dispatcher, err := c.CreateDispatchNotificationsCommandHandler()
	if err != nil {
		return nil, err
	}
	return jobs.NewJobManager(dispatcher, c.config.NotificationDispatchSchedule, c.logger), nil
}

// packageReader reads outside any transaction.
func (c *CompositionRoot) packageReader() queries.PackageReader {
	return c.uowFactory.Create().PackageRepository()
}

type FuncPackageUoWFactory func() commands.PackageUoW

// Create calls f.
func (f FuncPackageUoWFactory) Create() commands.PackageUoW {
	return f()
}

type FuncStatusChangeUoWFactory func() commands.StatusChangeUoW

// Create calls f.
func (f FuncStatusChangeUoWFactory) Create() commands.StatusChangeUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

// Create calls f.
func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
