package packagerepo_test

import (
	"context"
	"testing"
	"time"

	"docflow/internal/adapters/out/postgres/packagerepo"
	"docflow/internal/adapters/out/postgres/pgtest"
	"docflow/internal/core/domain/model/docpackage"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/status"
	"docflow/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type PackageRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *packagerepo.GormPackageRepository
}

func (suite *PackageRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database

	suite.Require().NoError(database.DB.AutoMigrate(&packagerepo.PackageDTO{}))
}

func (suite *PackageRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate("packages"))
	suite.repository = packagerepo.NewGormPackageRepository(suite.database.DB)
}

func (suite *PackageRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *PackageRepositoryIntegrationTestSuite) TestAdd_ValidPackage_Success() {
	ctx := context.Background()
	pkg := suite.createTestPackage()

	err := suite.repository.Add(ctx, pkg)

	suite.Require().NoError(err)

	stored, err := suite.repository.Get(ctx, pkg.ID())
	suite.Require().NoError(err)
	suite.Equal(pkg.ID(), stored.ID())
	suite.Equal(docpackage.Act, stored.Type())
	suite.Equal(status.Draft, stored.Status())
	suite.Equal(pkg.CounterpartyID(), stored.CounterpartyID())
	suite.Equal(pkg.OperatorID(), stored.OperatorID())
	suite.Equal("2024-03", stored.Period())
}

func (suite *PackageRepositoryIntegrationTestSuite) TestAdd_UnconstructedPackage_Fails() {
	err := suite.repository.Add(context.Background(), &docpackage.Package{})

	suite.Require().Error(err)
}

func (suite *PackageRepositoryIntegrationTestSuite) TestGet_NonExistentPackage_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PackageRepositoryIntegrationTestSuite) TestUpdate_PersistsStatus() {
	ctx := context.Background()
	pkg := suite.createTestPackage()
	suite.Require().NoError(suite.repository.Add(ctx, pkg))

	updatedAt := time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC)
	suite.Require().NoError(pkg.ChangeStatus(status.Approval, updatedAt))

	suite.Require().NoError(suite.repository.Update(ctx, pkg))

	stored, err := suite.repository.Get(ctx, pkg.ID())
	suite.Require().NoError(err)
	suite.Equal(status.Approval, stored.Status())
	suite.True(updatedAt.Equal(stored.UpdatedAt()))
}

func (suite *PackageRepositoryIntegrationTestSuite) TestUpdate_NonExistentPackage_ReturnsError() {
	pkg := suite.createTestPackage()

	err := suite.repository.Update(context.Background(), pkg)

	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *PackageRepositoryIntegrationTestSuite) TestGetForUpdate_BlocksConcurrentWriter() {
	ctx := context.Background()
	pkg := suite.createTestPackage()
	suite.Require().NoError(suite.repository.Add(ctx, pkg))

	tx := suite.database.DB.Begin()
	suite.Require().NoError(tx.Error)
	locked := packagerepo.NewGormPackageRepository(tx)
	_, err := locked.GetForUpdate(ctx, pkg.ID())
	suite.Require().NoError(err)

	// A second transaction must not acquire the lock while the first holds it.
	other := suite.database.DB.Begin()
	suite.Require().NoError(other.Error)
	suite.Require().NoError(other.Exec("SET LOCAL lock_timeout = '200ms'").Error)
	_, err = packagerepo.NewGormPackageRepository(other).GetForUpdate(ctx, pkg.ID())
	suite.Require().Error(err)
	other.Rollback()

	suite.Require().NoError(tx.Commit().Error)

	_, err = suite.repository.GetForUpdate(ctx, pkg.ID())
	suite.Require().NoError(err)
}

func (suite *PackageRepositoryIntegrationTestSuite) createTestPackage() *docpackage.Package {
	pkg, err := docpackage.NewPackage(
		kernel.NewUUID(), docpackage.Act, kernel.NewUUID(), kernel.NewUUID(), "2024-03",
		time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)
	return pkg
}

func TestPackageRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PackageRepositoryIntegrationTestSuite))
}
