package queries_test

import (
	"context"
	"testing"

	"shiporders/internal/adapters/out/postgres/jobrepo"
	"shiporders/internal/adapters/out/postgres/orderrepo"
	"shiporders/internal/adapters/out/postgres/packrepo"
	"shiporders/internal/adapters/out/postgres/providerrepo"
	"shiporders/internal/core/application/usecases/queries"
	"shiporders/internal/core/domain/model/job"
	"shiporders/internal/core/domain/model/kernel"
	"shiporders/internal/core/domain/model/order"
	"shiporders/internal/core/domain/model/pack"
	"shiporders/internal/core/domain/model/provider"
	"shiporders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker satisfies the repositories' aggregate tracker without
// recording anything; the query tests only need seeded rows.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetJobCostQueryHandlerTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	handler      queries.GetJobCostQueryHandler
	jobRepo      *jobrepo.GormJobRepository
	orderRepo    *orderrepo.GormOrderRepository
	packRepo     *packrepo.GormPackageRepository
	providerRepo *providerrepo.GormProviderRepository
	provider     *provider.ShippingProvider
}

func (suite *GetJobCostQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&jobrepo.JobDTO{},
		&packrepo.PackageDTO{},
		&providerrepo.ProviderDTO{},
		&orderrepo.OrderDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetJobCostQueryHandler(db)
	suite.jobRepo = jobrepo.NewGormJobRepository(db, noopTracker{})
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, noopTracker{})
	suite.packRepo = packrepo.NewGormPackageRepository(db, noopTracker{})
	suite.providerRepo = providerrepo.NewGormProviderRepository(db)

	suite.provider, err = provider.NewShippingProvider(kernel.NewUUID(),
		"Default Carrier", "flat rate", decimal.RequireFromString("2.50"))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.providerRepo.Add(ctx, suite.provider))
}

func (suite *GetJobCostQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetJobCostQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, jobs, packages").Error
	suite.Require().NoError(err)
}

// seedOrder creates a package of the given weight and an order referencing
// it, attached to the given job and optionally to the default provider.
func (suite *GetJobCostQueryHandlerTestSuite) seedOrder(jobID kernel.UUID, weightOz int, withProvider bool) {
	ctx := context.Background()

	parcel, err := pack.NewPackage(kernel.NewUUID(), 10, 6, 4, weightOz, "", false)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.packRepo.AddAll(ctx, []*pack.Package{parcel}))

	var providerID *kernel.UUID
	if withProvider {
		id := suite.provider.ID()
		providerID = &id
	}

	aggregate, err := order.NewOrder(kernel.NewUUID(), &jobID,
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		parcel.ID(), providerID, "", "")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, aggregate))
}

func (suite *GetJobCostQueryHandlerTestSuite) seedJob() kernel.UUID {
	importJob, err := job.NewJob(kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.jobRepo.Add(context.Background(), importJob))
	return importJob.ID()
}

func (suite *GetJobCostQueryHandlerTestSuite) TestHandle_SumsCostedOrders() {
	jobID := suite.seedJob()
	suite.seedOrder(jobID, 88, true)  // 13.75
	suite.seedOrder(jobID, 16, true)  // 2.50
	suite.seedOrder(jobID, 160, true) // 25.00

	query, err := queries.NewGetJobCostQuery(jobID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(3, result.CostedOrders)
	suite.True(result.JobID.IsEqual(jobID))
	suite.True(decimal.RequireFromString("41.25").Equal(result.TotalCost),
		"got %s", result.TotalCost)
}

func (suite *GetJobCostQueryHandlerTestSuite) TestHandle_SkipsOrdersWithoutProvider() {
	jobID := suite.seedJob()
	suite.seedOrder(jobID, 88, true)
	suite.seedOrder(jobID, 160, false) // detached provider, excluded

	query, err := queries.NewGetJobCostQuery(jobID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(1, result.CostedOrders)
	suite.True(decimal.RequireFromString("13.75").Equal(result.TotalCost))
}

func (suite *GetJobCostQueryHandlerTestSuite) TestHandle_JobWithoutCostedOrdersTotalsZero() {
	jobID := suite.seedJob()
	suite.seedOrder(jobID, 88, false)

	query, err := queries.NewGetJobCostQuery(jobID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Zero(result.CostedOrders)
	suite.True(decimal.Zero.Equal(result.TotalCost))
}

func (suite *GetJobCostQueryHandlerTestSuite) TestHandle_UnknownJobReturnsNotFound() {
	query, err := queries.NewGetJobCostQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetJobCostQueryHandlerTestSuite) TestHandle_InvalidQueryReturnsError() {
	invalidQuery := queries.GetJobCostQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetJobCostQuery constructor")
}

func TestGetJobCostQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetJobCostQueryHandlerTestSuite))
}
