package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"shiporders/internal/adapters/out/postgres/orderrepo"
	"shiporders/internal/core/domain/model/kernel"
	"shiporders/internal/core/domain/model/order"
	"shiporders/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders").Error
	suite.Require().NoError(err)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(jobID, providerID *kernel.UUID) *order.Order {
	aggregate, err := order.NewOrder(kernel.NewUUID(), jobID,
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		kernel.NewUUID(), providerID, "555-0100", "555-0199")
	suite.Require().NoError(err)
	return aggregate
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_And_Get_Roundtrip() {
	ctx := context.Background()
	jobID := kernel.NewUUID()
	providerID := kernel.NewUUID()
	aggregate := suite.newOrder(&jobID, &providerID)

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	stored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.True(stored.IsEqual(aggregate))
	suite.Require().NotNil(stored.JobID())
	suite.True(stored.JobID().IsEqual(jobID))
	suite.Require().NotNil(stored.ProviderID())
	suite.True(stored.ProviderID().IsEqual(providerID))
	suite.True(stored.SenderID().IsEqual(aggregate.SenderID()))
	suite.True(stored.PackageID().IsEqual(aggregate.PackageID()))
	suite.Equal("555-0100", stored.PhoneNumber())
	suite.Equal("555-0199", stored.PhoneNumber2())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_NilOptionalReferences() {
	ctx := context.Background()
	aggregate := suite.newOrder(nil, nil)

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	stored, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.Nil(stored.JobID())
	suite.Nil(stored.ProviderID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAll_InsertsBatch() {
	ctx := context.Background()
	jobID := kernel.NewUUID()

	batch := []*order.Order{
		suite.newOrder(&jobID, nil),
		suite.newOrder(&jobID, nil),
		suite.newOrder(&jobID, nil),
	}

	suite.Require().NoError(suite.repository.AddAll(ctx, batch))
	suite.assertOrderCount(3)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAll_EmptyBatchIsNoop() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.AddAll(ctx, nil))
	suite.assertOrderCount(0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByJob_FiltersAndOrders() {
	ctx := context.Background()
	jobID := kernel.NewUUID()
	otherJobID := kernel.NewUUID()

	mine := []*order.Order{
		suite.newOrder(&jobID, nil),
		suite.newOrder(&jobID, nil),
	}
	suite.Require().NoError(suite.repository.AddAll(ctx, mine))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder(&otherJobID, nil)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder(nil, nil)))

	stored, err := suite.repository.GetByJob(ctx, jobID)
	suite.Require().NoError(err)

	suite.Require().Len(stored, 2)
	for _, o := range stored {
		suite.Require().NotNil(o.JobID())
		suite.True(o.JobID().IsEqual(jobID))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByJob_PreservesBatchInsertOrder() {
	ctx := context.Background()
	jobID := kernel.NewUUID()

	batch := make([]*order.Order, 0, 8)
	for i := 0; i < 8; i++ {
		batch = append(batch, suite.newOrder(&jobID, nil))
	}
	suite.Require().NoError(suite.repository.AddAll(ctx, batch))

	stored, err := suite.repository.GetByJob(ctx, jobID)
	suite.Require().NoError(err)

	// All rows of one bulk insert share a creation timestamp, so the read
	// must come back in the order the batch was written, not by id.
	suite.Require().Len(stored, len(batch))
	for i, o := range stored {
		suite.True(o.ID().IsEqual(batch[i].ID()),
			"position %d: got %s, want %s", i, o.ID(), batch[i].ID())
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAll_TracksEveryAggregate() {
	ctx := context.Background()
	jobID := kernel.NewUUID()

	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything).Times(2)
	repository := orderrepo.NewGormOrderRepository(suite.db, tracker)

	batch := []*order.Order{
		suite.newOrder(&jobID, nil),
		suite.newOrder(&jobID, nil),
	}
	suite.Require().NoError(repository.AddAll(ctx, batch))

	tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
