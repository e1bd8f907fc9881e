package saleschannelrepo_test

import (
	"context"
	"testing"
	"time"

	"printshop/internal/adapters/out/postgres/saleschannelrepo"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/saleschannel"
	"printshop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker
// interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// SalesChannelRepositoryIntegrationTestSuite provides integration tests for
// SalesChannelRepository using PostgreSQL containers.
type SalesChannelRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *saleschannelrepo.GormSalesChannelRepository
	tracker    *MockAggregateTracker
}

func (suite *SalesChannelRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&saleschannelrepo.SalesChannelDTO{}))
}

func (suite *SalesChannelRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE sales_channels").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = saleschannelrepo.NewGormSalesChannelRepository(suite.db, suite.tracker)
}

func (suite *SalesChannelRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *SalesChannelRepositoryIntegrationTestSuite) TestAdd_And_Get_RoundTripsFullAggregate() {
	ctx := context.Background()
	now := time.Now().UTC()

	original, err := saleschannel.NewSalesChannel(kernel.NewUUID(), "Etsy", "https://etsy.com/shop/printshop", 6.5, now)
	suite.Require().NoError(err)
	original.SetNotes("fees reviewed quarterly", now)

	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal("Etsy", retrieved.Name())
	suite.Equal("https://etsy.com/shop/printshop", retrieved.WebsiteURL())
	suite.Equal(6.5, retrieved.CommissionRate())
	suite.Equal("fees reviewed quarterly", retrieved.Notes())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *SalesChannelRepositoryIntegrationTestSuite) TestUpdate_PersistsChanges() {
	ctx := context.Background()
	now := time.Now().UTC()

	channel, err := saleschannel.NewSalesChannel(kernel.NewUUID(), "Own Site", "", 0, now)
	suite.Require().NoError(err)
	suite.tracker.On("TrackAggregate", channel.ID(), channel).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, channel))

	channel.SetNotes("no commission, direct sales", now.Add(time.Minute))
	suite.Require().NoError(suite.repository.Update(ctx, channel))

	retrieved, err := suite.repository.Get(ctx, channel.ID())
	suite.Require().NoError(err)
	suite.Equal("no commission, direct sales", retrieved.Notes())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *SalesChannelRepositoryIntegrationTestSuite) TestGet_NonExistentChannel_ReturnsNotFoundError() {
	retrieved, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(retrieved)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func TestSalesChannelRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SalesChannelRepositoryIntegrationTestSuite))
}
