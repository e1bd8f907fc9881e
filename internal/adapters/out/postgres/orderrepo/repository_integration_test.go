package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"printshop/internal/adapters/out/postgres/orderrepo"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
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

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers to verify database persistence
// behavior.
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("ORD-2024-001")
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateNumber_FirstOrderSurvives() {
	ctx := context.Background()

	first := suite.createTestOrder("ORD-2024-002")
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.createTestOrder("ORD-2024-002")

	err := suite.repository.Add(ctx, second)

	suite.Require().ErrorIs(err, errs.ErrConflict)
	suite.assertOrderCount(1)

	survivor, err := suite.repository.GetByNumber(ctx, "ORD-2024-002")
	suite.Require().NoError(err)
	suite.Equal(first.ID(), survivor.ID())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTripsFullAggregate() {
	ctx := context.Background()

	original := suite.createTestOrder("ORD-2024-003")

	channelID := kernel.NewUUID()
	suite.Require().NoError(original.SetSalesChannel(channelID))

	amounts, err := order.NewAmounts(70.50, 5.25, 8.00, 2.50)
	suite.Require().NoError(err)
	original.SetAmounts(amounts)
	original.SetShippingAddress(order.Address{
		Line1:      "12 Factory Lane",
		City:       "Portland",
		PostalCode: "97201",
		Country:    "US",
	})
	original.SetNotes("leave at the back door")

	price, err := kernel.NewMoney(19.99)
	suite.Require().NoError(err)
	item, err := order.NewItem("Articulated Dragon", "DRG-01", 2, price, "purple")
	suite.Require().NoError(err)
	suite.Require().NoError(original.AddItem(item))

	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal("ORD-2024-003", retrieved.Number())
	suite.Equal(original.CustomerID(), retrieved.CustomerID())
	suite.Require().NotNil(retrieved.SalesChannelID())
	suite.Equal(channelID, *retrieved.SalesChannelID())
	suite.Equal(order.Pending, retrieved.Status())
	suite.Equal(order.Unpaid, retrieved.PaymentStatus())
	suite.True(retrieved.Amounts().Total.IsEqual(amounts.Total))
	suite.True(retrieved.Amounts().Tax.IsEqual(amounts.Tax))
	suite.True(retrieved.Amounts().Shipping.IsEqual(amounts.Shipping))
	suite.True(retrieved.Amounts().Discount.IsEqual(amounts.Discount))
	suite.Equal("12 Factory Lane", retrieved.ShippingAddress().Line1)
	suite.Equal("leave at the back door", retrieved.Notes())

	suite.Require().Len(retrieved.Items(), 1)
	suite.Equal("Articulated Dragon", retrieved.Items()[0].ProductName())
	suite.Equal(2, retrieved.Items()[0].Quantity())
	suite.True(retrieved.Items()[0].UnitPrice().IsEqual(price))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusAndTimestampsPersist() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("ORD-2024-004")
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	shippedAt := time.Now().UTC()
	suite.Require().NoError(testOrder.ChangeStatus(order.Shipped, shippedAt, order.DefaultTransitionPolicy()))
	suite.Require().NoError(testOrder.ChangePaymentStatus(order.Paid, shippedAt))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Shipped, retrieved.Status())
	suite.Equal(order.Paid, retrieved.PaymentStatus())
	suite.Require().NotNil(retrieved.ShippedAt())
	suite.WithinDuration(shippedAt, *retrieved.ShippedAt(), time.Second)
	suite.Nil(retrieved.DeliveredAt())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ReplacesLineItems() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("ORD-2024-005")
	price, err := kernel.NewMoney(10.00)
	suite.Require().NoError(err)
	item, err := order.NewItem("Benchy", "", 1, price, "")
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.AddItem(item))

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	extra, err := order.NewItem("Phone Stand", "PS-3", 3, price, "")
	suite.Require().NoError(err)
	suite.Require().NoError(testOrder.AddItem(extra))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().Len(retrieved.Items(), 2)
	suite.Equal("Benchy", retrieved.Items()[0].ProductName())
	suite.Equal("Phone Stand", retrieved.Items()[1].ProductName())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("ORD-2024-006")

	err := suite.repository.Update(ctx, testOrder)

	suite.Require().Error(err)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestExistsByNumber() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("ORD-2024-007")
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	exists, err := suite.repository.ExistsByNumber(ctx, "ORD-2024-007")
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repository.ExistsByNumber(ctx, "ORD-2024-999")
	suite.Require().NoError(err)
	suite.False(exists)

	exists, err = suite.repository.ExistsByNumber(ctx, "")
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByNumber_NonExistent_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.GetByNumber(ctx, "ORD-0000-000")

	suite.Nil(retrieved)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

// createTestOrder creates a basic pending order with the given number.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(number string) *order.Order {
	now := time.Now().UTC()
	testOrder, err := order.NewOrder(kernel.NewUUID(), number, kernel.NewUUID(), now, now)
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
