package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"foodtruck/internal/adapters/out/postgres/orderrepo"
	"foodtruck/internal/core/domain/model/kernel"
	"foodtruck/internal/core/domain/model/order"
	"foodtruck/internal/pkg/errs"

	"github.com/shopspring/decimal"
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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}, &orderrepo.OrderCounterDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_counters").Error)

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
	testOrder := suite.createTestOrder(1)

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTripsAggregate() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(7)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(restored.IsEqual(testOrder))
	suite.Equal(7, restored.Number())
	suite.Equal("Alex", restored.CustomerName())
	suite.Equal(order.Pending, restored.Status())
	suite.Equal(testOrder.Subtotal().Cents(), restored.Subtotal().Cents())
	suite.Equal(testOrder.Tax().Cents(), restored.Tax().Cents())
	suite.Equal(testOrder.Total().Cents(), restored.Total().Cents())
	suite.False(restored.Paid())
	suite.Require().Len(restored.Items(), 2)
	suite.Equal("Taco", restored.Items()[0].Name())
	suite.Equal(2, restored.Items()[0].Quantity())
	suite.Equal(int64(400), restored.Items()[0].UnitPrice().Cents())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsLifecycleFields() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(2)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.ChangeStatus(order.Preparing, time.Now()))
	suite.Require().NoError(testOrder.ChangeStatus(order.Ready, time.Now()))
	suite.Require().NoError(testOrder.MarkPaid())
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Ready, restored.Status())
	suite.True(restored.Paid())
	suite.Require().NotNil(restored.ReadyAt())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_UnknownOrder() {
	testOrder := suite.createTestOrder(3)

	err := suite.repository.Update(context.Background(), testOrder)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestNextOrderNumber_SequentialWithinDay() {
	ctx := context.Background()
	day := time.Now()

	for want := 1; want <= 5; want++ {
		got, err := suite.repository.NextOrderNumber(ctx, day)
		suite.Require().NoError(err)
		suite.Equal(want, got)
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestNextOrderNumber_ResetsEachDay() {
	ctx := context.Background()
	today := time.Now()
	tomorrow := today.AddDate(0, 0, 1)

	first, err := suite.repository.NextOrderNumber(ctx, today)
	suite.Require().NoError(err)
	suite.Equal(1, first)

	second, err := suite.repository.NextOrderNumber(ctx, today)
	suite.Require().NoError(err)
	suite.Equal(2, second)

	nextDay, err := suite.repository.NextOrderNumber(ctx, tomorrow)
	suite.Require().NoError(err)
	suite.Equal(1, nextDay)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestNextOrderNumber_ConcurrentAllocationsAreUnique() {
	ctx := context.Background()
	day := time.Now()
	const workers = 10

	numbers := make(chan int, workers)
	for range workers {
		go func() {
			n, err := suite.repository.NextOrderNumber(ctx, day)
			suite.NoError(err)
			numbers <- n
		}()
	}

	seen := make(map[int]bool, workers)
	for range workers {
		n := <-numbers
		suite.False(seen[n], "order number %d allocated twice", n)
		seen[n] = true
	}
	suite.Len(seen, workers)
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(number int) *order.Order {
	taco, err := order.NewItem(kernel.NewUUID(), "Taco", 2, kernel.NewMoneyFromCents(400))
	suite.Require().NoError(err)
	burrito, err := order.NewItem(kernel.NewUUID(), "Burrito", 1, kernel.NewMoneyFromCents(650))
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), number, "Alex", "no onions",
		[]order.Item{taco, burrito},
		decimal.NewFromFloat(0.0875), time.Now(),
	)
	suite.Require().NoError(err)
	return testOrder
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
