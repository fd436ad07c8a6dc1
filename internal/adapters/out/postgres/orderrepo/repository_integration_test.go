package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker satisfies the repository's tracking dependency for tests that
// exercise persistence without a surrounding unit of work.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ string, _ any) {}

// OrderRepositoryIntegrationTestSuite verifies the GORM order repository
// against a real PostgreSQL database.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
}

// SetupSuite starts a PostgreSQL container and migrates the orders schema.
func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	suite.repo = orderrepo.NewGormOrderRepository(db, noopTracker{})
}

// SetupTest ensures clean database state before each test.
func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

// TearDownSuite terminates the PostgreSQL container.
func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(orderNumber string, date time.Time) *order.Order {
	customer, err := order.NewCustomer("Amine", "Bouzid", "0550123456", "")
	suite.Require().NoError(err)

	dest, err := kernel.NewDestination("12 - Algiers", "Kouba")
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		orderNumber,
		kernel.HomeDelivery,
		customer,
		dest,
		[]order.Item{{ID: 1, Name: "Imprimante Laser Canon LBP6030B", Price: 41500, Quantity: 1}},
		500,
		date,
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	placed := suite.newOrder("AM260828001", time.Date(2026, time.August, 28, 10, 0, 0, 0, time.UTC))

	suite.Require().NoError(suite.repo.Add(ctx, placed))

	restored, err := suite.repo.Get(ctx, "AM260828001")
	suite.Require().NoError(err)

	suite.True(placed.IsEqual(restored))
	suite.Equal(order.Pending, restored.Status())
	suite.InDelta(42000, restored.GrandTotal(), 0.001)
	suite.Len(restored.Items(), 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repo.Get(context.Background(), "AM990101001")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_MostRecentFirst() {
	ctx := context.Background()
	base := time.Date(2026, time.August, 28, 10, 0, 0, 0, time.UTC)

	suite.Require().NoError(suite.repo.Add(ctx, suite.newOrder("AM260828001", base)))
	suite.Require().NoError(suite.repo.Add(ctx, suite.newOrder("AM260828002", base.Add(time.Hour))))
	suite.Require().NoError(suite.repo.Add(ctx, suite.newOrder("AM260828003", base.Add(2*time.Hour))))

	orders, err := suite.repo.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 3)

	suite.Equal("AM260828003", orders[0].OrderNumber())
	suite.Equal("AM260828002", orders[1].OrderNumber())
	suite.Equal("AM260828001", orders[2].OrderNumber())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus() {
	ctx := context.Background()
	placed := suite.newOrder("AM260828001", time.Date(2026, time.August, 28, 10, 0, 0, 0, time.UTC))
	suite.Require().NoError(suite.repo.Add(ctx, placed))

	suite.Require().NoError(suite.repo.UpdateStatus(ctx, "AM260828001", order.Shipped))

	restored, err := suite.repo.Get(ctx, "AM260828001")
	suite.Require().NoError(err)
	suite.Equal(order.Shipped, restored.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatus_NotFound() {
	err := suite.repo.UpdateStatus(context.Background(), "AM990101001", order.Accepted)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	placed := suite.newOrder("AM260828001", time.Date(2026, time.August, 28, 10, 0, 0, 0, time.UTC))
	suite.Require().NoError(suite.repo.Add(ctx, placed))

	suite.Require().NoError(suite.repo.Delete(ctx, "AM260828001"))

	_, err := suite.repo.Get(ctx, "AM260828001")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_NotFound() {
	err := suite.repo.Delete(context.Background(), "AM990101001")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOrderRepositoryIntegration(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
