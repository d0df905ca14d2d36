package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"payroll/internal/adapters/out/postgres/orderrepo"
	"payroll/internal/core/domain/model/order"
	"payroll/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite provides integration tests for
// GormOrderRepository using PostgreSQL containers to verify database
// persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders RESTART IDENTITY").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(description string) *order.Order {
	o, err := order.NewOrder(description)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSave_NewOrder_AssignsIDAndStoresStatusName() {
	ctx := context.Background()

	saved, err := suite.repository.Save(ctx, suite.newOrder("MacBook Pro"))
	suite.Require().NoError(err)
	suite.Positive(saved.ID())

	var dto orderrepo.OrderDTO
	suite.Require().NoError(suite.db.First(&dto, "id = ?", saved.ID()).Error)
	suite.Equal("IN_PROGRESS", dto.Status)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSave_StatusTransitionPersists() {
	ctx := context.Background()

	saved, err := suite.repository.Save(ctx, suite.newOrder("MacBook Pro"))
	suite.Require().NoError(err)

	suite.Require().NoError(saved.Complete())
	_, err = suite.repository.Save(ctx, saved)
	suite.Require().NoError(err)

	found, err := suite.repository.FindByID(ctx, saved.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Completed, found.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFindAll_ReturnsInsertionOrder() {
	ctx := context.Background()

	_, err := suite.repository.Save(ctx, suite.newOrder("MacBook Pro"))
	suite.Require().NoError(err)
	_, err = suite.repository.Save(ctx, suite.newOrder("iPhone"))
	suite.Require().NoError(err)

	all, err := suite.repository.FindAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
	suite.Equal("MacBook Pro", all[0].Description())
	suite.Equal("iPhone", all[1].Description())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFindByID_Missing_ReturnsObjectNotFound() {
	_, err := suite.repository.FindByID(context.Background(), 9999)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDeleteByID_IsIdempotent() {
	ctx := context.Background()

	saved, err := suite.repository.Save(ctx, suite.newOrder("MacBook Pro"))
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.DeleteByID(ctx, saved.ID()))
	suite.Require().NoError(suite.repository.DeleteByID(ctx, saved.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestFindByID_RejectsCorruptStatus() {
	ctx := context.Background()

	suite.Require().NoError(suite.db.Exec(
		"INSERT INTO orders (description, status) VALUES (?, ?)", "MacBook Pro", "DONE",
	).Error)

	var dto orderrepo.OrderDTO
	suite.Require().NoError(suite.db.First(&dto).Error)

	_, err := suite.repository.FindByID(ctx, dto.ID)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrValueIsInvalid)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
