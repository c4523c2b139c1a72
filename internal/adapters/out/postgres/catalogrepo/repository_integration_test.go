package catalogrepo_test

import (
	"context"
	"testing"
	"time"

	"foodtruck/internal/adapters/out/postgres/catalogrepo"
	"foodtruck/internal/core/domain/model/kernel"
	"foodtruck/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MenuCatalogIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	catalog   *catalogrepo.GormMenuCatalog
}

func (suite *MenuCatalogIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&catalogrepo.MenuItemDTO{}))
}

func (suite *MenuCatalogIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE menu_items").Error)
	suite.catalog = catalogrepo.NewGormMenuCatalog(suite.db)
}

func (suite *MenuCatalogIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *MenuCatalogIntegrationTestSuite) TestItem_ReturnsSnapshot() {
	id := kernel.NewUUID()
	suite.Require().NoError(suite.db.Create(&catalogrepo.MenuItemDTO{
		ID:          id.Bytes(),
		Name:        "Carnitas Taco",
		Price:       425,
		Available:   true,
		PrepSeconds: 240,
	}).Error)

	snapshot, err := suite.catalog.Item(context.Background(), id)
	suite.Require().NoError(err)

	suite.True(snapshot.ID.IsEqual(id))
	suite.Equal("Carnitas Taco", snapshot.Name)
	suite.Equal(int64(425), snapshot.Price.Cents())
	suite.True(snapshot.Available)
	suite.Equal(240, snapshot.PrepSeconds)
}

func (suite *MenuCatalogIntegrationTestSuite) TestItem_UnavailableItemStillReturned() {
	id := kernel.NewUUID()
	suite.Require().NoError(suite.db.Create(&catalogrepo.MenuItemDTO{
		ID:        id.Bytes(),
		Name:      "Seasonal Special",
		Price:     800,
		Available: false,
	}).Error)

	snapshot, err := suite.catalog.Item(context.Background(), id)
	suite.Require().NoError(err)
	suite.False(snapshot.Available)
}

func (suite *MenuCatalogIntegrationTestSuite) TestItem_NotFound() {
	_, err := suite.catalog.Item(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestMenuCatalogIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(MenuCatalogIntegrationTestSuite))
}
