package shipmentrepo_test

import (
	"context"
	"testing"
	"time"

	"railmail/internal/adapters/out/postgres/shipmentrepo"
	"railmail/internal/core/domain/model/kernel"
	"railmail/internal/core/domain/model/shipment"
	"railmail/internal/pkg/errs"

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

// ShipmentRepositoryIntegrationTestSuite provides integration tests for ShipmentRepository
// using PostgreSQL containers to verify database persistence behavior.
type ShipmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *shipmentrepo.GormShipmentRepository
	tracker    *MockAggregateTracker
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&shipmentrepo.ShipmentDTO{}))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shipments").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = shipmentrepo.NewGormShipmentRepository(suite.db, suite.tracker)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_DepartedShipment_Success() {
	ctx := context.Background()

	testShipment := suite.createDepartedShipment(time.Now().UTC(), 3*time.Hour)
	suite.tracker.On("TrackAggregate", testShipment.ID(), testShipment).Once()

	err := suite.repository.Add(ctx, testShipment)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&shipmentrepo.ShipmentDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_ExistingShipment_ReturnsShipmentWithoutManifest() {
	ctx := context.Background()

	departedAt := time.Now().UTC().Truncate(time.Microsecond)
	original := suite.createDepartedShipment(departedAt, 3*time.Hour)
	suite.Require().NoError(original.SetCostPerWeight(5.41))

	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.TrainID(), retrieved.TrainID())
	suite.Equal(original.LineID(), retrieved.LineID())
	suite.Require().NotNil(retrieved.DepartureDate())
	suite.True(retrieved.DepartureDate().Equal(departedAt))
	suite.Require().NotNil(retrieved.ArrivalDate())
	suite.True(retrieved.ArrivalDate().Equal(departedAt.Add(3 * time.Hour)))
	suite.Require().NotNil(retrieved.CostPerWeight())
	suite.InDelta(5.41, *retrieved.CostPerWeight(), 1e-9)
	suite.Empty(retrieved.Parcels())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_NonExistentShipment_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetByTrainID_ExistingShipment_ReturnsShipment() {
	ctx := context.Background()

	original := suite.createDepartedShipment(time.Now().UTC(), 3*time.Hour)
	other := suite.createDepartedShipment(time.Now().UTC(), 3*time.Hour)

	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.tracker.On("TrackAggregate", other.ID(), other).Once()

	suite.Require().NoError(suite.repository.Add(ctx, original))
	suite.Require().NoError(suite.repository.Add(ctx, other))

	retrieved, err := suite.repository.GetByTrainID(ctx, original.TrainID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.TrainID(), retrieved.TrainID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetByTrainID_UnknownTrain_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.GetByTrainID(ctx, kernel.NewUUID())

	suite.Nil(retrieved)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetAllInTransit_ReturnsOnlyShipmentsStillTravelling() {
	ctx := context.Background()

	now := time.Now().UTC()

	inTransit := suite.createDepartedShipment(now.Add(-time.Hour), 3*time.Hour)
	arrived := suite.createDepartedShipment(now.Add(-5*time.Hour), 3*time.Hour)

	suite.tracker.On("TrackAggregate", inTransit.ID(), inTransit).Once()
	suite.tracker.On("TrackAggregate", arrived.ID(), arrived).Once()

	suite.Require().NoError(suite.repository.Add(ctx, inTransit))
	suite.Require().NoError(suite.repository.Add(ctx, arrived))

	travelling, err := suite.repository.GetAllInTransit(ctx, now)
	suite.Require().NoError(err)

	suite.Require().Len(travelling, 1)
	suite.Equal(inTransit.ID(), travelling[0].ID())
	suite.Equal(inTransit.LineID(), travelling[0].LineID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetAllInTransit_NoShipments_ReturnsEmptySlice() {
	ctx := context.Background()

	travelling, err := suite.repository.GetAllInTransit(ctx, time.Now().UTC())
	suite.Require().NoError(err)
	suite.Empty(travelling)

	suite.tracker.AssertExpectations(suite.T())
}

// createDepartedShipment creates a shipment that departed at the given time
// with the given transit duration.
func (suite *ShipmentRepositoryIntegrationTestSuite) createDepartedShipment(
	departedAt time.Time, transit time.Duration,
) *shipment.Shipment {
	testShipment, err := shipment.NewShipment(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Require().NoError(testShipment.Depart(departedAt, transit))
	return testShipment
}

func TestShipmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentRepositoryIntegrationTestSuite))
}
