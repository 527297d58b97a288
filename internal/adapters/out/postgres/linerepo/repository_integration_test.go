package linerepo_test

import (
	"context"
	"testing"
	"time"

	"railmail/internal/adapters/out/postgres/linerepo"
	"railmail/internal/core/domain/model/kernel"
	"railmail/internal/core/domain/model/line"
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

// LineRepositoryIntegrationTestSuite provides integration tests for LineRepository
// using PostgreSQL containers to verify database persistence behavior.
type LineRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *linerepo.GormLineRepository
	tracker    *MockAggregateTracker
}

func (suite *LineRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&linerepo.LineDTO{}))
}

func (suite *LineRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE lines").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = linerepo.NewGormLineRepository(suite.db, suite.tracker)
}

func (suite *LineRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *LineRepositoryIntegrationTestSuite) TestAdd_ValidLine_Success() {
	ctx := context.Background()

	testLine := suite.createTestLine("northern")
	suite.tracker.On("TrackAggregate", testLine.ID(), testLine).Once()

	err := suite.repository.Add(ctx, testLine)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&linerepo.LineDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *LineRepositoryIntegrationTestSuite) TestAdd_DuplicateName_ReturnsError() {
	ctx := context.Background()

	first := suite.createTestLine("coastal")
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	duplicate := suite.createTestLine("coastal")

	err := suite.repository.Add(ctx, duplicate)
	suite.Require().Error(err)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *LineRepositoryIntegrationTestSuite) TestGet_ExistingLine_ReturnsLine() {
	ctx := context.Background()

	original := suite.createTestLine("eastern")
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.Name(), retrieved.Name())
	suite.Equal(original.Description(), retrieved.Description())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *LineRepositoryIntegrationTestSuite) TestGet_NonExistentLine_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *LineRepositoryIntegrationTestSuite) TestUpdate_DescriptionChange_Persisted() {
	ctx := context.Background()

	original := suite.createTestLine("southern")
	suite.tracker.On("TrackAggregate", original.ID(), original).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	original.ChangeDescription("night freight only")
	suite.Require().NoError(suite.repository.Update(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal("night freight only", retrieved.Description())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *LineRepositoryIntegrationTestSuite) TestUpdate_NonExistentLine_ReturnsError() {
	ctx := context.Background()

	missing := suite.createTestLine("phantom")

	err := suite.repository.Update(ctx, missing)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *LineRepositoryIntegrationTestSuite) TestGetByNames_ReturnsOnlyMatches() {
	ctx := context.Background()

	northern := suite.createTestLine("northern")
	coastal := suite.createTestLine("coastal")
	suite.tracker.On("TrackAggregate", northern.ID(), northern).Once()
	suite.tracker.On("TrackAggregate", coastal.ID(), coastal).Once()
	suite.Require().NoError(suite.repository.Add(ctx, northern))
	suite.Require().NoError(suite.repository.Add(ctx, coastal))

	lines, err := suite.repository.GetByNames(ctx, []string{"northern", "ghost"})
	suite.Require().NoError(err)

	suite.Len(lines, 1)
	suite.Equal("northern", lines[0].Name())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *LineRepositoryIntegrationTestSuite) TestGetAll_ReturnsLinesOrderedByName() {
	ctx := context.Background()

	names := []string{"western", "coastal", "northern"}
	for _, name := range names {
		l := suite.createTestLine(name)
		suite.tracker.On("TrackAggregate", l.ID(), l).Once()
		suite.Require().NoError(suite.repository.Add(ctx, l))
	}

	lines, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(lines, 3)
	suite.Equal("coastal", lines[0].Name())
	suite.Equal("northern", lines[1].Name())
	suite.Equal("western", lines[2].Name())

	suite.tracker.AssertExpectations(suite.T())
}

// createTestLine creates a valid line with the given name.
func (suite *LineRepositoryIntegrationTestSuite) createTestLine(name string) *line.Line {
	testLine, err := line.NewLine(kernel.NewUUID(), name, "test line")
	suite.Require().NoError(err)
	return testLine
}

func TestLineRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(LineRepositoryIntegrationTestSuite))
}
