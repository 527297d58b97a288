package commands_test

import (
	"testing"
	"time"

	"railmail/internal/core/application/usecases/commands"
	"railmail/internal/core/domain/model/kernel"
	"railmail/internal/core/domain/model/parcel"
	"railmail/internal/core/domain/model/shipment"
	"railmail/internal/core/domain/model/train"
	"railmail/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// shipFixture wires a fully mocked unit of work for departure tests.
type shipFixture struct {
	trainRepo    *MockTrainRepository
	lineRepo     *MockLineRepository
	parcelRepo   *MockParcelRepository
	shipmentRepo *MockShipmentRepository
	uow          *MockUoW
	factory      *MockShipUoWFactory
	handler      commands.ShipTrainCommandHandler
}

func newShipFixture(t *testing.T, margin float64, transit time.Duration) *shipFixture {
	t.Helper()

	f := &shipFixture{
		trainRepo:    new(MockTrainRepository),
		lineRepo:     new(MockLineRepository),
		parcelRepo:   new(MockParcelRepository),
		shipmentRepo: new(MockShipmentRepository),
		uow:          new(MockUoW),
		factory:      new(MockShipUoWFactory),
	}

	f.uow.On("TrainRepository").Return(f.trainRepo)
	f.uow.On("LineRepository").Return(f.lineRepo)
	f.uow.On("ParcelRepository").Return(f.parcelRepo)
	f.uow.On("ShipmentRepository").Return(f.shipmentRepo)
	f.factory.On("Create").Return(f.uow).Once()

	allocator, err := services.NewCostAllocator(margin)
	require.NoError(t, err)

	f.handler = commands.NewShipTrainCommandHandler(
		f.factory,
		services.NewCapacityPacker(),
		allocator,
		transit,
	)
	return f
}

func (f *shipFixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.factory.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.trainRepo.AssertExpectations(t)
	f.lineRepo.AssertExpectations(t)
	f.parcelRepo.AssertExpectations(t)
	f.shipmentRepo.AssertExpectations(t)
}

func pendingPool(t *testing.T, dims ...[2]float64) []*parcel.Parcel {
	t.Helper()
	base := time.Now().UTC().Add(-time.Hour)
	pool := make([]*parcel.Parcel, len(dims))
	for i, d := range dims {
		p, err := parcel.NewParcel(
			kernel.NewUUID(), "parcel", "", d[0], d[1],
			base.Add(time.Duration(i)*time.Minute),
		)
		require.NoError(t, err)
		pool[i] = p
	}
	return pool
}

func TestShipTrainCommandHandler_Handle_Success(t *testing.T) {
	// Arrange: Thomas (cost 200, capacity 80/300) departs on a free line with
	// five pending parcels, four of which fit.
	ctx := t.Context()
	lineEntity := restoredLine(t, "Northern")
	trainEntity, err := train.NewTrain(
		kernel.NewUUID(), "Thomas", 200, 80, 300,
		[]kernel.UUID{lineEntity.ID()},
	)
	require.NoError(t, err)
	pool := pendingPool(t,
		[2]float64{2, 30}, [2]float64{20, 100}, [2]float64{5, 60},
		[2]float64{50, 120}, [2]float64{10, 80},
	)

	f := newShipFixture(t, 0, 12*time.Hour)
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.trainRepo.On("Get", ctx, trainEntity.ID()).Return(trainEntity, nil).Once()
	f.lineRepo.On("Get", ctx, lineEntity.ID()).Return(lineEntity, nil).Once()
	f.shipmentRepo.On("GetAllInTransit", ctx, mock.AnythingOfType("time.Time")).
		Return([]*shipment.Shipment{}, nil).Once()
	f.parcelRepo.On("GetAllPending", ctx).Return(pool, nil).Once()
	f.shipmentRepo.On("Add", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once()
	f.parcelRepo.On("Update", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Times(4)
	f.trainRepo.On("Update", ctx, trainEntity).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewShipTrainCommand(trainEntity.ID(), lineEntity.ID(), nil)
	require.NoError(t, err)

	// Act
	shipped, err := f.handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, shipped)
	assert.Equal(t, train.Booked, trainEntity.Status())
	assert.True(t, shipped.TrainID().IsEqual(trainEntity.ID()))
	assert.True(t, shipped.LineID().IsEqual(lineEntity.ID()))

	// The pool's fourth parcel (50,120) breaks the first sweep on weight;
	// the fifth (10,80) is still loaded.
	manifest := shipped.Parcels()
	require.Len(t, manifest, 4)
	assert.InDelta(t, 37, shipped.Weight(), 1e-9)
	assert.InDelta(t, 270, shipped.Volume(), 1e-9)

	// Revenue equals the charter cost with zero margin.
	assert.InDelta(t, 200, shipped.Revenue(), 1e-9)
	require.NotNil(t, manifest[0].Cost())
	assert.InDelta(t, 10.81, *manifest[0].Cost(), 1e-9)

	require.NotNil(t, shipped.DepartureDate())
	require.NotNil(t, shipped.ArrivalDate())
	assert.Equal(t, shipped.DepartureDate().Add(12*time.Hour), *shipped.ArrivalDate())
	require.NotNil(t, shipped.CostPerWeight())
	assert.InDelta(t, 200.0/37.0, *shipped.CostPerWeight(), 1e-9)

	for _, p := range manifest {
		require.NotNil(t, p.ShipmentID())
		assert.True(t, p.ShipmentID().IsEqual(shipped.ID()))
	}

	f.assertExpectations(t)
}

func TestShipTrainCommandHandler_Handle_RateOverride(t *testing.T) {
	// Arrange
	ctx := t.Context()
	lineEntity := restoredLine(t, "Northern")
	trainEntity, err := train.NewTrain(
		kernel.NewUUID(), "Thomas", 200, 80, 300,
		[]kernel.UUID{lineEntity.ID()},
	)
	require.NoError(t, err)
	pool := pendingPool(t, [2]float64{10, 50})

	f := newShipFixture(t, 0, 12*time.Hour)
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.trainRepo.On("Get", ctx, trainEntity.ID()).Return(trainEntity, nil).Once()
	f.lineRepo.On("Get", ctx, lineEntity.ID()).Return(lineEntity, nil).Once()
	f.shipmentRepo.On("GetAllInTransit", ctx, mock.AnythingOfType("time.Time")).
		Return([]*shipment.Shipment{}, nil).Once()
	f.parcelRepo.On("GetAllPending", ctx).Return(pool, nil).Once()
	f.shipmentRepo.On("Add", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once()
	f.parcelRepo.On("Update", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once()
	f.trainRepo.On("Update", ctx, trainEntity).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	rate := 3.0
	cmd, err := commands.NewShipTrainCommand(trainEntity.ID(), lineEntity.ID(), &rate)
	require.NoError(t, err)

	// Act
	shipped, err := f.handler.Handle(ctx, cmd)

	// Assert: price derives from the override, not the charter cost.
	require.NoError(t, err)
	manifest := shipped.Parcels()
	require.Len(t, manifest, 1)
	require.NotNil(t, manifest[0].Cost())
	assert.InDelta(t, 30, *manifest[0].Cost(), 1e-9)
	require.NotNil(t, shipped.CostPerWeight())
	assert.InDelta(t, 3, *shipped.CostPerWeight(), 1e-9)

	f.assertExpectations(t)
}

func TestShipTrainCommandHandler_Handle_LineNotValid(t *testing.T) {
	// Arrange: the train is not registered to the requested line.
	ctx := t.Context()
	requestedLine := restoredLine(t, "Eastern")
	trainEntity, err := train.NewTrain(
		kernel.NewUUID(), "Thomas", 200, 80, 300,
		[]kernel.UUID{kernel.NewUUID()},
	)
	require.NoError(t, err)

	f := newShipFixture(t, 0, 12*time.Hour)
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.trainRepo.On("Get", ctx, trainEntity.ID()).Return(trainEntity, nil).Once()
	f.lineRepo.On("Get", ctx, requestedLine.ID()).Return(requestedLine, nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewShipTrainCommand(trainEntity.ID(), requestedLine.ID(), nil)
	require.NoError(t, err)

	// Act
	shipped, err := f.handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, commands.ErrLineNotValid)
	assert.Nil(t, shipped)
	assert.Equal(t, train.Open, trainEntity.Status())
	f.assertExpectations(t)
}

func TestShipTrainCommandHandler_Handle_LineNotAvailable(t *testing.T) {
	// Arrange: another shipment is still in transit on the requested line.
	ctx := t.Context()
	lineEntity := restoredLine(t, "Northern")
	trainEntity, err := train.NewTrain(
		kernel.NewUUID(), "Thomas", 200, 80, 300,
		[]kernel.UUID{lineEntity.ID()},
	)
	require.NoError(t, err)

	inFlight, err := shipment.NewShipment(kernel.NewUUID(), kernel.NewUUID(), lineEntity.ID())
	require.NoError(t, err)
	require.NoError(t, inFlight.Depart(time.Now().UTC(), 12*time.Hour))

	f := newShipFixture(t, 0, 12*time.Hour)
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.trainRepo.On("Get", ctx, trainEntity.ID()).Return(trainEntity, nil).Once()
	f.lineRepo.On("Get", ctx, lineEntity.ID()).Return(lineEntity, nil).Once()
	f.shipmentRepo.On("GetAllInTransit", ctx, mock.AnythingOfType("time.Time")).
		Return([]*shipment.Shipment{inFlight}, nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewShipTrainCommand(trainEntity.ID(), lineEntity.ID(), nil)
	require.NoError(t, err)

	// Act
	shipped, err := f.handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, commands.ErrLineNotAvailable)
	assert.Nil(t, shipped)
	assert.Equal(t, train.Open, trainEntity.Status())
	f.assertExpectations(t)
}

func TestShipTrainCommandHandler_Handle_NoParcelsToLoad(t *testing.T) {
	// Arrange: Percy's 20 volume units fit none of the bulky pending parcels.
	ctx := t.Context()
	lineEntity := restoredLine(t, "Northern")
	trainEntity, err := train.NewTrain(
		kernel.NewUUID(), "Percy", 150, 50, 20,
		[]kernel.UUID{lineEntity.ID()},
	)
	require.NoError(t, err)
	pool := pendingPool(t, [2]float64{10, 30}, [2]float64{5, 25})

	f := newShipFixture(t, 0, 12*time.Hour)
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.trainRepo.On("Get", ctx, trainEntity.ID()).Return(trainEntity, nil).Once()
	f.lineRepo.On("Get", ctx, lineEntity.ID()).Return(lineEntity, nil).Once()
	f.shipmentRepo.On("GetAllInTransit", ctx, mock.AnythingOfType("time.Time")).
		Return([]*shipment.Shipment{}, nil).Once()
	f.parcelRepo.On("GetAllPending", ctx).Return(pool, nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewShipTrainCommand(trainEntity.ID(), lineEntity.ID(), nil)
	require.NoError(t, err)

	// Act
	shipped, err := f.handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, commands.ErrNoParcelsToLoad)
	assert.Nil(t, shipped)
	assert.Equal(t, train.Open, trainEntity.Status())
	for _, p := range pool {
		assert.True(t, p.IsPending())
	}
	f.assertExpectations(t)
}

func TestShipTrainCommandHandler_Handle_BookedTrainCannotShipAgain(t *testing.T) {
	// Arrange
	ctx := t.Context()
	lineEntity := restoredLine(t, "Northern")
	trainEntity, err := train.RestoreTrain(
		kernel.NewUUID(), "Thomas", 200, 80, 300,
		[]kernel.UUID{lineEntity.ID()}, train.Booked,
	)
	require.NoError(t, err)
	pool := pendingPool(t, [2]float64{2, 30})

	f := newShipFixture(t, 0, 12*time.Hour)
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.trainRepo.On("Get", ctx, trainEntity.ID()).Return(trainEntity, nil).Once()
	f.lineRepo.On("Get", ctx, lineEntity.ID()).Return(lineEntity, nil).Once()
	f.shipmentRepo.On("GetAllInTransit", ctx, mock.AnythingOfType("time.Time")).
		Return([]*shipment.Shipment{}, nil).Once()
	f.parcelRepo.On("GetAllPending", ctx).Return(pool, nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	cmd, err := commands.NewShipTrainCommand(trainEntity.ID(), lineEntity.ID(), nil)
	require.NoError(t, err)

	// Act
	shipped, err := f.handler.Handle(ctx, cmd)

	// Assert: the booking guard fires before any parcel is touched.
	require.Error(t, err)
	assert.Nil(t, shipped)
	assert.True(t, pool[0].IsPending())
	f.assertExpectations(t)
}

func TestShipTrainCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.ShipTrainCommand

	f := newShipFixture(t, 0, 12*time.Hour)
	f.factory.ExpectedCalls = nil // handler must not reach the factory

	// Act
	shipped, err := f.handler.Handle(ctx, invalidCmd)

	// Assert
	require.ErrorIs(t, err, commands.ErrShipTrainCommandIsNotConstructed)
	assert.Nil(t, shipped)
	f.factory.AssertExpectations(t)
}
