package commands_test

import (
	"context"
	"time"

	"railmail/internal/core/application/usecases/commands"
	"railmail/internal/core/domain/model/kernel"
	"railmail/internal/core/domain/model/line"
	"railmail/internal/core/domain/model/parcel"
	"railmail/internal/core/domain/model/shipment"
	"railmail/internal/core/domain/model/train"
	"railmail/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Mock implementations shared by the handler tests in this package.

type MockLineRepository struct {
	mock.Mock
}

func (m *MockLineRepository) Add(ctx context.Context, aggregate *line.Line) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockLineRepository) Update(ctx context.Context, aggregate *line.Line) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockLineRepository) Get(ctx context.Context, id kernel.UUID) (*line.Line, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*line.Line), args.Error(1)
}

func (m *MockLineRepository) GetByNames(ctx context.Context, names []string) ([]*line.Line, error) {
	args := m.Called(ctx, names)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*line.Line), args.Error(1)
}

func (m *MockLineRepository) GetAll(ctx context.Context) ([]*line.Line, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*line.Line), args.Error(1)
}

type MockTrainRepository struct {
	mock.Mock
}

func (m *MockTrainRepository) Add(ctx context.Context, aggregate *train.Train) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTrainRepository) Update(ctx context.Context, aggregate *train.Train) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTrainRepository) Get(ctx context.Context, id kernel.UUID) (*train.Train, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*train.Train), args.Error(1)
}

func (m *MockTrainRepository) GetAllOpen(ctx context.Context) ([]*train.Train, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*train.Train), args.Error(1)
}

type MockParcelRepository struct {
	mock.Mock
}

func (m *MockParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*parcel.Parcel), args.Error(1)
}

func (m *MockParcelRepository) GetAllPending(ctx context.Context) ([]*parcel.Parcel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*parcel.Parcel), args.Error(1)
}

type MockShipmentRepository struct {
	mock.Mock
}

func (m *MockShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetByTrainID(ctx context.Context, trainID kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, trainID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetAllInTransit(ctx context.Context, now time.Time) ([]*shipment.Shipment, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shipment.Shipment), args.Error(1)
}

// MockUoW implements every narrow unit-of-work interface used by the handlers.
type MockUoW struct {
	mock.Mock
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) LineRepository() ports.LineRepository {
	args := m.Called()
	return args.Get(0).(ports.LineRepository)
}

func (m *MockUoW) TrainRepository() ports.TrainRepository {
	args := m.Called()
	return args.Get(0).(ports.TrainRepository)
}

func (m *MockUoW) ParcelRepository() ports.ParcelRepository {
	args := m.Called()
	return args.Get(0).(ports.ParcelRepository)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

type MockLineUoWFactory struct {
	mock.Mock
}

func (m *MockLineUoWFactory) Create() commands.LineUoW {
	args := m.Called()
	return args.Get(0).(commands.LineUoW)
}

type MockTrainUoWFactory struct {
	mock.Mock
}

func (m *MockTrainUoWFactory) Create() commands.TrainUoW {
	args := m.Called()
	return args.Get(0).(commands.TrainUoW)
}

type MockParcelUoWFactory struct {
	mock.Mock
}

func (m *MockParcelUoWFactory) Create() commands.ParcelUoW {
	args := m.Called()
	return args.Get(0).(commands.ParcelUoW)
}

type MockShipUoWFactory struct {
	mock.Mock
}

func (m *MockShipUoWFactory) Create() commands.ShipUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipUoW)
}
