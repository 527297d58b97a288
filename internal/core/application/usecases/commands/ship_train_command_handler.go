package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"railmail/internal/core/domain/model/kernel"
	"railmail/internal/core/domain/model/parcel"
	"railmail/internal/core/domain/model/shipment"
	"railmail/internal/core/domain/model/train"
	"railmail/internal/core/domain/services"
)

var (
	// ErrLineNotValid is returned when the train is not registered to the requested line.
	ErrLineNotValid = errors.New("line is not registered to this train")
	// ErrLineNotAvailable is returned when the line hosts a shipment still in transit.
	ErrLineNotAvailable = errors.New("line is occupied by a shipment in transit")
	// ErrNoParcelsToLoad is returned when packing selects no parcel for the train.
	ErrNoParcelsToLoad = errors.New("no pending parcels fit this train")
	// ErrFailedToLoadParcels is returned when attaching a selected parcel to the shipment fails.
	ErrFailedToLoadParcels = errors.New("failed to load parcels onto shipment")
)

// ShipTrainCommandHandler orchestrates a train's departure: packing, booking,
// pricing, and dispatch as one atomic operation.
//
// Sequence of guards, each fail-fast and in this order:
//  1. ErrLineNotValid when the train does not serve the requested line
//  2. ErrLineNotAvailable when the line hosts an in-flight shipment
//  3. ErrNoParcelsToLoad when packing selects nothing
//  4. Booking, loading (ErrFailedToLoadParcels), pricing, and dispatch
//
// Everything runs inside one unit of work: any failure rolls the transaction
// back, leaving the train open and every parcel unassigned and unpriced.
type ShipTrainCommandHandler struct {
	uowFactory      ShipUoWFactory
	packer          services.CapacityPacker
	allocator       services.CostAllocator
	transitDuration time.Duration
}

// NewShipTrainCommandHandler creates a handler for train departures.
//
// Parameters:
//   - uowFactory: transactional boundary over train, line, parcel, and shipment stores
//   - packer: parcel selection service
//   - allocator: manifest pricing service
//   - transitDuration: fixed travel time applied to every shipment
func NewShipTrainCommandHandler(
	uowFactory ShipUoWFactory,
	packer services.CapacityPacker,
	allocator services.CostAllocator,
	transitDuration time.Duration,
) ShipTrainCommandHandler {
	return ShipTrainCommandHandler{
		uowFactory:      uowFactory,
		packer:          packer,
		allocator:       allocator,
		transitDuration: transitDuration,
	}
}

// Handle processes the departure command and returns the dispatched shipment.
func (h *ShipTrainCommandHandler) Handle(ctx context.Context, cmd ShipTrainCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	trainEntity, err := uow.TrainRepository().Get(ctx, cmd.TrainID())
	if err != nil {
		return nil, err
	}
	lineEntity, err := uow.LineRepository().Get(ctx, cmd.LineID())
	if err != nil {
		return nil, err
	}

	if !trainEntity.ServesLine(lineEntity.ID()) {
		return nil, fmt.Errorf("%w: train %s, line %s", ErrLineNotValid, trainEntity.Name(), lineEntity.Name())
	}

	now := time.Now().UTC()
	if err = h.ensureLineIsFree(ctx, uow, lineEntity.ID(), now); err != nil {
		return nil, err
	}

	selected, err := h.packParcels(ctx, uow, trainEntity)
	if err != nil {
		return nil, err
	}

	shipmentEntity, err := h.dispatch(trainEntity, lineEntity.ID(), selected, cmd.CostPerWeight(), now)
	if err != nil {
		return nil, err
	}

	if err = h.persist(ctx, uow, trainEntity, shipmentEntity); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return shipmentEntity, nil
}

// ensureLineIsFree fails with ErrLineNotAvailable when any shipment still in
// transit occupies the line.
func (h *ShipTrainCommandHandler) ensureLineIsFree(
	ctx context.Context,
	uow ShipUoW,
	lineID kernel.UUID,
	now time.Time,
) error {
	inTransit, err := uow.ShipmentRepository().GetAllInTransit(ctx, now)
	if err != nil {
		return err
	}

	for _, s := range inTransit {
		if s.LineID().IsEqual(lineID) {
			return fmt.Errorf("%w: line %s until %s", ErrLineNotAvailable, lineID, *s.ArrivalDate())
		}
	}
	return nil
}

// packParcels selects pending parcels for the train's capacity and fails
// with ErrNoParcelsToLoad when the selection is empty.
func (h *ShipTrainCommandHandler) packParcels(
	ctx context.Context,
	uow ShipUoW,
	trainEntity *train.Train,
) ([]*parcel.Parcel, error) {
	pending, err := uow.ParcelRepository().GetAllPending(ctx)
	if err != nil {
		return nil, err
	}

	selected, err := h.packer.Select(trainEntity.Capacity(), pending)
	if err != nil {
		return nil, err
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("%w: train %s", ErrNoParcelsToLoad, trainEntity.Name())
	}

	return selected, nil
}

// dispatch books the train, builds the shipment, prices the manifest, and
// stamps the departure. Pure aggregate manipulation; persistence happens
// afterwards under the same transaction.
func (h *ShipTrainCommandHandler) dispatch(
	trainEntity *train.Train,
	lineID kernel.UUID,
	selected []*parcel.Parcel,
	costPerWeight *float64,
	now time.Time,
) (*shipment.Shipment, error) {
	if err := trainEntity.Book(); err != nil {
		return nil, err
	}

	shipmentEntity, err := shipment.NewShipment(kernel.NewUUID(), trainEntity.ID(), lineID)
	if err != nil {
		return nil, err
	}

	capacity := trainEntity.Capacity()
	for _, p := range selected {
		if err = shipmentEntity.LoadParcel(p, capacity); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFailedToLoadParcels, err)
		}
	}

	rate, prices, err := h.price(trainEntity, shipmentEntity, costPerWeight)
	if err != nil {
		return nil, err
	}
	for i, p := range shipmentEntity.Parcels() {
		if err = p.SetCost(prices[i]); err != nil {
			return nil, err
		}
	}
	if err = shipmentEntity.SetCostPerWeight(rate); err != nil {
		return nil, err
	}

	if err = shipmentEntity.Depart(now, h.transitDuration); err != nil {
		return nil, err
	}

	return shipmentEntity, nil
}

// price computes the base rate and per-parcel prices, honoring an explicit
// rate override when the caller supplied one.
func (h *ShipTrainCommandHandler) price(
	trainEntity *train.Train,
	shipmentEntity *shipment.Shipment,
	costPerWeight *float64,
) (float64, []float64, error) {
	manifest := shipmentEntity.Parcels()

	if costPerWeight != nil {
		return *costPerWeight, h.allocator.AllocateAtRate(*costPerWeight, manifest), nil
	}

	return h.allocator.Allocate(trainEntity.Cost(), manifest)
}

// persist writes the booked train, the shipment, and every loaded parcel
// under the open transaction. The parcel updates carry the optimistic
// still-unassigned check that guards against concurrent packings.
func (h *ShipTrainCommandHandler) persist(
	ctx context.Context,
	uow ShipUoW,
	trainEntity *train.Train,
	shipmentEntity *shipment.Shipment,
) error {
	if err := uow.ShipmentRepository().Add(ctx, shipmentEntity); err != nil {
		return err
	}

	parcelRepo := uow.ParcelRepository()
	for _, p := range shipmentEntity.Parcels() {
		if err := parcelRepo.Update(ctx, p); err != nil {
			return err
		}
	}

	return uow.TrainRepository().Update(ctx, trainEntity)
}
