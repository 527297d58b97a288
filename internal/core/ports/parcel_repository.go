package ports

import (
	"context"

	"railmail/internal/core/domain/model/kernel"
	"railmail/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	//
	// When the update attaches the parcel to a shipment, the store must
	// refuse it if another transaction attached the parcel first, so two
	// concurrent packings cannot both take the same parcel. Implementations
	// return parcel.ErrParcelAlreadyAssigned in that case.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetAllPending retrieves all parcels awaiting a shipment: not withdrawn
	// and not attached to any shipment, ordered by deposit time, oldest first.
	// This order is the packing order.
	GetAllPending(ctx context.Context) ([]*parcel.Parcel, error)
}
