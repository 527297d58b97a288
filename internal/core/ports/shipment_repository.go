package ports

import (
	"context"
	"time"

	"railmail/internal/core/domain/model/kernel"
	"railmail/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage. The shipment's
	// parcels are persisted separately through the ParcelRepository; only
	// the shipment record itself is written here.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier,
	// without its manifest.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByTrainID retrieves the shipment dispatched with the given train,
	// without its manifest. A train runs at most once.
	GetByTrainID(ctx context.Context, trainID kernel.UUID) (*shipment.Shipment, error)

	// GetAllInTransit retrieves all shipments whose arrival is still in the
	// future at the given instant. Used for line-availability checks; the
	// returned shipments carry no manifest.
	GetAllInTransit(ctx context.Context, now time.Time) ([]*shipment.Shipment, error)
}
