package ports

import (
	"context"

	"railmail/internal/core/domain/model/kernel"
	"railmail/internal/core/domain/model/train"
)

// TrainRepository defines the persistence contract for train aggregates.
// Trains are stored with their full line registration so the aggregate can
// always answer which lines it may service.
type TrainRepository interface {
	// Add persists a new train aggregate to storage,
	// including its line registrations.
	Add(ctx context.Context, aggregate *train.Train) error

	// Update persists changes to an existing train aggregate.
	// Line registrations are immutable after the bid; only scalar state
	// such as the status changes.
	Update(ctx context.Context, aggregate *train.Train) error

	// Get retrieves a train aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*train.Train, error)

	// GetAllOpen retrieves all trains still available for booking,
	// the candidate fleet for packing and planning.
	GetAllOpen(ctx context.Context) ([]*train.Train, error)
}
