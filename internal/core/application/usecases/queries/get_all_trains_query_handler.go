package queries

import (
	"context"

	"railmail/internal/core/domain/model/kernel"
	"railmail/internal/core/domain/model/train"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllTrainsQueryHandler retrieves all train information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllTrainsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllTrainsQueryHandler creates a handler for train retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAllTrainsQueryHandler(db *gorm.DB) GetAllTrainsQueryHandler {
	return GetAllTrainsQueryHandler{db: db}
}

// Handle executes the query to retrieve all trains.
// Returns a slice of train read models sorted by name, with the stored
// status enum rendered as its string form.
func (h GetAllTrainsQueryHandler) Handle(
	ctx context.Context,
	query GetAllTrainsQuery,
) ([]GetAllTrainsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	trains := make([]GetAllTrainsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			cost,
			weight_capacity,
			volume_capacity,
			status
		FROM trains
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var trainRow GetAllTrainsQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&trainRow.Name,
			&trainRow.Cost,
			&trainRow.WeightCapacity,
			&trainRow.VolumeCapacity,
			&status,
		)
		if err != nil {
			return nil, err
		}

		trainID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		trainRow.ID = trainID
		trainRow.Status = train.Status(status).String()
		trains = append(trains, trainRow)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return trains, nil
}
