package queries

import (
	"context"
	"time"

	"railmail/internal/core/domain/model/kernel"
	"railmail/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllParcelsQueryHandler retrieves all parcel information from the database.
// Joins the carrying shipment so the derived status can be computed without a
// second round trip.
type GetAllParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllParcelsQueryHandler creates a handler for parcel retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAllParcelsQueryHandler(db *gorm.DB) GetAllParcelsQueryHandler {
	return GetAllParcelsQueryHandler{db: db}
}

// Handle executes the query to retrieve all parcels.
// Returns a slice of parcel read models in deposit order, each with the
// status derived at the current instant.
func (h GetAllParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetAllParcelsQuery,
) ([]GetAllParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels := make([]GetAllParcelsQueryResponse, 0)
	now := time.Now().UTC()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.label,
			p.weight,
			p.volume,
			p.cost,
			p.withdrawn_at,
			p.shipment_id,
			s.arrival_date
		FROM parcels p
		LEFT JOIN shipments s ON s.id = p.shipment_id
		ORDER BY p.created_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var parcelRow GetAllParcelsQueryResponse
		var id uuid.UUID
		var withdrawnAt, arrivalDate *time.Time
		var shipmentID *uuid.UUID

		err = rows.Scan(
			&id,
			&parcelRow.Label,
			&parcelRow.Weight,
			&parcelRow.Volume,
			&parcelRow.Cost,
			&withdrawnAt,
			&shipmentID,
			&arrivalDate,
		)
		if err != nil {
			return nil, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		parcelRow.ID = parcelID
		parcelRow.Status = parcel.DeriveStatus(withdrawnAt, shipmentID != nil, arrivalDate, now).String()
		parcels = append(parcels, parcelRow)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
