// Package parcelrepo provides data transfer objects and mapping functions for parcel persistence.
// Parcel status is never stored; it is derived from the withdrawn_at and
// shipment_id columns whenever the parcel is read.
package parcelrepo

import (
	"time"

	"railmail/internal/core/domain/model/kernel"
	"railmail/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
// The index on created_at backs the first-come-first-served packing order;
// the index on shipment_id backs manifest lookups.
type ParcelDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Label       string
	Description string
	Weight      float64
	Volume      float64
	Cost        *float64
	CreatedAt   time.Time `gorm:"index"`
	WithdrawnAt *time.Time
	ShipmentID  *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for parcel entities.
// Overrides GORM's default naming convention to use "parcels".
func (ParcelDTO) TableName() string {
	return "parcels"
}

// fromDomain converts a parcel domain aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	var shipmentID *uuid.UUID
	if id := aggregate.ShipmentID(); id != nil {
		raw := id.Bytes()
		shipmentID = &raw
	}

	return ParcelDTO{
		ID:          aggregate.ID().Bytes(),
		Label:       aggregate.Label(),
		Description: aggregate.Description(),
		Weight:      aggregate.Weight(),
		Volume:      aggregate.Volume(),
		Cost:        aggregate.Cost(),
		CreatedAt:   aggregate.CreatedAt(),
		WithdrawnAt: aggregate.WithdrawnAt(),
		ShipmentID:  shipmentID,
	}
}

// toDomain converts a database DTO to a parcel domain aggregate using RestoreParcel.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var shipmentID *kernel.UUID
	if dto.ShipmentID != nil {
		sID, shipmentErr := kernel.UUIDFromBytes((*dto.ShipmentID)[:])
		if shipmentErr != nil {
			return nil, shipmentErr
		}

		shipmentID = &sID
	}

	return parcel.RestoreParcel(
		id,
		dto.Label,
		dto.Description,
		dto.Weight,
		dto.Volume,
		dto.Cost,
		dto.CreatedAt,
		dto.WithdrawnAt,
		shipmentID,
	)
}
