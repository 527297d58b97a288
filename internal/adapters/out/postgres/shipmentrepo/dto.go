// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. A shipment row carries the run itself; its
// manifest lives in the parcels table via the shipment_id column and is not
// restored here.
package shipmentrepo

import (
	"time"

	"railmail/internal/core/domain/model/kernel"
	"railmail/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment aggregates.
// The unique index on train_id enforces at-most-one run per train; the index
// on arrival_date backs the in-transit scan.
type ShipmentDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	TrainID       uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	LineID        uuid.UUID `gorm:"type:uuid;index"`
	DepartureDate *time.Time
	ArrivalDate   *time.Time `gorm:"index"`
	CostPerWeight *float64
}

// TableName specifies the database table name for shipment entities.
// Overrides GORM's default naming convention to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment domain aggregate to its database representation.
// The manifest is owned by the parcel rows and is not written here.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:            aggregate.ID().Bytes(),
		TrainID:       aggregate.TrainID().Bytes(),
		LineID:        aggregate.LineID().Bytes(),
		DepartureDate: aggregate.DepartureDate(),
		ArrivalDate:   aggregate.ArrivalDate(),
		CostPerWeight: aggregate.CostPerWeight(),
	}
}

// toDomain converts a database DTO to a shipment domain aggregate
// without its manifest.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	trainID, err := kernel.UUIDFromBytes(dto.TrainID[:])
	if err != nil {
		return nil, err
	}

	lineID, err := kernel.UUIDFromBytes(dto.LineID[:])
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		id,
		trainID,
		lineID,
		nil,
		dto.DepartureDate,
		dto.ArrivalDate,
		dto.CostPerWeight,
	)
}
