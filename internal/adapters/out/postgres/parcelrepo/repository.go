package parcelrepo

import (
	"context"
	"errors"

	"railmail/internal/core/domain/model/kernel"
	"railmail/internal/core/domain/model/parcel"
	"railmail/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormParcelRepository implements ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new parcel to the database.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing parcel to the database.
//
// Attachments and withdrawals race against each other across transactions,
// so both only land on a row that is still pending. An attach matching zero
// rows means another transaction withdrew the parcel or won it for a
// different shipment, and ErrParcelAlreadyAssigned aborts the packing. A
// withdrawal matching zero rows means the parcel departed or was already
// withdrawn, and ErrParcelNotPending is returned.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	query := r.db.WithContext(ctx).Model(&ParcelDTO{})
	switch {
	case dto.ShipmentID != nil:
		query = query.Where(
			"id = ? AND (shipment_id IS NULL OR shipment_id = ?) AND withdrawn_at IS NULL",
			dto.ID, *dto.ShipmentID,
		)
	case dto.WithdrawnAt != nil:
		query = query.Where(
			"id = ? AND shipment_id IS NULL AND withdrawn_at IS NULL",
			dto.ID,
		)
	default:
		query = query.Where("id = ?", dto.ID)
	}

	result := query.Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		switch {
		case dto.ShipmentID != nil:
			return parcel.ErrParcelAlreadyAssigned
		case dto.WithdrawnAt != nil:
			return parcel.ErrParcelNotPending
		default:
			return gorm.ErrRecordNotFound
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a parcel by ID.
func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPending retrieves all parcels awaiting a shipment, oldest first.
func (r *GormParcelRepository) GetAllPending(ctx context.Context) ([]*parcel.Parcel, error) {
	var dtos []ParcelDTO
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&dtos, "withdrawn_at IS NULL AND shipment_id IS NULL").Error
	if err != nil {
		return nil, err
	}

	parcels := make([]*parcel.Parcel, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		parcels = append(parcels, p)
	}

	return parcels, nil
}
