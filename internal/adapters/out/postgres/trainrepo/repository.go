package trainrepo

import (
	"context"
	"errors"

	"railmail/internal/core/domain/model/kernel"
	"railmail/internal/core/domain/model/train"
	"railmail/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTrainRepository implements TrainRepository using GORM.
type GormTrainRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTrainRepository creates a new GORM train repository.
func NewGormTrainRepository(db *gorm.DB, tracker aggregateTracker) *GormTrainRepository {
	return &GormTrainRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new train and its line registrations to the database.
func (r *GormTrainRepository) Add(ctx context.Context, aggregate *train.Train) error {
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

// Update saves an existing train's scalar state to the database.
// Line registrations are immutable after the bid and are deliberately
// not rewritten here.
func (r *GormTrainRepository) Update(ctx context.Context, aggregate *train.Train) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&TrainDTO{}).
		Omit("Lines").
		Where("id = ?", dto.ID).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a train by ID with its line registrations.
func (r *GormTrainRepository) Get(ctx context.Context, id kernel.UUID) (*train.Train, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TrainDTO
	err := r.db.WithContext(ctx).Preload("Lines").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("train", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllOpen retrieves all trains still available for booking.
func (r *GormTrainRepository) GetAllOpen(ctx context.Context) ([]*train.Train, error) {
	var dtos []TrainDTO
	err := r.db.WithContext(ctx).Preload("Lines").Find(&dtos, "status = ?", int(train.Open)).Error
	if err != nil {
		return nil, err
	}

	trains := make([]*train.Train, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		trains = append(trains, t)
	}

	return trains, nil
}
