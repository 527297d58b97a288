package linerepo

import (
	"context"
	"errors"

	"railmail/internal/core/domain/model/kernel"
	"railmail/internal/core/domain/model/line"
	"railmail/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLineRepository implements LineRepository using GORM.
type GormLineRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLineRepository creates a new GORM line repository.
func NewGormLineRepository(db *gorm.DB, tracker aggregateTracker) *GormLineRepository {
	return &GormLineRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new line to the database.
// The unique index on name rejects duplicates.
func (r *GormLineRepository) Add(ctx context.Context, aggregate *line.Line) error {
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

// Update saves an existing line to the database.
func (r *GormLineRepository) Update(ctx context.Context, aggregate *line.Line) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&LineDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a line by ID.
func (r *GormLineRepository) Get(ctx context.Context, id kernel.UUID) (*line.Line, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LineDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("line", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByNames retrieves the lines matching the given unique names.
// Missing names are simply absent from the result.
func (r *GormLineRepository) GetByNames(ctx context.Context, names []string) ([]*line.Line, error) {
	var dtos []LineDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos, "name IN ?", names).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAll retrieves every line ordered by name.
func (r *GormLineRepository) GetAll(ctx context.Context) ([]*line.Line, error) {
	var dtos []LineDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []LineDTO) ([]*line.Line, error) {
	lines := make([]*line.Line, 0, len(dtos))
	for _, dto := range dtos {
		l, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, nil
}
