// Package trainrepo provides data transfer objects and mapping functions for train persistence.
// A train row carries the scalar aggregate state; the lines it services live
// in the train_lines association table owned by the aggregate root.
package trainrepo

import (
	"railmail/internal/core/domain/model/kernel"
	"railmail/internal/core/domain/model/train"

	"github.com/google/uuid"
)

// TrainDTO represents the database structure for persisting train aggregates.
type TrainDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string
	Cost           float64
	WeightCapacity float64
	VolumeCapacity float64
	Status         int            `gorm:"index"`
	Lines          []TrainLineDTO `gorm:"foreignKey:TrainID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for train entities.
// Overrides GORM's default naming convention to use "trains".
func (TrainDTO) TableName() string {
	return "trains"
}

// TrainLineDTO is the association record registering a train to a line.
type TrainLineDTO struct {
	TrainID uuid.UUID `gorm:"type:uuid;primaryKey"`
	LineID  uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

// TableName specifies the database table name for the train-line association.
func (TrainLineDTO) TableName() string {
	return "train_lines"
}

// fromDomain converts a train domain aggregate to its database representation,
// including the line association rows.
func fromDomain(aggregate *train.Train) TrainDTO {
	lineIDs := aggregate.LineIDs()
	lines := make([]TrainLineDTO, len(lineIDs))
	for i, lineID := range lineIDs {
		lines[i] = TrainLineDTO{
			TrainID: aggregate.ID().Bytes(),
			LineID:  lineID.Bytes(),
		}
	}

	return TrainDTO{
		ID:             aggregate.ID().Bytes(),
		Name:           aggregate.Name(),
		Cost:           aggregate.Cost(),
		WeightCapacity: aggregate.WeightCapacity(),
		VolumeCapacity: aggregate.VolumeCapacity(),
		Status:         int(aggregate.Status()),
		Lines:          lines,
	}
}

// toDomain converts a database DTO to a train domain aggregate.
// Reconstructs the complete aggregate including its line registrations
// using RestoreTrain.
func toDomain(dto TrainDTO) (*train.Train, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lineIDs := make([]kernel.UUID, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		lineID, lineErr := kernel.UUIDFromBytes(l.LineID[:])
		if lineErr != nil {
			return nil, lineErr
		}
		lineIDs = append(lineIDs, lineID)
	}

	return train.RestoreTrain(
		id,
		dto.Name,
		dto.Cost,
		dto.WeightCapacity,
		dto.VolumeCapacity,
		lineIDs,
		train.Status(dto.Status),
	)
}
