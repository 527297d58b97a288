// Package linerepo provides data transfer objects and mapping functions for line persistence.
// This package implements the repository pattern for the line domain aggregate, handling
// the conversion between domain entities and database representations.
package linerepo

import (
	"railmail/internal/core/domain/model/kernel"
	"railmail/internal/core/domain/model/line"

	"github.com/google/uuid"
)

// LineDTO represents the database structure for persisting line aggregates.
// The unique index on name backs the line-name uniqueness rule.
type LineDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"uniqueIndex"`
	Description string
}

// TableName specifies the database table name for line entities.
// Overrides GORM's default naming convention to use "lines".
func (LineDTO) TableName() string {
	return "lines"
}

// fromDomain converts a line domain aggregate to its database representation.
func fromDomain(aggregate *line.Line) LineDTO {
	return LineDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
	}
}

// toDomain converts a database DTO to a line domain aggregate.
func toDomain(dto LineDTO) (*line.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return line.RestoreLine(id, dto.Name, dto.Description)
}
