package queries

import (
	"context"

	"railmail/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllLinesQueryHandler retrieves all line information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllLinesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllLinesQueryHandler creates a handler for line retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAllLinesQueryHandler(db *gorm.DB) GetAllLinesQueryHandler {
	return GetAllLinesQueryHandler{db: db}
}

// Handle executes the query to retrieve all lines.
// Returns a slice of line read models sorted by name.
func (h GetAllLinesQueryHandler) Handle(
	ctx context.Context,
	query GetAllLinesQuery,
) ([]GetAllLinesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	lines := make([]GetAllLinesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description
		FROM lines
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var lineRow GetAllLinesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&lineRow.Name,
			&lineRow.Description,
		)
		if err != nil {
			return nil, err
		}

		lineID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		lineRow.ID = lineID
		lines = append(lines, lineRow)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
