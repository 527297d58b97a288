// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"railmail/internal/core/domain/model/kernel"
	"railmail/internal/pkg/guard"
)

var ErrGetAllLinesQueryIsNotConstructed = errors.New(
	"GetAllLinesQuery must be created via NewGetAllLinesQuery constructor",
)

// GetAllLinesQuery retrieves every registered rail line.
//
// Example:
//
//	query := NewGetAllLinesQuery()
//	handler := NewGetAllLinesQueryHandler(db)
//
//	lines, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve lines: %w", err)
//	}
type GetAllLinesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllLinesQuery creates a query to retrieve all lines.
// This is a parameterless query that fetches the complete line list.
func NewGetAllLinesQuery() GetAllLinesQuery {
	return GetAllLinesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllLinesQueryIsNotConstructed if validation fails.
func (q GetAllLinesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllLinesQueryIsNotConstructed)
}

// GetAllLinesQueryResponse represents line information in the read model.
type GetAllLinesQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
}
