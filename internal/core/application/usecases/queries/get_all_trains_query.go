package queries

import (
	"errors"

	"railmail/internal/core/domain/model/kernel"
	"railmail/internal/pkg/guard"
)

var ErrGetAllTrainsQueryIsNotConstructed = errors.New(
	"GetAllTrainsQuery must be created via NewGetAllTrainsQuery constructor",
)

// GetAllTrainsQuery retrieves every train bid into the system, regardless of
// status, for the operator dashboard.
type GetAllTrainsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllTrainsQuery creates a query to retrieve all trains.
// This is a parameterless query that fetches the complete train list.
func NewGetAllTrainsQuery() GetAllTrainsQuery {
	return GetAllTrainsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllTrainsQueryIsNotConstructed if validation fails.
func (q GetAllTrainsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllTrainsQueryIsNotConstructed)
}

// GetAllTrainsQueryResponse represents train information in the read model.
// Status carries the lifecycle state as its lowercase string form.
type GetAllTrainsQueryResponse struct {
	ID             kernel.UUID
	Name           string
	Cost           float64
	WeightCapacity float64
	VolumeCapacity float64
	Status         string
}
