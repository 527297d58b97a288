package queries

import (
	"errors"

	"railmail/internal/core/domain/model/kernel"
	"railmail/internal/pkg/guard"
)

var ErrGetAllParcelsQueryIsNotConstructed = errors.New(
	"GetAllParcelsQuery must be created via NewGetAllParcelsQuery constructor",
)

// GetAllParcelsQuery retrieves every deposited parcel with its derived status.
//
// Example:
//
//	query := NewGetAllParcelsQuery()
//	handler := NewGetAllParcelsQueryHandler(db)
//
//	parcels, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve parcels: %w", err)
//	}
//
//	for _, p := range parcels {
//	    fmt.Printf("%s: %s\n", p.Label, p.Status)
//	}
type GetAllParcelsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllParcelsQuery creates a query to retrieve all parcels.
// This is a parameterless query that fetches the complete parcel list.
func NewGetAllParcelsQuery() GetAllParcelsQuery {
	return GetAllParcelsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllParcelsQueryIsNotConstructed if validation fails.
func (q GetAllParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllParcelsQueryIsNotConstructed)
}

// GetAllParcelsQueryResponse represents parcel information in the read model.
// Status is derived at query time from the withdrawal mark, the shipment
// attachment, and the shipment's arrival date; it is never stored. Cost is
// nil until the parcel ships.
type GetAllParcelsQueryResponse struct {
	ID     kernel.UUID
	Label  string
	Weight float64
	Volume float64
	Cost   *float64
	Status string
}
