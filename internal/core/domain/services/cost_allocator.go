package services

import (
	"fmt"
	"math"

	"railmail/internal/core/domain/model/parcel"
	"railmail/internal/pkg/errs"
)

// ErrShipmentWeightIsZero is returned when allocating cost over a manifest
// whose total weight is not positive; a rate per weight cannot be derived.
var ErrShipmentWeightIsZero = errs.NewValueIsInvalidErrorWithCause(
	"weight", fmt.Errorf("total parcel weight is not greater than 0"))

// CostAllocator is a domain service that splits a shipment's charter cost
// across its parcels proportionally by weight, with a profit margin on top.
//
// Business rules:
//   - Every parcel pays the same effective rate per unit of weight
//   - The margin is applied uniformly on top of the rate
//   - Prices are rounded to two decimals, half away from zero
type CostAllocator struct {
	// margin is the profit fraction added on top of the charter cost
	margin float64
}

// NewCostAllocator creates a new CostAllocator with the given profit margin.
// A margin of 0.15 means senders collectively pay 115% of the charter cost
// before rounding. The margin must not be negative.
func NewCostAllocator(margin float64) (CostAllocator, error) {
	if margin < 0 {
		return CostAllocator{}, errs.NewValueIsInvalidErrorWithCause("margin",
			fmt.Errorf("%v is negative", margin))
	}

	return CostAllocator{margin: margin}, nil
}

// Margin returns the profit fraction added on top of the charter cost.
func (c CostAllocator) Margin() float64 {
	return c.margin
}

// RatePerWeight derives the base rate per unit of weight for a charter cost
// spread over the given total weight. The margin is not baked into the rate;
// it is applied when individual prices are computed.
//
// Returns ErrShipmentWeightIsZero when totalWeight is not positive.
func (c CostAllocator) RatePerWeight(charterCost float64, totalWeight float64) (float64, error) {
	if totalWeight <= 0 {
		return 0, ErrShipmentWeightIsZero
	}

	return charterCost / totalWeight, nil
}

// Allocate prices each parcel at the rate derived from the charter cost and
// the manifest's total weight, margin included.
//
// Parameters:
//   - charterCost: The full cost paid to the train operator
//   - parcels: The manifest to price
//
// Returns:
//   - float64: The base rate per weight the prices were computed from
//   - []float64: One price per parcel, in manifest order, rounded to cents
//   - error: ErrShipmentWeightIsZero when the manifest weighs nothing
func (c CostAllocator) Allocate(charterCost float64, parcels []*parcel.Parcel) (float64, []float64, error) {
	var totalWeight float64
	for _, p := range parcels {
		totalWeight += p.Weight()
	}

	rate, err := c.RatePerWeight(charterCost, totalWeight)
	if err != nil {
		return 0, nil, err
	}

	return rate, c.AllocateAtRate(rate, parcels), nil
}

// AllocateAtRate prices each parcel at an explicitly fixed base rate per
// weight, bypassing the charter cost derivation. Used when an operator
// overrides the rate for a shipment. The margin still applies on top.
func (c CostAllocator) AllocateAtRate(ratePerWeight float64, parcels []*parcel.Parcel) []float64 {
	prices := make([]float64, len(parcels))
	for i, p := range parcels {
		prices[i] = roundToCents(p.Weight() * ratePerWeight * (1 + c.margin))
	}
	return prices
}

// roundToCents rounds half away from zero to two decimal places.
func roundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}
