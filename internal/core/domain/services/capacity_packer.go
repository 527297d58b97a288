package services

import (
	"railmail/internal/core/domain/model/kernel"
	"railmail/internal/core/domain/model/parcel"
)

// CapacityPacker is a domain service that selects which pending parcels to
// load onto a train with a fixed weight and volume budget.
//
// Business rules:
//   - Parcels are considered strictly in deposit order (first come, first served)
//   - A parcel is selected at most once
//   - The selection never exceeds the capacity on either component
//
// Example usage:
//
//	packer := NewCapacityPacker()
//	capacity, _ := kernel.NewCapacity(80, 300)
//
//	selected, err := packer.Select(capacity, pendingParcels)
//	if err != nil {
//	    // A parcel in the pool failed validation
//	    return
//	}
//	// selected parcels fit the capacity together
type CapacityPacker struct{}

// NewCapacityPacker creates a new CapacityPacker instance.
func NewCapacityPacker() CapacityPacker {
	return CapacityPacker{}
}

// Select chooses parcels from the pending pool to fill the given capacity.
//
// Parameters:
//   - capacity: The train's full weight and volume budget
//   - pending: Pending parcels ordered by deposit time, oldest first
//
// Returns:
//   - []*parcel.Parcel: The selected parcels, in deposit order
//   - error: Validation errors for malformed parcels in the pool
//
// Selection algorithm:
//   - Walks the pool in order, loading each parcel that fits the remaining
//     budget, and stops the sweep at the first parcel that does not fit
//   - Repeats the sweep over the still-unselected parcels that individually
//     fit the remaining budget, so smaller parcels deposited after a
//     too-large one still get a seat
//   - Terminates when no unselected parcel fits the remaining budget
//
// An empty result is not an error; callers decide whether an empty load
// is acceptable.
func (c CapacityPacker) Select(capacity kernel.Capacity, pending []*parcel.Parcel) ([]*parcel.Parcel, error) {
	if err := capacity.Validate(); err != nil {
		return nil, err
	}
	for _, p := range pending {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}

	var selected []*parcel.Parcel
	taken := make(map[kernel.UUID]bool)
	remaining := capacity

	for !remaining.IsExhausted() {
		candidates := c.fittingCandidates(remaining, pending, taken)
		if len(candidates) == 0 {
			break
		}

		for _, p := range candidates {
			if !remaining.Fits(p.Weight(), p.Volume()) {
				break
			}

			next, err := remaining.Subtract(p.Weight(), p.Volume())
			if err != nil {
				return nil, err
			}

			remaining = next
			taken[p.ID()] = true
			selected = append(selected, p)
		}
	}

	return selected, nil
}

// fittingCandidates returns the not-yet-selected parcels that individually
// fit the remaining budget, preserving deposit order.
func (c CapacityPacker) fittingCandidates(
	remaining kernel.Capacity,
	pending []*parcel.Parcel,
	taken map[kernel.UUID]bool,
) []*parcel.Parcel {
	var candidates []*parcel.Parcel
	for _, p := range pending {
		if taken[p.ID()] {
			continue
		}
		if !remaining.Fits(p.Weight(), p.Volume()) {
			continue
		}
		candidates = append(candidates, p)
	}
	return candidates
}
