package kernel

import (
	"errors"
	"fmt"

	"railmail/internal/pkg/errs"
)

// ErrCapacityIsNotConstructed is returned when using an improperly initialized Capacity.
// Capacities must be created via the NewCapacity constructor.
var ErrCapacityIsNotConstructed = errs.NewValueIsRequiredError(
	"capacity must be created via NewCapacity constructor")

// Capacity is an immutable value object pairing a weight budget with a volume
// budget. It represents both the full loading capacity of a train and the
// remaining budget while parcels are being packed.
//
// Both components are non-negative. A capacity with a zero weight or zero
// volume component cannot hold any cargo (see IsExhausted).
//
// Example:
//
//	cap, err := kernel.NewCapacity(80, 300)
//	if err != nil {
//	    // handle validation error
//	}
//	if cap.Fits(20, 100) {
//	    cap, _ = cap.Subtract(20, 100)
//	}
type Capacity struct { //nolint:recvcheck //using for validation
	weight float64
	volume float64
	guard  ConstructorGuard
}

// NewCapacity creates a Capacity from non-negative weight and volume budgets.
// Returns a validation error if either component is negative.
func NewCapacity(weight float64, volume float64) (Capacity, error) {
	capacity := Capacity{
		guard: NewConstructorGuard(),
	}

	if err := errors.Join(capacity.setWeight(weight), capacity.setVolume(volume)); err != nil {
		return Capacity{}, err
	}

	return capacity, nil
}

// Validate ensures the Capacity was created through NewCapacity.
func (c Capacity) Validate() error {
	return c.guard.Validate(ErrCapacityIsNotConstructed)
}

// Weight returns the weight component of the budget.
func (c Capacity) Weight() float64 {
	return c.weight
}

// Volume returns the volume component of the budget.
func (c Capacity) Volume() float64 {
	return c.volume
}

// IsExhausted reports whether either component of the budget is zero,
// meaning no cargo with positive weight and volume can fit.
func (c Capacity) IsExhausted() bool {
	return c.weight <= 0 || c.volume <= 0
}

// Fits reports whether a load of the given weight and volume fits within
// the budget, considering both components independently.
func (c Capacity) Fits(weight float64, volume float64) bool {
	return weight <= c.weight && volume <= c.volume
}

// Subtract deducts a load from the budget and returns the reduced Capacity.
// Returns an error if the load does not fit.
func (c Capacity) Subtract(weight float64, volume float64) (Capacity, error) {
	if !c.Fits(weight, volume) {
		return Capacity{}, errs.NewValueIsInvalidErrorWithCause("load",
			fmt.Errorf("load (%v, %v) exceeds remaining capacity (%v, %v)", weight, volume, c.weight, c.volume))
	}

	return NewCapacity(c.weight-weight, c.volume-volume)
}

// IsEqual reports whether two capacities have identical weight and volume budgets.
func (c Capacity) IsEqual(other Capacity) bool {
	return c.weight == other.weight && c.volume == other.volume
}

// String returns a compact textual representation, e.g. "Capacity(80, 300)".
func (c Capacity) String() string {
	return fmt.Sprintf("Capacity(%v, %v)", c.weight, c.volume)
}

func (c *Capacity) setWeight(weight float64) error {
	if weight < 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%v is negative", weight))
	}

	c.weight = weight
	return nil
}

func (c *Capacity) setVolume(volume float64) error {
	if volume < 0 {
		return errs.NewValueIsInvalidErrorWithCause("volume",
			fmt.Errorf("%v is negative", volume))
	}

	c.volume = volume
	return nil
}
