// Package shipment contains the Shipment aggregate: a booked train run on a
// line, carrying the parcels packed onto it. A shipment is created at booking
// time and departs immediately; its arrival is a matter of the clock.
package shipment

import (
	"errors"
	"fmt"
	"time"

	"railmail/internal/core/domain/model/kernel"
	"railmail/internal/core/domain/model/parcel"
	"railmail/internal/pkg/errs"
	"railmail/internal/pkg/guard"
)

var (
	// ErrCapacityExceeded is returned when loading a parcel would overflow the train.
	ErrCapacityExceeded = errors.New("parcel does not fit into remaining shipment capacity")
	// ErrAlreadyDeparted is returned when departing a shipment twice.
	ErrAlreadyDeparted = errors.New("shipment has already departed")
	// ErrShipmentIsNotConstructed is returned when using an improperly initialized Shipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")
)

// Shipment represents one train run on one line. It owns the manifest of
// loaded parcels and the departure and arrival timestamps.
//
// Business rules:
//   - The manifest must respect the train's weight and volume capacity
//   - Parcels join the manifest exactly once, at loading time
//   - Departure is recorded once; arrival is departure plus transit time
type Shipment struct {
	// id uniquely identifies the shipment
	id kernel.UUID
	// trainID is the booked train performing the run
	trainID kernel.UUID
	// lineID is the line the shipment travels on
	lineID kernel.UUID
	// parcels is the manifest of loaded parcels
	parcels []*parcel.Parcel
	// departureDate is set when the shipment departs
	departureDate *time.Time
	// arrivalDate is departureDate plus the transit duration
	arrivalDate *time.Time
	// costPerWeight is the effective rate used to price the manifest
	costPerWeight *float64
	// guard ensures the shipment was properly constructed
	guard guard.ConstructorGuard
}

// NewShipment creates an empty Shipment for the given train and line.
func NewShipment(id kernel.UUID, trainID kernel.UUID, lineID kernel.UUID) (*Shipment, error) {
	shipment := &Shipment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipment.setID(id),
		shipment.setTrainID(trainID),
		shipment.setLineID(lineID),
	); err != nil {
		return nil, err
	}

	return shipment, nil
}

// RestoreShipment reconstructs a Shipment aggregate from persistent storage,
// including its manifest and travel timestamps.
func RestoreShipment(
	id kernel.UUID,
	trainID kernel.UUID,
	lineID kernel.UUID,
	parcels []*parcel.Parcel,
	departureDate *time.Time,
	arrivalDate *time.Time,
	costPerWeight *float64,
) (*Shipment, error) {
	shipment, err := NewShipment(id, trainID, lineID)
	if err != nil {
		return nil, err
	}

	shipment.parcels = make([]*parcel.Parcel, len(parcels))
	copy(shipment.parcels, parcels)

	if departureDate != nil {
		d := *departureDate
		shipment.departureDate = &d
	}
	if arrivalDate != nil {
		a := *arrivalDate
		shipment.arrivalDate = &a
	}
	if costPerWeight != nil {
		c := *costPerWeight
		shipment.costPerWeight = &c
	}

	return shipment, nil
}

// Validate checks that the Shipment was created through a constructor.
// The zero value of Shipment fails this validation.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// TrainID returns the booked train performing the run.
func (s *Shipment) TrainID() kernel.UUID {
	return s.trainID
}

// LineID returns the line the shipment travels on.
func (s *Shipment) LineID() kernel.UUID {
	return s.lineID
}

// Parcels returns the manifest of loaded parcels.
// The returned slice is a copy to prevent external modification.
func (s *Shipment) Parcels() []*parcel.Parcel {
	out := make([]*parcel.Parcel, len(s.parcels))
	copy(out, s.parcels)
	return out
}

// DepartureDate returns the departure time, or nil before departure.
func (s *Shipment) DepartureDate() *time.Time {
	if s.departureDate == nil {
		return nil
	}
	d := *s.departureDate
	return &d
}

// ArrivalDate returns the arrival time, or nil before departure.
func (s *Shipment) ArrivalDate() *time.Time {
	if s.arrivalDate == nil {
		return nil
	}
	a := *s.arrivalDate
	return &a
}

// CostPerWeight returns the rate used to price the manifest, or nil before pricing.
func (s *Shipment) CostPerWeight() *float64 {
	if s.costPerWeight == nil {
		return nil
	}
	c := *s.costPerWeight
	return &c
}

// Weight returns the total weight of the loaded parcels.
func (s *Shipment) Weight() float64 {
	var total float64
	for _, p := range s.parcels {
		total += p.Weight()
	}
	return total
}

// Volume returns the total volume of the loaded parcels.
func (s *Shipment) Volume() float64 {
	var total float64
	for _, p := range s.parcels {
		total += p.Volume()
	}
	return total
}

// Revenue returns the sum of the prices charged for the loaded parcels.
// Parcels without a cost contribute nothing.
func (s *Shipment) Revenue() float64 {
	var total float64
	for _, p := range s.parcels {
		if c := p.Cost(); c != nil {
			total += *c
		}
	}
	return total
}

// LoadParcel adds a parcel to the manifest and attaches the parcel to this
// shipment. capacity is the train's full loading budget; the parcel must fit
// together with everything already loaded.
func (s *Shipment) LoadParcel(p *parcel.Parcel, capacity kernel.Capacity) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if !capacity.Fits(s.Weight()+p.Weight(), s.Volume()+p.Volume()) {
		return fmt.Errorf("%w: parcel %s", ErrCapacityExceeded, p.ID())
	}

	if err := p.AssignToShipment(s.id); err != nil {
		return err
	}

	s.parcels = append(s.parcels, p)
	return nil
}

// SetCostPerWeight records the effective rate used to price the manifest.
func (s *Shipment) SetCostPerWeight(costPerWeight float64) error {
	if costPerWeight < 0 {
		return errs.NewValueIsInvalidErrorWithCause("cost per weight",
			fmt.Errorf("%v is negative", costPerWeight))
	}

	s.costPerWeight = &costPerWeight
	return nil
}

// Depart records the departure time and derives the arrival time from the
// transit duration. A shipment departs exactly once.
func (s *Shipment) Depart(now time.Time, transit time.Duration) error {
	if s.departureDate != nil {
		return ErrAlreadyDeparted
	}
	if transit <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("transit",
			fmt.Errorf("%v is not greater than 0", transit))
	}

	arrival := now.Add(transit)
	s.departureDate = &now
	s.arrivalDate = &arrival
	return nil
}

// HasArrived reports whether the shipment has reached its destination at the
// given instant. A shipment that never departed has not arrived.
func (s *Shipment) HasArrived(now time.Time) bool {
	return s.arrivalDate != nil && !s.arrivalDate.After(now)
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	s.id = id
	return nil
}

func (s *Shipment) setTrainID(trainID kernel.UUID) error {
	if err := trainID.Validate(); err != nil {
		return err
	}

	s.trainID = trainID
	return nil
}

func (s *Shipment) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	s.lineID = lineID
	return nil
}
