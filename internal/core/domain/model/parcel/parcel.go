// Package parcel contains the Parcel aggregate: a unit of mail deposited at
// the depot, waiting to be packed onto a shipment. A parcel's status is not
// stored but derived from its withdrawal mark and shipment attachment.
package parcel

import (
	"errors"
	"fmt"
	"time"

	"railmail/internal/core/domain/model/kernel"
	"railmail/internal/pkg/errs"
	"railmail/internal/pkg/guard"
)

var (
	// ErrLabelIsRequired is returned when attempting to create a parcel without a label.
	ErrLabelIsRequired = errs.NewValueIsRequiredError("label")
	// ErrParcelNotPending is returned when an operation requires the parcel to be pending.
	ErrParcelNotPending = errors.New("parcel is not pending")
	// ErrParcelAlreadyAssigned is returned when attaching a parcel that already belongs to a shipment.
	ErrParcelAlreadyAssigned = errors.New("parcel is already assigned to a shipment")
	// ErrParcelIsNotConstructed is returned when using an improperly initialized Parcel.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")
)

// Parcel represents a deposited unit of mail. Its weight and volume drive
// packing decisions; its cost is set once when the parcel ships.
//
// Business rules:
//   - Weight and volume must be positive
//   - Only a pending parcel can be withdrawn or loaded onto a shipment
//   - A parcel belongs to at most one shipment, forever
type Parcel struct {
	// id uniquely identifies the parcel
	id kernel.UUID
	// label is the sender-facing tag on the parcel
	label string
	// description is optional free-form text
	description string
	// weight of the parcel, in the same unit as train weight capacity
	weight float64
	// volume of the parcel, in the same unit as train volume capacity
	volume float64
	// cost charged to the sender, set when the parcel ships
	cost *float64
	// createdAt orders parcels for first-come-first-served packing
	createdAt time.Time
	// withdrawnAt marks the parcel as reclaimed by the sender
	withdrawnAt *time.Time
	// shipmentID attaches the parcel to the shipment carrying it
	shipmentID *kernel.UUID
	// guard ensures the parcel was properly constructed
	guard guard.ConstructorGuard
}

// NewParcel creates a new pending Parcel deposited at the given time.
func NewParcel(
	id kernel.UUID,
	label string,
	description string,
	weight float64,
	volume float64,
	createdAt time.Time,
) (*Parcel, error) {
	parcel := &Parcel{
		description: description,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		parcel.setID(id),
		parcel.setLabel(label),
		parcel.setWeight(weight),
		parcel.setVolume(volume),
	); err != nil {
		return nil, err
	}

	return parcel, nil
}

// RestoreParcel reconstructs a Parcel aggregate from persistent storage,
// including its cost, withdrawal mark, and shipment attachment.
func RestoreParcel(
	id kernel.UUID,
	label string,
	description string,
	weight float64,
	volume float64,
	cost *float64,
	createdAt time.Time,
	withdrawnAt *time.Time,
	shipmentID *kernel.UUID,
) (*Parcel, error) {
	parcel, err := NewParcel(id, label, description, weight, volume, createdAt)
	if err != nil {
		return nil, err
	}

	if shipmentID != nil {
		if err := shipmentID.Validate(); err != nil {
			return nil, err
		}
		sid := *shipmentID
		parcel.shipmentID = &sid
	}
	if cost != nil {
		c := *cost
		parcel.cost = &c
	}
	if withdrawnAt != nil {
		w := *withdrawnAt
		parcel.withdrawnAt = &w
	}

	return parcel, nil
}

// Validate checks that the Parcel was created through a constructor.
// The zero value of Parcel fails this validation.
func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

// IsEqual compares two parcels by their unique identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// Label returns the sender-facing tag on the parcel.
func (p *Parcel) Label() string {
	return p.label
}

// Description returns the parcel's optional description.
func (p *Parcel) Description() string {
	return p.description
}

// Weight returns the parcel's weight.
func (p *Parcel) Weight() float64 {
	return p.weight
}

// Volume returns the parcel's volume.
func (p *Parcel) Volume() float64 {
	return p.volume
}

// Cost returns the price charged to the sender, or nil if the parcel has
// not shipped yet.
func (p *Parcel) Cost() *float64 {
	if p.cost == nil {
		return nil
	}
	c := *p.cost
	return &c
}

// CreatedAt returns the deposit time used for first-come-first-served ordering.
func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

// WithdrawnAt returns the time the sender reclaimed the parcel, or nil.
func (p *Parcel) WithdrawnAt() *time.Time {
	if p.withdrawnAt == nil {
		return nil
	}
	w := *p.withdrawnAt
	return &w
}

// ShipmentID returns the shipment carrying the parcel, or nil while pending.
func (p *Parcel) ShipmentID() *kernel.UUID {
	if p.shipmentID == nil {
		return nil
	}
	sid := *p.shipmentID
	return &sid
}

// StatusAt derives the parcel's status at the given instant. The arrival date
// of the carrying shipment must be supplied by the caller since the parcel
// does not hold its shipment.
func (p *Parcel) StatusAt(arrivalDate *time.Time, now time.Time) Status {
	return DeriveStatus(p.withdrawnAt, p.shipmentID != nil, arrivalDate, now)
}

// IsPending reports whether the parcel is still at the depot: not withdrawn
// and not attached to any shipment.
func (p *Parcel) IsPending() bool {
	return p.withdrawnAt == nil && p.shipmentID == nil
}

// Withdraw marks the parcel as reclaimed by the sender at the given time.
// Only pending parcels can be withdrawn.
func (p *Parcel) Withdraw(now time.Time) error {
	if !p.IsPending() {
		return ErrParcelNotPending
	}

	p.withdrawnAt = &now
	return nil
}

// AssignToShipment attaches the parcel to the shipment carrying it.
// A withdrawn parcel cannot ship, and a parcel already on a shipment
// cannot be moved to another one.
func (p *Parcel) AssignToShipment(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}
	if p.withdrawnAt != nil {
		return ErrParcelNotPending
	}
	if p.shipmentID != nil {
		return ErrParcelAlreadyAssigned
	}

	p.shipmentID = &shipmentID
	return nil
}

// SetCost records the price charged to the sender for carrying the parcel.
func (p *Parcel) SetCost(cost float64) error {
	if cost < 0 {
		return errs.NewValueIsInvalidErrorWithCause("cost",
			fmt.Errorf("%v is negative", cost))
	}

	p.cost = &cost
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	p.id = id
	return nil
}

func (p *Parcel) setLabel(label string) error {
	if label == "" {
		return ErrLabelIsRequired
	}

	p.label = label
	return nil
}

func (p *Parcel) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%v is not greater than 0", weight))
	}

	p.weight = weight
	return nil
}

func (p *Parcel) setVolume(volume float64) error {
	if volume <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("volume",
			fmt.Errorf("%v is not greater than 0", volume))
	}

	p.volume = volume
	return nil
}
