package parcel

import (
	"time"
)

// Status is the derived lifecycle state of a parcel. Unlike a train's status
// it is never stored: it is computed from the parcel's withdrawal mark and
// the shipment it is attached to, so it can never disagree with them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending means the parcel is at the depot awaiting a shipment.
	Pending

	// InTransit means the parcel is loaded on a shipment still under way.
	InTransit

	// Shipped means the parcel's shipment has arrived.
	Shipped

	// Withdrawn means the sender reclaimed the parcel before it shipped.
	Withdrawn
)

// String returns the lowercase name of the status. Implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case InTransit:
		return "in transit"
	case Shipped:
		return "shipped"
	case Withdrawn:
		return "withdrawn"
	default:
		return "unknown"
	}
}

// DeriveStatus computes a parcel's status from its withdrawal mark, shipment
// attachment, and the shipment's arrival date at the given instant.
//
// Precedence: a withdrawal mark always wins, then attachment decides between
// depot and rail, then the arrival clock decides between in transit and shipped.
// assigned reports whether the parcel is attached to a shipment; arrivalDate
// may be nil while the shipment has not departed yet.
func DeriveStatus(withdrawnAt *time.Time, assigned bool, arrivalDate *time.Time, now time.Time) Status {
	if withdrawnAt != nil {
		return Withdrawn
	}
	if !assigned {
		return Pending
	}
	if arrivalDate != nil && !arrivalDate.After(now) {
		return Shipped
	}
	return InTransit
}
