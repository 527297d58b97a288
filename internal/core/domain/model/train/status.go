package train

import (
	"fmt"

	"railmail/internal/pkg/errs"
)

// Status represents the lifecycle state of a train bid.
// It implements a state machine with defined transitions:
//
//	Open ──┬──> Booked
//	       └──> Withdrawn
//
// Booked and Withdrawn are terminal: a booked train cannot be re-shipped
// or withdrawn, and a withdrawn train never returns to service.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Open is the initial status: the train is available for booking or withdrawal.
	Open

	// Booked indicates the train has departed with a shipment. Terminal.
	Booked

	// Withdrawn indicates the operator pulled the train from service. Terminal.
	Withdrawn
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Open:      "open",
		Booked:    "booked",
		Withdrawn: "withdrawn",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Open:      "open",
		Booked:    "booked",
		Withdrawn: "withdrawn",
	}
}

// Validate checks if the Status value is one of Open, Booked, Withdrawn.
// Used to ensure statuses from external sources (database, API) are valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status, or "unknown" for invalid values.
// Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Book transitions the status to Booked.
//
// The only valid transition is Open -> Booked; booking an already booked or
// withdrawn train is rejected.
func (s Status) Book() (Status, error) {
	if s != Open {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to book", s.String()),
		)
	}

	return Booked, nil
}

// Withdraw transitions the status to Withdrawn.
//
// The only valid transition is Open -> Withdrawn; a booked train cannot be
// withdrawn in this model.
func (s Status) Withdraw() (Status, error) {
	if s != Open {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to withdraw", s.String()),
		)
	}

	return Withdrawn, nil
}
