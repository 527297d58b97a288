package train

import (
	"errors"
	"fmt"

	"railmail/internal/core/domain/model/kernel"
	"railmail/internal/pkg/errs"
	"railmail/internal/pkg/guard"
)

// Domain errors for train operations.
var (
	// ErrNameIsRequired is returned when attempting to create a train without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrLinesAreRequired is returned when attempting to create a train without serviceable lines.
	ErrLinesAreRequired = errs.NewValueIsRequiredError("lines")
	// ErrTrainIsNotConstructed is returned when using an improperly initialized Train.
	ErrTrainIsNotConstructed = errors.New("Train must be created via NewTrain constructor")
)

// Train represents a chartered train bid into the scheduling pool.
// It is an aggregate root that manages train identity, loading capacity,
// the set of lines it may service, and its booking lifecycle.
//
// Business rules:
//   - Charter cost, weight capacity, and volume capacity must all be positive
//   - A train must be registered to at least one line
//   - Status transitions follow the Open/Booked/Withdrawn state machine
//   - A train owns at most one live shipment, created when it is booked
type Train struct {
	// id uniquely identifies the train
	id kernel.UUID
	// name is the display name of the train
	name string
	// cost is the charter cost paid to the operator when the train ships
	cost float64
	// weightCapacity is the maximum total parcel weight the train can carry
	weightCapacity float64
	// volumeCapacity is the maximum total parcel volume the train can carry
	volumeCapacity float64
	// lineIDs are the lines this train is registered to service
	lineIDs []kernel.UUID
	// status is the current state in the booking lifecycle
	status Status
	// guard ensures the train was properly constructed
	guard guard.ConstructorGuard
}

// NewTrain creates a new Train in Open status.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - name: display name (must be non-empty)
//   - cost: charter cost (must be positive)
//   - weightCapacity, volumeCapacity: loading budgets (must be positive)
//   - lineIDs: lines the train may service (at least one, all valid)
func NewTrain(
	id kernel.UUID,
	name string,
	cost float64,
	weightCapacity float64,
	volumeCapacity float64,
	lineIDs []kernel.UUID,
) (*Train, error) {
	train := &Train{
		status: Open,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		train.setID(id),
		train.setName(name),
		train.setCost(cost),
		train.setWeightCapacity(weightCapacity),
		train.setVolumeCapacity(volumeCapacity),
		train.setLineIDs(lineIDs),
	); err != nil {
		return nil, err
	}

	return train, nil
}

// RestoreTrain reconstructs a Train aggregate from persistent storage,
// including its current status.
func RestoreTrain(
	id kernel.UUID,
	name string,
	cost float64,
	weightCapacity float64,
	volumeCapacity float64,
	lineIDs []kernel.UUID,
	status Status,
) (*Train, error) {
	train := &Train{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		train.setID(id),
		train.setName(name),
		train.setCost(cost),
		train.setWeightCapacity(weightCapacity),
		train.setVolumeCapacity(volumeCapacity),
		train.setLineIDs(lineIDs),
		train.setStatus(status),
	); err != nil {
		return nil, err
	}

	return train, nil
}

// Validate checks that the Train was created through a constructor.
// The zero value of Train fails this validation.
func (t *Train) Validate() error {
	if t == nil {
		return ErrTrainIsNotConstructed
	}
	return t.guard.Validate(ErrTrainIsNotConstructed)
}

// IsEqual compares two trains by their unique identifiers.
func (t *Train) IsEqual(other *Train) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the train's unique identifier.
func (t *Train) ID() kernel.UUID {
	return t.id
}

// Name returns the train's display name.
func (t *Train) Name() string {
	return t.name
}

// Cost returns the charter cost of the train.
func (t *Train) Cost() float64 {
	return t.cost
}

// WeightCapacity returns the maximum total parcel weight the train can carry.
func (t *Train) WeightCapacity() float64 {
	return t.weightCapacity
}

// VolumeCapacity returns the maximum total parcel volume the train can carry.
func (t *Train) VolumeCapacity() float64 {
	return t.volumeCapacity
}

// Capacity returns the train's full loading budget as a kernel value object.
func (t *Train) Capacity() kernel.Capacity {
	capacity, _ := kernel.NewCapacity(t.weightCapacity, t.volumeCapacity)
	return capacity
}

// Status returns the current state in the booking lifecycle.
func (t *Train) Status() Status {
	return t.status
}

// LineIDs returns the lines the train is registered to service.
// The returned slice is a copy to prevent external modification.
func (t *Train) LineIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(t.lineIDs))
	copy(out, t.lineIDs)
	return out
}

// ServesLine reports whether the train is registered to service the given line.
func (t *Train) ServesLine(lineID kernel.UUID) bool {
	for _, id := range t.lineIDs {
		if id.IsEqual(lineID) {
			return true
		}
	}
	return false
}

// Book transitions the train from Open to Booked. This is the irreversible
// commit point of a shipment: once booked, the train never ships again.
func (t *Train) Book() error {
	newStatus, err := t.status.Book()
	if err != nil {
		return err
	}

	t.status = newStatus
	return nil
}

// Withdraw transitions the train from Open to Withdrawn, pulling it from the
// scheduling pool. Booked trains cannot be withdrawn.
func (t *Train) Withdraw() error {
	newStatus, err := t.status.Withdraw()
	if err != nil {
		return err
	}

	t.status = newStatus
	return nil
}

func (t *Train) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	t.id = id
	return nil
}

func (t *Train) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	t.name = name
	return nil
}

func (t *Train) setCost(cost float64) error {
	if cost <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("cost",
			fmt.Errorf("%v is not greater than 0", cost))
	}

	t.cost = cost
	return nil
}

func (t *Train) setWeightCapacity(weightCapacity float64) error {
	if weightCapacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight capacity",
			fmt.Errorf("%v is not greater than 0", weightCapacity))
	}

	t.weightCapacity = weightCapacity
	return nil
}

func (t *Train) setVolumeCapacity(volumeCapacity float64) error {
	if volumeCapacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("volume capacity",
			fmt.Errorf("%v is not greater than 0", volumeCapacity))
	}

	t.volumeCapacity = volumeCapacity
	return nil
}

func (t *Train) setLineIDs(lineIDs []kernel.UUID) error {
	if len(lineIDs) == 0 {
		return ErrLinesAreRequired
	}

	for _, id := range lineIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	t.lineIDs = make([]kernel.UUID, len(lineIDs))
	copy(t.lineIDs, lineIDs)
	return nil
}

func (t *Train) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	t.status = status
	return nil
}
