// Package line contains the Line aggregate: a named rail connection that
// trains register to service and shipments travel on. Lines are shared,
// referenced by trains and shipments but owned by neither.
package line

import (
	"errors"

	"railmail/internal/core/domain/model/kernel"
	"railmail/internal/pkg/errs"
	"railmail/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create a line without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrLineIsNotConstructed is returned when using an improperly initialized Line.
	ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")
)

// Line represents a rail connection in the system. Its name is unique and
// immutable once the line is referenced by a train or shipment; only the
// description may change afterwards.
type Line struct {
	// id uniquely identifies the line
	id kernel.UUID
	// name is the unique human-readable name of the line
	name string
	// description is optional free-form text
	description string
	// guard ensures the line was properly constructed
	guard guard.ConstructorGuard
}

// NewLine creates a new Line with the given identity, name, and optional description.
// The name must be non-empty; uniqueness is enforced by the persistence layer.
func NewLine(id kernel.UUID, name string, description string) (*Line, error) {
	line := &Line{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setID(id),
		line.setName(name),
	); err != nil {
		return nil, err
	}

	line.description = description
	return line, nil
}

// RestoreLine reconstructs a Line aggregate from persistent storage.
func RestoreLine(id kernel.UUID, name string, description string) (*Line, error) {
	return NewLine(id, name, description)
}

// Validate checks that the Line was created through NewLine.
// The zero value of Line fails this validation.
func (l *Line) Validate() error {
	if l == nil {
		return ErrLineIsNotConstructed
	}
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// IsEqual compares two lines by their unique identifiers.
func (l *Line) IsEqual(other *Line) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the line's unique identifier.
func (l *Line) ID() kernel.UUID {
	return l.id
}

// Name returns the line's unique name.
func (l *Line) Name() string {
	return l.name
}

// Description returns the line's optional description.
func (l *Line) Description() string {
	return l.description
}

// ChangeDescription replaces the line's description. The description is the
// only mutable attribute of a line once it is referenced by other aggregates.
func (l *Line) ChangeDescription(description string) {
	l.description = description
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	l.id = id
	return nil
}

func (l *Line) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	l.name = name
	return nil
}
