// Package ports defines repository interfaces for the parcel-train domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"railmail/internal/core/domain/model/kernel"
	"railmail/internal/core/domain/model/line"
)

// LineRepository defines the persistence contract for line aggregates.
type LineRepository interface {
	// Add persists a new line aggregate to storage.
	// The line must be valid and its name unique.
	Add(ctx context.Context, aggregate *line.Line) error

	// Update persists changes to an existing line aggregate.
	Update(ctx context.Context, aggregate *line.Line) error

	// Get retrieves a line aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*line.Line, error)

	// GetByNames retrieves the lines matching the given unique names.
	// Missing names do not produce an error; callers compare the result
	// length against the request to detect unknown lines.
	GetByNames(ctx context.Context, names []string) ([]*line.Line, error)

	// GetAll retrieves every line, ordered by name.
	GetAll(ctx context.Context) ([]*line.Line, error)
}
