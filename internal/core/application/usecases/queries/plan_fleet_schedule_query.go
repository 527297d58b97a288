package queries

import (
	"errors"

	"railmail/internal/core/domain/model/kernel"
	"railmail/internal/pkg/guard"
)

var ErrPlanFleetScheduleQueryIsNotConstructed = errors.New(
	"PlanFleetScheduleQuery must be created via NewPlanFleetScheduleQuery constructor",
)

// PlanFleetScheduleQuery asks for a minimum-cost what-if assignment of the
// open fleet to the registered lines, covering the whole pending parcel pool.
// The plan is advisory; it commits nothing.
type PlanFleetScheduleQuery struct {
	guard guard.ConstructorGuard
}

// NewPlanFleetScheduleQuery creates a query for a fleet-wide schedule plan.
func NewPlanFleetScheduleQuery() PlanFleetScheduleQuery {
	return PlanFleetScheduleQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrPlanFleetScheduleQueryIsNotConstructed if validation fails.
func (q PlanFleetScheduleQuery) Validate() error {
	return q.guard.Validate(ErrPlanFleetScheduleQueryIsNotConstructed)
}

// PlanFleetScheduleAssignment pairs a recommended train with a line.
type PlanFleetScheduleAssignment struct {
	TrainID   kernel.UUID
	TrainName string
	LineID    kernel.UUID
	LineName  string
}

// PlanFleetScheduleQueryResponse is the outcome of the planning run.
// Feasible false means no selection of open trains covers the pending pool;
// it is a normal outcome, not an error, and carries no cost or schedule.
type PlanFleetScheduleQueryResponse struct {
	Feasible    bool
	TotalCost   float64
	Assignments []PlanFleetScheduleAssignment
}
