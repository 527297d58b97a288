package queries

import (
	"context"
	"errors"

	"railmail/internal/core/domain/model/kernel"
	"railmail/internal/core/domain/services"
	"railmail/internal/core/ports"
)

// PlanFleetScheduleQueryHandler runs the assignment optimizer over the open
// fleet, the registered lines, and the pending parcel pool.
//
// The handler reads through repositories rather than raw SQL because the
// optimizer consumes full domain aggregates; it still mutates nothing and
// needs no transaction.
type PlanFleetScheduleQueryHandler struct {
	lineRepo   ports.LineRepository
	trainRepo  ports.TrainRepository
	parcelRepo ports.ParcelRepository
	optimizer  services.AssignmentOptimizer
}

// NewPlanFleetScheduleQueryHandler creates a handler for fleet planning queries.
func NewPlanFleetScheduleQueryHandler(
	lineRepo ports.LineRepository,
	trainRepo ports.TrainRepository,
	parcelRepo ports.ParcelRepository,
	optimizer services.AssignmentOptimizer,
) PlanFleetScheduleQueryHandler {
	return PlanFleetScheduleQueryHandler{
		lineRepo:   lineRepo,
		trainRepo:  trainRepo,
		parcelRepo: parcelRepo,
		optimizer:  optimizer,
	}
}

// Handle executes the planning run and returns the recommended schedule.
// Optimizer infeasibility is reported as Feasible=false, not as an error.
func (h PlanFleetScheduleQueryHandler) Handle(
	ctx context.Context,
	query PlanFleetScheduleQuery,
) (PlanFleetScheduleQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return PlanFleetScheduleQueryResponse{}, err
	}

	lines, err := h.lineRepo.GetAll(ctx)
	if err != nil {
		return PlanFleetScheduleQueryResponse{}, err
	}
	trains, err := h.trainRepo.GetAllOpen(ctx)
	if err != nil {
		return PlanFleetScheduleQueryResponse{}, err
	}
	parcels, err := h.parcelRepo.GetAllPending(ctx)
	if err != nil {
		return PlanFleetScheduleQueryResponse{}, err
	}

	plan, err := h.optimizer.MinimizeCost(lines, trains, parcels)
	if errors.Is(err, services.ErrNoFeasibleAssignment) {
		return PlanFleetScheduleQueryResponse{Feasible: false}, nil
	}
	if err != nil {
		return PlanFleetScheduleQueryResponse{}, err
	}

	lineNames := make(map[kernel.UUID]string, len(lines))
	for _, l := range lines {
		lineNames[l.ID()] = l.Name()
	}
	trainNames := make(map[kernel.UUID]string, len(trains))
	for _, t := range trains {
		trainNames[t.ID()] = t.Name()
	}

	assignments := make([]PlanFleetScheduleAssignment, len(plan.Schedule))
	for i, a := range plan.Schedule {
		assignments[i] = PlanFleetScheduleAssignment{
			TrainID:   a.TrainID,
			TrainName: trainNames[a.TrainID],
			LineID:    a.LineID,
			LineName:  lineNames[a.LineID],
		}
	}

	return PlanFleetScheduleQueryResponse{
		Feasible:    true,
		TotalCost:   plan.TotalCost,
		Assignments: assignments,
	}, nil
}
