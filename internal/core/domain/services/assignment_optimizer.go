package services

import (
	"errors"
	"math"

	"railmail/internal/core/domain/model/kernel"
	"railmail/internal/core/domain/model/line"
	"railmail/internal/core/domain/model/parcel"
	"railmail/internal/core/domain/model/train"
)

// ErrNoFeasibleAssignment is returned when no selection of trains can cover
// the parcel pool's total weight and volume. It is a normal planning outcome,
// not a failure to retry.
var ErrNoFeasibleAssignment = errors.New("no feasible fleet assignment exists for this parcel load")

const (
	// DefaultProblemName labels the assignment problem in logs and diagnostics.
	DefaultProblemName = "mail-scheduler"
	// DefaultShiftHours is the nominal length of a dispatch shift the plan covers.
	DefaultShiftHours = 3
)

// TrainLineAssignment pairs one selected train with the line it should run on.
type TrainLineAssignment struct {
	TrainID kernel.UUID
	LineID  kernel.UUID
}

// FleetPlan is the result of a fleet-wide cost minimization: which train runs
// on which line, and the total charter cost of the selection.
type FleetPlan struct {
	TotalCost float64
	Schedule  []TrainLineAssignment
}

// AssignmentOptimizer is a domain service that solves a binary assignment
// problem pairing candidate trains with lines so that the selected fleet can
// carry the whole pending parcel pool at minimum total charter cost.
//
// Formulation: one binary decision per eligible (train, line) pair.
//
//   - Objective: minimize the sum of charter costs over selected pairs
//   - The selected trains' weight capacities must cover total parcel weight
//   - The selected trains' volume capacities must cover total parcel volume
//   - Each train is selected for at most one line
//   - Each line hosts at most one train
//   - A train may only be paired with a line it is registered to serve
//
// The problem sizes here (a handful of trains and lines per shift) are solved
// exactly by depth-first branch and bound; no LP relaxation is needed.
//
// The optimizer is a planning tool: it performs no mutation, takes no locks,
// and runs synchronously to completion.
type AssignmentOptimizer struct {
	// problemName labels the problem instance in logs and diagnostics
	problemName string
	// shiftHours is the nominal dispatch shift length the plan covers
	shiftHours int
}

// NewAssignmentOptimizer creates a new AssignmentOptimizer. An empty problem
// name or non-positive shift length falls back to the defaults; neither
// affects the solution, only labeling.
func NewAssignmentOptimizer(problemName string, shiftHours int) AssignmentOptimizer {
	if problemName == "" {
		problemName = DefaultProblemName
	}
	if shiftHours <= 0 {
		shiftHours = DefaultShiftHours
	}

	return AssignmentOptimizer{
		problemName: problemName,
		shiftHours:  shiftHours,
	}
}

// ProblemName returns the label of the assignment problem.
func (a AssignmentOptimizer) ProblemName() string {
	return a.problemName
}

// ShiftHours returns the nominal dispatch shift length the plan covers.
func (a AssignmentOptimizer) ShiftHours() int {
	return a.shiftHours
}

// MinimizeCost selects the cheapest set of (train, line) pairings whose
// combined capacity covers the parcel pool.
//
// Parameters:
//   - lines: The lines available for dispatch
//   - trains: The candidate trains (callers pass the open fleet)
//   - parcels: The pending parcel pool defining weight and volume demand
//
// Returns:
//   - FleetPlan: The minimum-cost schedule; empty when there is nothing to carry
//   - error: ErrNoFeasibleAssignment when no selection covers the demand,
//     or validation errors for malformed inputs
func (a AssignmentOptimizer) MinimizeCost(
	lines []*line.Line,
	trains []*train.Train,
	parcels []*parcel.Parcel,
) (FleetPlan, error) {
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return FleetPlan{}, err
		}
	}
	for _, t := range trains {
		if err := t.Validate(); err != nil {
			return FleetPlan{}, err
		}
	}
	for _, p := range parcels {
		if err := p.Validate(); err != nil {
			return FleetPlan{}, err
		}
	}

	var demandWeight, demandVolume float64
	for _, p := range parcels {
		demandWeight += p.Weight()
		demandVolume += p.Volume()
	}

	// Nothing to carry: the empty schedule is feasible and free.
	if demandWeight <= 0 && demandVolume <= 0 {
		return FleetPlan{Schedule: []TrainLineAssignment{}}, nil
	}

	candidates := a.eligibleCandidates(lines, trains)

	search := &assignmentSearch{
		candidates:   candidates,
		demandWeight: demandWeight,
		demandVolume: demandVolume,
		bestCost:     math.Inf(1),
		usedLines:    make(map[kernel.UUID]bool),
	}
	search.computeSuffixCapacity()
	search.explore(0, 0, 0, 0, nil)

	if math.IsInf(search.bestCost, 1) {
		return FleetPlan{}, ErrNoFeasibleAssignment
	}

	schedule := make([]TrainLineAssignment, len(search.bestSchedule))
	copy(schedule, search.bestSchedule)
	return FleetPlan{TotalCost: search.bestCost, Schedule: schedule}, nil
}

// trainCandidate is one train together with the lines it may run on.
type trainCandidate struct {
	train *train.Train
	lines []kernel.UUID
}

// eligibleCandidates intersects each train's registered lines with the lines
// offered for dispatch, dropping trains that cannot run anywhere.
func (a AssignmentOptimizer) eligibleCandidates(
	lines []*line.Line,
	trains []*train.Train,
) []trainCandidate {
	var candidates []trainCandidate
	for _, t := range trains {
		var eligible []kernel.UUID
		for _, l := range lines {
			if t.ServesLine(l.ID()) {
				eligible = append(eligible, l.ID())
			}
		}
		if len(eligible) > 0 {
			candidates = append(candidates, trainCandidate{train: t, lines: eligible})
		}
	}
	return candidates
}

// assignmentSearch is the mutable state of one branch-and-bound run.
type assignmentSearch struct {
	candidates   []trainCandidate
	demandWeight float64
	demandVolume float64

	// suffixWeight[i] / suffixVolume[i] is the total capacity of candidates i..n-1,
	// an upper bound on what the unexplored tail can still contribute.
	suffixWeight []float64
	suffixVolume []float64

	usedLines    map[kernel.UUID]bool
	bestCost     float64
	bestSchedule []TrainLineAssignment
}

func (s *assignmentSearch) computeSuffixCapacity() {
	n := len(s.candidates)
	s.suffixWeight = make([]float64, n+1)
	s.suffixVolume = make([]float64, n+1)
	for i := n - 1; i >= 0; i-- {
		s.suffixWeight[i] = s.suffixWeight[i+1] + s.candidates[i].train.WeightCapacity()
		s.suffixVolume[i] = s.suffixVolume[i+1] + s.candidates[i].train.VolumeCapacity()
	}
}

// explore branches on candidate i: skip it, or run it on one of its free
// eligible lines. Charter costs are positive, so the first moment the current
// selection covers the demand it is a complete candidate plan and deeper
// selections can only cost more.
func (s *assignmentSearch) explore(
	i int,
	weight, volume, cost float64,
	chosen []TrainLineAssignment,
) {
	if weight >= s.demandWeight && volume >= s.demandVolume {
		if cost < s.bestCost {
			s.bestCost = cost
			s.bestSchedule = append([]TrainLineAssignment(nil), chosen...)
		}
		return
	}
	if cost >= s.bestCost {
		return
	}
	if i == len(s.candidates) {
		return
	}
	// Even taking every remaining train cannot cover the demand.
	if weight+s.suffixWeight[i] < s.demandWeight || volume+s.suffixVolume[i] < s.demandVolume {
		return
	}

	candidate := s.candidates[i]
	for _, lineID := range candidate.lines {
		if s.usedLines[lineID] {
			continue
		}

		s.usedLines[lineID] = true
		s.explore(
			i+1,
			weight+candidate.train.WeightCapacity(),
			volume+candidate.train.VolumeCapacity(),
			cost+candidate.train.Cost(),
			append(chosen, TrainLineAssignment{TrainID: candidate.train.ID(), LineID: lineID}),
		)
		s.usedLines[lineID] = false
	}

	s.explore(i+1, weight, volume, cost, chosen)
}
