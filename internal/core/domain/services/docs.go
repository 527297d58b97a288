// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the parcel-train system.
// It implements business workflows that don't naturally belong to a single
// aggregate root.
//
// The package includes:
//   - CapacityPacker: greedy first-come-first-served parcel selection for one train
//   - CostAllocator: weight-proportional pricing of a shipment's manifest
//   - AssignmentOptimizer: fleet-wide minimum-cost train-to-line assignment
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design principles.
package services
