// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"railmail/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// LineRepoFactory provides access to the line repository within a transaction.
	LineRepoFactory interface {
		LineRepository() ports.LineRepository
	}

	// TrainRepoFactory provides access to the train repository within a transaction.
	TrainRepoFactory interface {
		TrainRepository() ports.TrainRepository
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// LineUoW manages transactions for line-only operations.
	LineUoW interface {
		TxManager
		LineRepoFactory
	}

	// LineUoWFactory creates new line unit of work instances.
	LineUoWFactory interface {
		Create() LineUoW
	}

	// TrainUoW manages transactions for train bidding and withdrawal.
	// Bidding resolves line names, so the line repository rides along.
	TrainUoW interface {
		TxManager
		TrainRepoFactory
		LineRepoFactory
	}

	// TrainUoWFactory creates new train unit of work instances.
	TrainUoWFactory interface {
		Create() TrainUoW
	}

	// ParcelUoW manages transactions for parcel-only operations.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// ShipUoW manages the transaction of a train departure, which touches
	// the train, its line, the packed parcels, and the new shipment as one
	// atomic aggregate graph.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   trainRepo := uow.TrainRepository()
	//   parcelRepo := uow.ParcelRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	ShipUoW interface {
		TxManager
		TrainRepoFactory
		LineRepoFactory
		ParcelRepoFactory
		ShipmentRepoFactory
	}

	// ShipUoWFactory creates new unit of work instances for train departures.
	ShipUoWFactory interface {
		Create() ShipUoW
	}
)
