package cmd

import (
	"log"
	"time"

	"railmail/internal/adapters/out/postgres"
	"railmail/internal/core/application/usecases/commands"
	"railmail/internal/core/application/usecases/queries"
	"railmail/internal/core/domain/services"

	"gorm.io/gorm"
)

// CompositionRoot wires use case handlers to their infrastructure.
// Domain services are constructed once and shared; unit of work factories
// hand each command a fresh transaction.
type CompositionRoot struct {
	gormDB          *gorm.DB
	uowFactory      postgres.GormUnitOfWorkFactory
	packer          services.CapacityPacker
	allocator       services.CostAllocator
	optimizer       services.AssignmentOptimizer
	transitDuration time.Duration
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	allocator, err := services.NewCostAllocator(config.ProfitMargin)
	if err != nil {
		log.Fatalf("invalid profit margin: %v", err)
	}

	return CompositionRoot{
		gormDB:          gormDB,
		uowFactory:      *postgres.NewGormUnitOfWorkFactory(gormDB),
		packer:          services.NewCapacityPacker(),
		allocator:       allocator,
		optimizer:       services.NewAssignmentOptimizer(config.OptimizerProblemName, config.OptimizerShiftHours),
		transitDuration: time.Duration(config.TrainTransitHours) * time.Hour,
	}
}

func (c *CompositionRoot) CreateCreateLineCommandHandler() commands.CreateLineCommandHandler {
	var f commands.LineUoWFactory = FuncLineUoWFactory(func() commands.LineUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateLineCommandHandler(f)
}

func (c *CompositionRoot) CreateBidTrainCommandHandler() commands.BidTrainCommandHandler {
	var f commands.TrainUoWFactory = FuncTrainUoWFactory(func() commands.TrainUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBidTrainCommandHandler(f)
}

func (c *CompositionRoot) CreateWithdrawTrainCommandHandler() commands.WithdrawTrainCommandHandler {
	var f commands.TrainUoWFactory = FuncTrainUoWFactory(func() commands.TrainUoW {
		return c.uowFactory.Create()
	})
	return commands.NewWithdrawTrainCommandHandler(f)
}

func (c *CompositionRoot) CreateDepositParcelCommandHandler() commands.DepositParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDepositParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateWithdrawParcelCommandHandler() commands.WithdrawParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewWithdrawParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateShipTrainCommandHandler() commands.ShipTrainCommandHandler {
	var f commands.ShipUoWFactory = FuncShipUoWFactory(func() commands.ShipUoW {
		return c.uowFactory.Create()
	})
	return commands.NewShipTrainCommandHandler(f, c.packer, c.allocator, c.transitDuration)
}

func (c *CompositionRoot) CreateGetAllLinesQueryHandler() queries.GetAllLinesQueryHandler {
	return queries.NewGetAllLinesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllTrainsQueryHandler() queries.GetAllTrainsQueryHandler {
	return queries.NewGetAllTrainsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllParcelsQueryHandler() queries.GetAllParcelsQueryHandler {
	return queries.NewGetAllParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreatePlanFleetScheduleQueryHandler() queries.PlanFleetScheduleQueryHandler {
	// The planner only reads, so the repositories run outside a transaction.
	uow := c.uowFactory.Create()
	return queries.NewPlanFleetScheduleQueryHandler(
		uow.LineRepository(),
		uow.TrainRepository(),
		uow.ParcelRepository(),
		c.optimizer,
	)
}

type FuncLineUoWFactory func() commands.LineUoW

func (f FuncLineUoWFactory) Create() commands.LineUoW {
	return f()
}

type FuncTrainUoWFactory func() commands.TrainUoW

func (f FuncTrainUoWFactory) Create() commands.TrainUoW {
	return f()
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncShipUoWFactory func() commands.ShipUoW

func (f FuncShipUoWFactory) Create() commands.ShipUoW {
	return f()
}
