// Package http exposes the depot operations over a REST API.
// Handlers translate JSON payloads into commands and queries and map
// domain errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"railmail/internal/core/application/usecases/commands"
	"railmail/internal/core/application/usecases/queries"
	"railmail/internal/core/domain/model/kernel"
	"railmail/internal/core/domain/model/parcel"
	"railmail/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createLineHandler     commands.CreateLineCommandHandler
	bidTrainHandler       commands.BidTrainCommandHandler
	withdrawTrainHandler  commands.WithdrawTrainCommandHandler
	depositParcelHandler  commands.DepositParcelCommandHandler
	withdrawParcelHandler commands.WithdrawParcelCommandHandler
	shipTrainHandler      commands.ShipTrainCommandHandler

	// Query handlers
	getAllLinesHandler       queries.GetAllLinesQueryHandler
	getAllTrainsHandler      queries.GetAllTrainsQueryHandler
	getAllParcelsHandler     queries.GetAllParcelsQueryHandler
	planFleetScheduleHandler queries.PlanFleetScheduleQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createLineHandler commands.CreateLineCommandHandler,
	bidTrainHandler commands.BidTrainCommandHandler,
	withdrawTrainHandler commands.WithdrawTrainCommandHandler,
	depositParcelHandler commands.DepositParcelCommandHandler,
	withdrawParcelHandler commands.WithdrawParcelCommandHandler,
	shipTrainHandler commands.ShipTrainCommandHandler,
	getAllLinesHandler queries.GetAllLinesQueryHandler,
	getAllTrainsHandler queries.GetAllTrainsQueryHandler,
	getAllParcelsHandler queries.GetAllParcelsQueryHandler,
	planFleetScheduleHandler queries.PlanFleetScheduleQueryHandler,
) *Server {
	return &Server{
		createLineHandler:        createLineHandler,
		bidTrainHandler:          bidTrainHandler,
		withdrawTrainHandler:     withdrawTrainHandler,
		depositParcelHandler:     depositParcelHandler,
		withdrawParcelHandler:    withdrawParcelHandler,
		shipTrainHandler:         shipTrainHandler,
		getAllLinesHandler:       getAllLinesHandler,
		getAllTrainsHandler:      getAllTrainsHandler,
		getAllParcelsHandler:     getAllParcelsHandler,
		planFleetScheduleHandler: planFleetScheduleHandler,
	}
}

// RegisterRoutes attaches all API endpoints to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/lines", s.CreateLine)
	api.GET("/lines", s.GetLines)

	api.POST("/trains", s.BidTrain)
	api.GET("/trains", s.GetTrains)
	api.DELETE("/trains/:id", s.WithdrawTrain)
	api.POST("/trains/:id/ship", s.ShipTrain)

	api.POST("/parcels", s.DepositParcel)
	api.GET("/parcels", s.GetParcels)
	api.DELETE("/parcels/:id", s.WithdrawParcel)

	api.GET("/fleet-plan", s.GetFleetPlan)
}

// CreateLine handles POST /api/v1/lines - registers a new rail line.
func (s *Server) CreateLine(ctx echo.Context) error {
	var newLine NewLine
	if err := ctx.Bind(&newLine); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateLineCommand(newLine.Name, newLine.Description)
	if err != nil {
		return badRequest(ctx, "Invalid line data: "+err.Error())
	}

	if handleErr := s.createLineHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to create line")
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetLines handles GET /api/v1/lines - retrieves all registered lines.
func (s *Server) GetLines(ctx echo.Context) error {
	query := queries.NewGetAllLinesQuery()

	lines, err := s.getAllLinesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve lines")
	}

	response := make([]Line, len(lines))
	for i, l := range lines {
		response[i] = Line{
			ID:          l.ID.Bytes(),
			Name:        l.Name,
			Description: l.Description,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// BidTrain handles POST /api/v1/trains - bids a train into the pool.
func (s *Server) BidTrain(ctx echo.Context) error {
	var newTrain NewTrain
	if err := ctx.Bind(&newTrain); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewBidTrainCommand(
		newTrain.Name,
		newTrain.Cost,
		newTrain.WeightCapacity,
		newTrain.VolumeCapacity,
		newTrain.Lines,
	)
	if err != nil {
		return badRequest(ctx, "Invalid train data: "+err.Error())
	}

	if handleErr := s.bidTrainHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to bid train")
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetTrains handles GET /api/v1/trains - retrieves the whole train pool.
func (s *Server) GetTrains(ctx echo.Context) error {
	query := queries.NewGetAllTrainsQuery()

	trains, err := s.getAllTrainsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve trains")
	}

	response := make([]Train, len(trains))
	for i, t := range trains {
		response[i] = Train{
			ID:             t.ID.Bytes(),
			Name:           t.Name,
			Cost:           t.Cost,
			WeightCapacity: t.WeightCapacity,
			VolumeCapacity: t.VolumeCapacity,
			Status:         t.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// WithdrawTrain handles DELETE /api/v1/trains/:id - pulls an open train out
// of the pool.
func (s *Server) WithdrawTrain(ctx echo.Context) error {
	trainID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid train id")
	}

	cmd, err := commands.NewWithdrawTrainCommand(trainID)
	if err != nil {
		return badRequest(ctx, "Invalid train data: "+err.Error())
	}

	if handleErr := s.withdrawTrainHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to withdraw train")
	}

	return ctx.NoContent(http.StatusOK)
}

// ShipTrain handles POST /api/v1/trains/:id/ship - books the train, packs
// pending parcels, and departs the shipment.
func (s *Server) ShipTrain(ctx echo.Context) error {
	trainID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid train id")
	}

	var shipTrain ShipTrain
	if err := ctx.Bind(&shipTrain); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	lineID, err := kernel.UUIDFromBytes(shipTrain.LineID[:])
	if err != nil {
		return badRequest(ctx, "Invalid line id")
	}

	cmd, err := commands.NewShipTrainCommand(trainID, lineID, shipTrain.CostPerWeight)
	if err != nil {
		return badRequest(ctx, "Invalid shipping data: "+err.Error())
	}

	dispatched, err := s.shipTrainHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err, "Failed to ship train")
	}

	response := Shipment{
		ID:          dispatched.ID().Bytes(),
		TrainID:     dispatched.TrainID().Bytes(),
		LineID:      dispatched.LineID().Bytes(),
		ParcelCount: len(dispatched.Parcels()),
		TotalWeight: dispatched.Weight(),
		Revenue:     dispatched.Revenue(),
	}
	if departed := dispatched.DepartureDate(); departed != nil {
		response.DepartureDate = departed.Format(time.RFC3339)
	}
	if arrival := dispatched.ArrivalDate(); arrival != nil {
		response.ArrivalDate = arrival.Format(time.RFC3339)
	}
	if rate := dispatched.CostPerWeight(); rate != nil {
		response.CostPerWeight = *rate
	}

	return ctx.JSON(http.StatusOK, response)
}

// DepositParcel handles POST /api/v1/parcels - deposits a parcel at the depot.
func (s *Server) DepositParcel(ctx echo.Context) error {
	var newParcel NewParcel
	if err := ctx.Bind(&newParcel); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewDepositParcelCommand(
		newParcel.Label,
		newParcel.Description,
		newParcel.Weight,
		newParcel.Volume,
	)
	if err != nil {
		return badRequest(ctx, "Invalid parcel data: "+err.Error())
	}

	if handleErr := s.depositParcelHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to deposit parcel")
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetParcels handles GET /api/v1/parcels - retrieves all parcels with their
// derived status.
func (s *Server) GetParcels(ctx echo.Context) error {
	query := queries.NewGetAllParcelsQuery()

	parcels, err := s.getAllParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve parcels")
	}

	response := make([]Parcel, len(parcels))
	for i, p := range parcels {
		response[i] = Parcel{
			ID:     p.ID.Bytes(),
			Label:  p.Label,
			Weight: p.Weight,
			Volume: p.Volume,
			Cost:   p.Cost,
			Status: p.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// WithdrawParcel handles DELETE /api/v1/parcels/:id - returns a pending
// parcel to its sender.
func (s *Server) WithdrawParcel(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid parcel id")
	}

	cmd, err := commands.NewWithdrawParcelCommand(parcelID)
	if err != nil {
		return badRequest(ctx, "Invalid parcel data: "+err.Error())
	}

	if handleErr := s.withdrawParcelHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return domainError(ctx, handleErr, "Failed to withdraw parcel")
	}

	return ctx.NoContent(http.StatusOK)
}

// GetFleetPlan handles GET /api/v1/fleet-plan - runs the advisory
// minimum-cost assignment of open trains to lines. An infeasible pool is a
// normal 200 response with feasible=false.
func (s *Server) GetFleetPlan(ctx echo.Context) error {
	query := queries.NewPlanFleetScheduleQuery()

	plan, err := s.planFleetScheduleHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to plan fleet schedule")
	}

	response := FleetPlan{
		Feasible:    plan.Feasible,
		TotalCost:   plan.TotalCost,
		Assignments: make([]FleetPlanAssignment, len(plan.Assignments)),
	}
	for i, a := range plan.Assignments {
		response.Assignments[i] = FleetPlanAssignment{
			TrainID:   a.TrainID.Bytes(),
			TrainName: a.TrainName,
			LineID:    a.LineID.Bytes(),
			LineName:  a.LineName,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// domainError maps a use case failure onto an HTTP status code.
// Missing aggregates map to 404, rejected requests to 400, and state
// conflicts (occupied lines, empty pools, finished trains) to 409.
func domainError(ctx echo.Context, err error, message string) error {
	var notFoundErr *errs.ObjectNotFoundError
	var valueErr *errs.ValueIsInvalidError

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &notFoundErr):
		status = http.StatusNotFound
	case errors.Is(err, commands.ErrLineNotValid),
		errors.Is(err, commands.ErrLinesNotFound):
		status = http.StatusBadRequest
	case errors.Is(err, commands.ErrLineNotAvailable),
		errors.Is(err, commands.ErrNoParcelsToLoad),
		errors.Is(err, commands.ErrFailedToLoadParcels),
		errors.Is(err, parcel.ErrParcelNotPending),
		errors.Is(err, parcel.ErrParcelAlreadyAssigned),
		errors.As(err, &valueErr):
		status = http.StatusConflict
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: message + ": " + err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
