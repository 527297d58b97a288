package http

import "github.com/google/uuid"

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewLine is the request body for registering a rail line.
type NewLine struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Line is a rail line in API responses.
type Line struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// NewTrain is the request body for bidding a train into the pool.
type NewTrain struct {
	Name           string   `json:"name"`
	Cost           float64  `json:"cost"`
	WeightCapacity float64  `json:"weight_capacity"`
	VolumeCapacity float64  `json:"volume_capacity"`
	Lines          []string `json:"lines"`
}

// Train is a pooled train in API responses.
type Train struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Cost           float64   `json:"cost"`
	WeightCapacity float64   `json:"weight_capacity"`
	VolumeCapacity float64   `json:"volume_capacity"`
	Status         string    `json:"status"`
}

// NewParcel is the request body for depositing a parcel.
type NewParcel struct {
	Label       string  `json:"label"`
	Description string  `json:"description"`
	Weight      float64 `json:"weight"`
	Volume      float64 `json:"volume"`
}

// Parcel is a deposited parcel in API responses.
type Parcel struct {
	ID     uuid.UUID `json:"id"`
	Label  string    `json:"label"`
	Weight float64   `json:"weight"`
	Volume float64   `json:"volume"`
	Cost   *float64  `json:"cost"`
	Status string    `json:"status"`
}

// ShipTrain is the request body for departing a train on a line.
// CostPerWeight overrides the derived rate when set.
type ShipTrain struct {
	LineID        uuid.UUID `json:"line_id"`
	CostPerWeight *float64  `json:"cost_per_weight,omitempty"`
}

// Shipment describes a dispatched train run.
type Shipment struct {
	ID            uuid.UUID `json:"id"`
	TrainID       uuid.UUID `json:"train_id"`
	LineID        uuid.UUID `json:"line_id"`
	DepartureDate string    `json:"departure_date"`
	ArrivalDate   string    `json:"arrival_date"`
	CostPerWeight float64   `json:"cost_per_weight"`
	ParcelCount   int       `json:"parcel_count"`
	TotalWeight   float64   `json:"total_weight"`
	Revenue       float64   `json:"revenue"`
}

// FleetPlanAssignment pairs a recommended train with a line.
type FleetPlanAssignment struct {
	TrainID   uuid.UUID `json:"train_id"`
	TrainName string    `json:"train_name"`
	LineID    uuid.UUID `json:"line_id"`
	LineName  string    `json:"line_name"`
}

// FleetPlan is the outcome of a planning run. Feasible false means no
// selection of open trains covers the pending pool.
type FleetPlan struct {
	Feasible    bool                  `json:"feasible"`
	TotalCost   float64               `json:"total_cost"`
	Assignments []FleetPlanAssignment `json:"assignments"`
}
