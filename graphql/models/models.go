package models

import gql "github.com/graph-gophers/graphql-go"

// --- Balance ---

type BalanceReport struct {
	Persona         string
	SafetyStock     int32
	PromoteFactor   float64
	ReduceFactor    float64
	Rows            []*BalanceRow
	Recommendations []*Recommendation
	GeneratedAt     string
}

type BalanceRow struct {
	Item            string
	Warehouse       string
	Category        string
	OnHand          int32
	WIP             int32
	Safety          int32
	ForecastDemand  int32
	AvailableStock  int32
	ProjectedStock  int32
	Action          string
	Recommendations []string
}

type Recommendation struct {
	Action string
	Item   string
	Bucket string
}

// --- Fulfilment ---

type FulfilmentPlan struct {
	Item        string
	Requested   int32
	Allocated   int32
	Shortage    int32
	Allocations []*Allocation
}

type Allocation struct {
	Source       string
	AllocatedQty int32
	Contact      string
}

// --- Insight ---

type CapacityReport struct {
	Demand      int32
	Capacity    int32
	Utilization float64
	Level       *string
	Alerts      []string
}

type Kpis struct {
	Revenue        string
	InventoryValue string
	ServiceLevel   float64
	FactoryLoad    float64
	Orders         int32
}

type ForecastPoint struct {
	Date     string
	Qty      int32
	Forecast *float64
}

// --- Planning ---

type ActionLogEntry struct {
	ID        gql.ID
	Action    string
	Item      string
	Decision  string
	Timestamp string
}

type PlanningParams struct {
	Persona     string
	SafetyStock int32
	LeadTime    int32
	MOQ         int32
	Concern     *string
}
