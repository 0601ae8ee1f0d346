package capacity

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	inventoryEntity "supplysense/model/entity/inventory"
	inventoryRepo "supplysense/model/repository/inventory"
	salesRepo "supplysense/model/repository/sales"
)

type Level string

const (
	LevelOverloaded Level = "overloaded"
	LevelIdle       Level = "idle"
	LevelBalanced   Level = "balanced"
)

// Utilization bounds, in percent.
const (
	OverloadedAbove = 95.0
	IdleBelow       = 50.0
)

const (
	AlertOverloaded = "Factory overloaded: add extra shift"
	AlertIdle       = "Idle capacity: increase production"
	AlertBalanced   = "Capacity balanced"
)

// Report is the factory load against total order demand.
// An empty report (no Level) means there was nothing to measure.
type Report struct {
	Demand      int64                      `json:"demand"`
	Capacity    int64                      `json:"capacity"`
	Utilization float64                    `json:"utilization"`
	Level       Level                      `json:"level,omitempty"`
	Alerts      []string                   `json:"alerts"`
	Machines    []inventoryEntity.Capacity `json:"machines"`
}

// Empty reports whether no utilization could be measured.
func (r Report) Empty() bool {
	return r.Level == ""
}

// Utilization is demand / (capacity + 1) × 100. The +1 keeps zero capacity finite.
func Utilization(demand, capacity int64) float64 {
	return float64(demand) / float64(capacity+1) * 100
}

// Classify maps a utilization percentage to a level and its alert.
func Classify(util float64) (Level, string) {
	switch {
	case util > OverloadedAbove:
		return LevelOverloaded, AlertOverloaded
	case util < IdleBelow:
		return LevelIdle, AlertIdle
	default:
		return LevelBalanced, AlertBalanced
	}
}

// Evaluate measures machines against demand. Without machines or demand the
// report is empty.
func Evaluate(machines []inventoryEntity.Capacity, demand int64, hasOrders bool) Report {
	rep := Report{Demand: demand, Machines: machines, Alerts: []string{}}
	for _, m := range machines {
		rep.Capacity += m.DailyCapacity
	}
	if len(machines) == 0 || !hasOrders {
		return rep
	}
	rep.Utilization = Utilization(demand, rep.Capacity)
	level, alert := Classify(rep.Utilization)
	rep.Level = level
	rep.Alerts = append(rep.Alerts, alert)
	return rep
}

type Service struct {
	reference *inventoryRepo.ReferenceRepository
	orders    *salesRepo.OrderRepository
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		reference: inventoryRepo.NewReferenceRepository(db),
		orders:    salesRepo.NewOrderRepository(db),
	}
}

func (s *Service) Report(ctx context.Context) (Report, error) {
	machines, err := s.reference.Capacity(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("load capacity: %w", err)
	}
	demand, err := s.orders.DemandByItem(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("load demand: %w", err)
	}
	var total int64
	for _, q := range demand {
		total += q
	}
	return Evaluate(machines, total, len(demand) > 0), nil
}
