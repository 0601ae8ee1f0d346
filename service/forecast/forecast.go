package forecast

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	salesEntity "supplysense/model/entity/sales"
	salesRepo "supplysense/model/repository/sales"
)

// Window is the number of daily points in the trailing mean.
const Window = 7

// Point is the demand of one day and, once Window days are seen, the
// trailing mean ending on that day.
type Point struct {
	Date     time.Time `json:"date"`
	Qty      int64     `json:"qty"`
	Forecast *float64  `json:"forecast"`
}

// Daily groups dated orders by calendar day and computes the trailing mean.
// Fewer than Window dated orders yield no points.
func Daily(orders []salesEntity.Order) []Point {
	var dated int
	byDay := make(map[time.Time]int64)
	for _, o := range orders {
		if o.Date.IsZero() {
			continue
		}
		dated++
		y, m, d := o.Date.Date()
		byDay[time.Date(y, m, d, 0, 0, 0, 0, time.UTC)] += o.Qty
	}
	if dated < Window {
		return []Point{}
	}

	points := make([]Point, 0, len(byDay))
	for day, qty := range byDay {
		points = append(points, Point{Date: day, Qty: qty})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })

	var sum int64
	for i := range points {
		sum += points[i].Qty
		if i >= Window {
			sum -= points[i-Window].Qty
		}
		if i >= Window-1 {
			mean := float64(sum) / Window
			points[i].Forecast = &mean
		}
	}
	return points
}

type Service struct {
	orders *salesRepo.OrderRepository
}

func NewService(db *gorm.DB) *Service {
	return &Service{orders: salesRepo.NewOrderRepository(db)}
}

func (s *Service) Daily(ctx context.Context) ([]Point, error) {
	orders, err := s.orders.List(ctx, 0)
	if err != nil {
		return nil, err
	}
	return Daily(orders), nil
}
