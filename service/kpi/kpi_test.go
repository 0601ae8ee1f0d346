package kpi

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	inventoryEntity "supplysense/model/entity/inventory"
	salesEntity "supplysense/model/entity/sales"
	"supplysense/model/testdb"
	"supplysense/service/capacity"
)

func TestCompute(t *testing.T) {
	orders := []salesEntity.Order{
		{Item: "Milk", Qty: 3, UnitPrice: decimal.RequireFromString("45.50")},
		{Item: "Rice", Qty: 2, UnitPrice: decimal.RequireFromString("60")},
	}
	inv := []inventoryEntity.InventoryRecord{
		{Item: "Milk", OnHand: 10, UnitCost: decimal.RequireFromString("30.25")},
		{Item: "Rice", OnHand: 4},
	}
	s := Compute(orders, inv, capacity.Report{})
	if !s.Revenue.Equal(decimal.RequireFromString("256.5")) {
		t.Errorf("revenue = %s, want 256.5", s.Revenue)
	}
	if !s.InventoryValue.Equal(decimal.RequireFromString("302.5")) {
		t.Errorf("inventory value = %s, want 302.5", s.InventoryValue)
	}
	if s.ServiceLevel != ServiceLevelWithOrders || s.FactoryLoad != 0 {
		t.Errorf("summary = %+v", s)
	}
}

func TestCompute_NoOrders(t *testing.T) {
	s := Compute(nil, nil, capacity.Report{})
	if !s.Revenue.IsZero() || s.ServiceLevel != 0 || s.Orders != 0 {
		t.Errorf("summary = %+v, want zeros", s)
	}
}

func TestService_Summary(t *testing.T) {
	db := testdb.Open(t)
	db.Create(&salesEntity.Order{OrderID: "o1", Item: "Milk", Qty: 50, UnitPrice: decimal.NewFromInt(2)})
	db.Create(&inventoryEntity.InventoryRecord{Item: "Milk", Warehouse: "main", OnHand: 5, UnitCost: decimal.NewFromInt(3)})
	db.Create(&inventoryEntity.Capacity{Machine: "M1", DailyCapacity: 99})

	svc, err := NewService(db)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	s, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if !s.Revenue.Equal(decimal.NewFromInt(100)) || !s.InventoryValue.Equal(decimal.NewFromInt(15)) {
		t.Errorf("money = %s / %s, want 100 / 15", s.Revenue, s.InventoryValue)
	}
	if s.FactoryLoad != 50 || s.ServiceLevel != 96 {
		t.Errorf("summary = %+v, want load 50 service 96", s)
	}
}
