package fulfilment

import (
	"context"
	"errors"
	"testing"

	"supplysense/core/events"
	inventoryEntity "supplysense/model/entity/inventory"
	planningEntity "supplysense/model/entity/planning"
	"supplysense/model/testdb"
)

func seed(t *testing.T) (*Service, *events.Bus) {
	t.Helper()
	db := testdb.Open(t)
	db.Create(&inventoryEntity.InventoryRecord{Item: "Milk", Warehouse: "chennai", OnHand: 30})
	db.Create(&inventoryEntity.InventoryRecord{Item: "Milk", Warehouse: "madurai", OnHand: 10})
	db.Create(&inventoryEntity.SupplyPoolEntry{Source: "ABC Foods", Item: "Milk", AvailableQty: 50})
	db.Create(&inventoryEntity.SupplyPoolEntry{Source: "XYZ Dairy", Item: "Milk", AvailableQty: 80})

	svc, err := NewService(db)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	bus := events.NewBus(nil)
	return svc.WithBus(bus), bus
}

func TestService_Plan(t *testing.T) {
	svc, _ := seed(t)
	p, err := svc.Plan(context.Background(), "Milk", 100)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(p.Allocations) != 3 {
		t.Fatalf("allocations = %+v", p.Allocations)
	}
	if p.Allocations[0].Qty != 40 || p.Allocations[1].Qty != 50 || p.Allocations[2].Qty != 10 {
		t.Errorf("quantities = %d/%d/%d, want 40/50/10",
			p.Allocations[0].Qty, p.Allocations[1].Qty, p.Allocations[2].Qty)
	}

	if _, err := svc.Plan(context.Background(), " ", 10); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("blank item err = %v, want ErrUnknownItem", err)
	}
}

func TestService_Purchase(t *testing.T) {
	svc, bus := seed(t)
	ctx := context.Background()

	p, err := svc.Purchase(ctx, "Milk", 70)
	if err != nil {
		t.Fatalf("Purchase: %v", err)
	}
	for _, a := range p.Allocations {
		if a.Source == OwnWarehouseSource {
			t.Errorf("purchase allocated from own warehouse: %+v", a)
		}
	}
	if p.Allocated() != 70 || p.Shortage != 0 {
		t.Errorf("allocated/shortage = %d/%d, want 70/0", p.Allocated(), p.Shortage)
	}

	pool, _ := svc.pool.ListByItem(ctx, "Milk")
	if pool[0].AvailableQty != 0 || pool[1].AvailableQty != 60 {
		t.Errorf("pool = %d/%d, want 0/60", pool[0].AvailableQty, pool[1].AvailableQty)
	}
	inv, _ := svc.inventory.ListByItem(ctx, "Milk")
	if inv[0].OnHand != 100 || inv[1].OnHand != 10 {
		t.Errorf("inventory = %d/%d, want 100/10", inv[0].OnHand, inv[1].OnHand)
	}

	tasks, _ := svc.audit.Tasks(ctx)
	if len(tasks) != 1 || tasks[0].Task != "Purchased 70 Milk" || tasks[0].Status != planningEntity.TaskCompleted {
		t.Errorf("tasks = %+v", tasks)
	}
	if evs := bus.Recent(0); len(evs) != 1 || evs[0].Type != events.TypePurchase {
		t.Errorf("events = %+v, want one purchase", evs)
	}
}

func TestService_PurchaseShortageAndNewItem(t *testing.T) {
	svc, _ := seed(t)
	ctx := context.Background()
	svc.db.Create(&inventoryEntity.SupplyPoolEntry{Source: "Sweet Co", Item: "Sugar", AvailableQty: 25})

	p, err := svc.Purchase(ctx, "Sugar", 40)
	if err != nil {
		t.Fatalf("Purchase: %v", err)
	}
	if p.Allocated() != 25 || p.Shortage != 15 {
		t.Errorf("allocated/shortage = %d/%d, want 25/15", p.Allocated(), p.Shortage)
	}
	inv, _ := svc.inventory.ListByItem(ctx, "Sugar")
	if len(inv) != 1 || inv[0].Warehouse != "main" || inv[0].OnHand != 25 {
		t.Errorf("sugar inventory = %+v", inv)
	}
}

func TestService_PurchaseNothingAvailable(t *testing.T) {
	svc, bus := seed(t)
	p, err := svc.Purchase(context.Background(), "Salt", 10)
	if err != nil {
		t.Fatalf("Purchase: %v", err)
	}
	if p.Shortage != 10 || len(p.Allocations) != 0 {
		t.Errorf("plan = %+v, want full shortage", p)
	}
	tasks, _ := svc.audit.Tasks(context.Background())
	if len(tasks) != 0 {
		t.Errorf("tasks = %+v, want none", tasks)
	}
	if len(bus.Recent(0)) != 0 {
		t.Error("event published for empty purchase")
	}
}

func TestService_PurchaseRejectsBadInput(t *testing.T) {
	svc, _ := seed(t)
	if _, err := svc.Purchase(context.Background(), "Milk", 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("qty 0 err = %v, want ErrInvalidQuantity", err)
	}
	if _, err := svc.Purchase(context.Background(), "", 5); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("blank item err = %v, want ErrUnknownItem", err)
	}
}
