package balancing

import (
	"context"
	"sync/atomic"
	"testing"

	"gorm.io/gorm"

	inventoryEntity "supplysense/model/entity/inventory"
	planningEntity "supplysense/model/entity/planning"
	salesEntity "supplysense/model/entity/sales"
	"supplysense/model/testdb"
)

func TestService_Compute(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	db.Create(&inventoryEntity.InventoryRecord{Item: "Milk", Warehouse: "main", OnHand: 100, WIP: 10})
	db.Create(&salesEntity.Order{OrderID: "A", Item: "Milk", Qty: 40})
	db.Create(&planningEntity.PlanningParams{Persona: "kavitha", SafetyStock: 80, LeadTime: 5, MOQ: 200})

	svc, err := NewService(db)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	rep, err := svc.Compute(ctx, "Kavitha")
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if rep.Persona != "kavitha" || rep.SafetyStock != 80 {
		t.Errorf("report persona/safety = %s/%d", rep.Persona, rep.SafetyStock)
	}
	row, ok := rep.Find("Milk")
	if !ok {
		t.Fatal("Milk row missing")
	}
	if row.ProjectedStock != 70 || row.Safety != 80 || row.Action != ActionIncreaseProduction {
		t.Errorf("Milk = %+v, want projected 70 safety 80 increase_production", row)
	}
}

func TestService_ReportCachedUntilInvalidated(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	db.Create(&inventoryEntity.InventoryRecord{Item: "Rice", Warehouse: "main", OnHand: 10, Safety: 5})

	svc, err := NewService(db)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	Invalidate(ctx)
	first, err := svc.Report(ctx, "cache-test")
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	db.Create(&salesEntity.Order{OrderID: "B", Item: "Rice", Qty: 100})

	second, _ := svc.Report(ctx, "cache-test")
	if second != first {
		t.Error("second Report should be served from cache")
	}

	Invalidate(ctx)
	third, _ := svc.Report(ctx, "cache-test")
	row, _ := third.Find("Rice")
	if row.Action != ActionExpedite {
		t.Errorf("after invalidation Rice action = %s, want expedite", row.Action)
	}
	if len(third.Stockouts()) != 1 {
		t.Errorf("stockouts = %d, want 1", len(third.Stockouts()))
	}
}

func TestService_WithThresholds(t *testing.T) {
	db := testdb.Open(t)
	db.Create(&inventoryEntity.InventoryRecord{Item: "Oil", Warehouse: "main", OnHand: 350, Safety: 100})
	svc, _ := NewService(db)

	rep, _ := svc.Compute(context.Background(), "")
	if row, _ := rep.Find("Oil"); row.Action != ActionPromote {
		t.Errorf("default thresholds: Oil = %s, want promote", row.Action)
	}
	rep, _ = svc.WithThresholds(Thresholds{PromoteFactor: 0.5, ReduceFactor: 3}).Compute(context.Background(), "")
	if row, _ := rep.Find("Oil"); row.Action != ActionReduceBatch {
		t.Errorf("0.5/3 thresholds: Oil = %s, want reduce_batch", row.Action)
	}
}

func TestService_ReportNotCachedAcrossConcurrentWrite(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	db.Create(&inventoryEntity.InventoryRecord{Item: "Rice", Warehouse: "main", OnHand: 10, Safety: 100})

	svc, err := NewService(db)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	Invalidate(ctx)

	// A purchase lands right after the inventory read of the first Report.
	var fired atomic.Bool
	err = db.Callback().Query().After("gorm:query").Register("supplysense:concurrent_write", func(tx *gorm.DB) {
		if tx.Statement.Table != "inventory" || !fired.CompareAndSwap(false, true) {
			return
		}
		db.Exec("UPDATE inventory SET on_hand = ? WHERE item = ?", 1000, "Rice")
		Invalidate(ctx)
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}
	t.Cleanup(func() { db.Callback().Query().Remove("supplysense:concurrent_write") })

	first, err := svc.Report(ctx, "write-race")
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if row, _ := first.Find("Rice"); row.OnHand != 10 {
		t.Fatalf("first report on_hand = %d, want the pre-write 10", row.OnHand)
	}

	second, err := svc.Report(ctx, "write-race")
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	row, _ := second.Find("Rice")
	if row.OnHand != 1000 || row.Action != ActionReduceBatch {
		t.Errorf("second report Rice = on_hand %d action %s, want 1000 reduce_batch", row.OnHand, row.Action)
	}
}
