package inventory

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	inventoryEntity "supplysense/model/entity/inventory"
	"supplysense/model/testdb"
)

func TestInventoryRepository_OwnedStock(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	repo, err := NewInventoryRepository(db)
	if err != nil {
		t.Fatalf("NewInventoryRepository: %v", err)
	}
	db.Create(&inventoryEntity.InventoryRecord{Item: "Milk", Warehouse: "chennai", OnHand: 40})
	db.Create(&inventoryEntity.InventoryRecord{Item: "Milk", Warehouse: "madurai", OnHand: 25})
	db.Create(&inventoryEntity.InventoryRecord{Item: "Rice", Warehouse: "chennai", OnHand: 10})

	got, err := repo.OwnedStock(ctx, "Milk")
	if err != nil {
		t.Fatalf("OwnedStock: %v", err)
	}
	if got != 65 {
		t.Errorf("OwnedStock(Milk) = %d, want 65", got)
	}
	got, err = repo.OwnedStock(ctx, "Unknown")
	if err != nil {
		t.Fatalf("OwnedStock unknown: %v", err)
	}
	if got != 0 {
		t.Errorf("OwnedStock(Unknown) = %d, want 0", got)
	}
}

func TestInventoryRepository_OwnedStockPostgresPlaceholders(t *testing.T) {
	pg, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost user=supplysense dbname=supplysense sslmode=disable"}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	if err != nil {
		t.Fatalf("open postgres dialector: %v", err)
	}
	repo, _ := NewInventoryRepository(pg)

	var total int64
	stmt := repo.ownedStockQuery(context.Background(), "Milk").Find(&total).Statement
	sql := stmt.SQL.String()
	if !strings.Contains(sql, "item = $1") || strings.Contains(sql, "?") {
		t.Errorf("postgres SQL = %q, want item = $1", sql)
	}
	if len(stmt.Vars) != 1 || stmt.Vars[0] != "Milk" {
		t.Errorf("vars = %v, want [Milk]", stmt.Vars)
	}
}

func TestInventoryRepository_AddOnHand(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	repo, _ := NewInventoryRepository(db)
	db.Create(&inventoryEntity.InventoryRecord{Item: "Milk", Warehouse: "chennai", OnHand: 40})
	db.Create(&inventoryEntity.InventoryRecord{Item: "Milk", Warehouse: "madurai", OnHand: 25})

	if err := repo.AddOnHand(ctx, "Milk", 100); err != nil {
		t.Fatalf("AddOnHand: %v", err)
	}
	rows, _ := repo.ListByItem(ctx, "Milk")
	if rows[0].OnHand != 140 || rows[1].OnHand != 25 {
		t.Errorf("on_hand = %d/%d, want 140/25", rows[0].OnHand, rows[1].OnHand)
	}

	if err := repo.AddOnHand(ctx, "Sugar", 30); err != nil {
		t.Fatalf("AddOnHand new item: %v", err)
	}
	rows, _ = repo.ListByItem(ctx, "Sugar")
	if len(rows) != 1 || rows[0].OnHand != 30 || rows[0].Warehouse != "main" {
		t.Errorf("new item rows = %+v, want one main row with 30", rows)
	}
}

func TestInventoryRepository_Upsert(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	repo, _ := NewInventoryRepository(db)

	first := []inventoryEntity.InventoryRecord{
		{Item: "Oil", Warehouse: "main", OnHand: 10, UnitCost: decimal.NewFromInt(120)},
		{Item: "Eggs", Warehouse: "main", OnHand: 5},
	}
	if err := repo.Upsert(ctx, first, 100); err != nil {
		t.Fatalf("Upsert insert: %v", err)
	}
	second := []inventoryEntity.InventoryRecord{
		{Item: "Oil", Warehouse: "main", OnHand: 99, Safety: 20, UnitCost: decimal.NewFromInt(125)},
	}
	if err := repo.Upsert(ctx, second, 100); err != nil {
		t.Fatalf("Upsert update: %v", err)
	}

	rows, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].OnHand != 99 || rows[0].Safety != 20 {
		t.Errorf("Oil = %+v, want on_hand 99 safety 20", rows[0])
	}
	if !rows[0].UnitCost.Equal(decimal.NewFromInt(125)) {
		t.Errorf("Oil unit_cost = %s, want 125", rows[0].UnitCost)
	}
}

func TestSupplyPoolRepository_Decrement(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	repo := NewSupplyPoolRepository(db)
	entry := inventoryEntity.SupplyPoolEntry{Source: "ABC Foods", Item: "Milk", AvailableQty: 50}
	db.Create(&entry)

	if err := repo.Decrement(ctx, entry.ID, 30); err != nil {
		t.Fatalf("Decrement: %v", err)
	}
	if err := repo.Decrement(ctx, entry.ID, 30); err == nil {
		t.Error("Decrement beyond availability: want error")
	}
	rows, _ := repo.ListByItem(ctx, "Milk")
	if rows[0].AvailableQty != 20 {
		t.Errorf("available_qty = %d, want 20", rows[0].AvailableQty)
	}
}

func TestSupplyPoolRepository_ListByItem_StoreOrder(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	repo := NewSupplyPoolRepository(db)
	for _, src := range []string{"Zeta", "Alpha", "Mid"} {
		db.Create(&inventoryEntity.SupplyPoolEntry{Source: src, Item: "Rice", AvailableQty: 1})
	}
	db.Create(&inventoryEntity.SupplyPoolEntry{Source: "Other", Item: "Milk", AvailableQty: 1})

	rows, err := repo.ListByItem(ctx, "Rice")
	if err != nil {
		t.Fatalf("ListByItem: %v", err)
	}
	want := []string{"Zeta", "Alpha", "Mid"}
	if len(rows) != len(want) {
		t.Fatalf("rows = %d, want %d", len(rows), len(want))
	}
	for i, w := range want {
		if rows[i].Source != w {
			t.Errorf("rows[%d].Source = %s, want %s", i, rows[i].Source, w)
		}
	}
}

func TestReferenceRepository_Suppliers(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	repo := NewReferenceRepository(db)
	err := repo.CreateSuppliers(ctx, []inventoryEntity.Supplier{
		{Supplier: "ABC", Item: "Milk", LeadTime: 3},
		{Supplier: "XYZ", Item: "Rice", LeadTime: 7},
	}, 10)
	if err != nil {
		t.Fatalf("CreateSuppliers: %v", err)
	}
	all, _ := repo.Suppliers(ctx, "")
	if len(all) != 2 {
		t.Errorf("all suppliers = %d, want 2", len(all))
	}
	milk, _ := repo.Suppliers(ctx, "Milk")
	if len(milk) != 1 || milk[0].Supplier != "ABC" {
		t.Errorf("Milk suppliers = %+v", milk)
	}
}
