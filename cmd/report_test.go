package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	inventoryEntity "supplysense/model/entity/inventory"
	salesEntity "supplysense/model/entity/sales"
	"supplysense/model/testdb"
	"supplysense/service/fulfilment"
)

func TestPrintBalance(t *testing.T) {
	db := testdb.Open(t)
	db.Create(&inventoryEntity.InventoryRecord{Item: "Milk", Warehouse: "chennai", OnHand: 30, WIP: 10, Safety: 50})
	db.Create(&salesEntity.Order{OrderID: "o1", Item: "Milk", Qty: 60})

	out := &bytes.Buffer{}
	if err := printBalance(context.Background(), out, db, "", false); err != nil {
		t.Fatalf("printBalance: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2\n%s", len(lines), out.String())
	}
	fields := strings.Fields(lines[1])
	if fields[0] != "Milk" || fields[4] != "-20" || fields[6] != "expedite" {
		t.Errorf("row = %v", fields)
	}
}

func TestPrintPlan_JSON(t *testing.T) {
	db := testdb.Open(t)
	db.Create(&inventoryEntity.InventoryRecord{Item: "Rice", Warehouse: "main", OnHand: 40})
	db.Create(&inventoryEntity.SupplyPoolEntry{Source: "Agro Co", Item: "Rice", AvailableQty: 30})

	out := &bytes.Buffer{}
	if err := printPlan(context.Background(), out, db, "Rice", 100, true); err != nil {
		t.Fatalf("printPlan: %v", err)
	}
	var plan fulfilment.Plan
	if err := json.Unmarshal(out.Bytes(), &plan); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if plan.Allocated() != 70 || plan.Shortage != 30 || len(plan.Allocations) != 2 {
		t.Errorf("plan = %+v", plan)
	}
}

func TestRunImport(t *testing.T) {
	db := testdb.Open(t)
	importTable, importBatch, importCharset = "inventory", 100, ""
	csv := "Product,Warehouse,Stock,WIP,Safety\nMilk,main,120,10,50\nBread,main,abc,0,20\n"

	out := &bytes.Buffer{}
	if err := runImport(context.Background(), out, db, strings.NewReader(csv)); err != nil {
		t.Fatalf("runImport: %v", err)
	}
	if !strings.Contains(out.String(), "Imported:       1") {
		t.Errorf("report:\n%s", out.String())
	}
	var n int64
	db.Model(&inventoryEntity.InventoryRecord{}).Count(&n)
	if n != 1 {
		t.Errorf("inventory rows = %d, want 1", n)
	}

	importTable = "widgets"
	if err := runImport(context.Background(), out, db, strings.NewReader(csv)); err == nil {
		t.Error("expected error for unknown table")
	}
}
