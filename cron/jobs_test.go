package cron

import (
	"testing"

	"supplysense/core/events"
	inventoryEntity "supplysense/model/entity/inventory"
	salesEntity "supplysense/model/entity/sales"
	"supplysense/model/testdb"
)

func TestBuiltinJobs_Schedules(t *testing.T) {
	db := testdb.Open(t)
	jobs, err := BuiltinJobs(db)
	if err != nil {
		t.Fatalf("BuiltinJobs: %v", err)
	}
	for name, want := range map[string]string{
		"stockoutalertjob": "@every 5m",
		"balancewarmjob":   "@every 1m",
	} {
		j, ok := jobs[name]
		if !ok {
			t.Fatalf("%s missing", name)
		}
		if j.Schedule != want {
			t.Errorf("%s schedule = %q, want %q", name, j.Schedule, want)
		}
	}
}

func TestBuiltinJobs_StockoutAlert(t *testing.T) {
	db := testdb.Open(t)
	db.Create(&inventoryEntity.InventoryRecord{Item: "Bread", Warehouse: "main", OnHand: 10, Safety: 20})
	db.Create(&salesEntity.Order{OrderID: "o1", Item: "Bread", Qty: 40})

	jobs, err := BuiltinJobs(db)
	if err != nil {
		t.Fatalf("BuiltinJobs: %v", err)
	}
	before := len(events.Default().Recent(0))
	jobs["stockoutalertjob"].Run()
	jobs["balancewarmjob"].Run("default")

	recent := events.Default().Recent(0)
	if len(recent) != before+1 {
		t.Fatalf("events = %d, want %d", len(recent), before+1)
	}
	if recent[len(recent)-1].Type != events.TypeStockout {
		t.Errorf("type = %q, want stockout", recent[len(recent)-1].Type)
	}
}

func TestPersonas(t *testing.T) {
	ps := Personas()
	if len(ps) != 5 {
		t.Fatalf("Personas = %v", ps)
	}
	for i := 1; i < len(ps); i++ {
		if ps[i-1] > ps[i] {
			t.Errorf("not sorted: %v", ps)
		}
	}
}
