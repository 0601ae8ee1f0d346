package planning

import (
	"context"
	"testing"

	planningEntity "supplysense/model/entity/planning"
	"supplysense/model/testdb"
)

func TestParamsRepository_FindSave(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	repo := NewParamsRepository(db)

	_, found, err := repo.Find(ctx, "kavitha")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if found {
		t.Fatal("Find before Save: want not found")
	}

	if err := repo.Save(ctx, &planningEntity.PlanningParams{Persona: "kavitha", SafetyStock: 200, LeadTime: 4, MOQ: 100}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Save(ctx, &planningEntity.PlanningParams{Persona: "kavitha", SafetyStock: 250, LeadTime: 6, MOQ: 150}); err != nil {
		t.Fatalf("Save again: %v", err)
	}
	p, found, err := repo.Find(ctx, "kavitha")
	if err != nil || !found {
		t.Fatalf("Find after Save: %v, found=%v", err, found)
	}
	if p.SafetyStock != 250 || p.LeadTime != 6 || p.MOQ != 150 {
		t.Errorf("params = %+v, want 250/6/150", p)
	}
	var n int64
	db.Model(&planningEntity.PlanningParams{}).Count(&n)
	if n != 1 {
		t.Errorf("rows = %d, want 1", n)
	}
}

func TestAuditRepository_Actions(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	repo := NewAuditRepository(db)
	repo.AppendAction(ctx, &planningEntity.ActionLogEntry{Action: "expedite supplier", Item: "Milk", Decision: planningEntity.DecisionApproved})
	repo.AppendAction(ctx, &planningEntity.ActionLogEntry{Action: "run promotion", Item: "Rice", Decision: planningEntity.DecisionRejected})

	rows, err := repo.Actions(ctx, 1)
	if err != nil {
		t.Fatalf("Actions: %v", err)
	}
	if len(rows) != 1 || rows[0].Item != "Rice" {
		t.Errorf("latest action = %+v, want Rice", rows)
	}
	if rows[0].Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
}
