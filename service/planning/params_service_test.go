package planning

import (
	"context"
	"errors"
	"testing"

	planningEntity "supplysense/model/entity/planning"
	"supplysense/model/testdb"
)

func TestNormalizePersona(t *testing.T) {
	cases := map[string]string{
		"":         DefaultPersona,
		"  ":       DefaultPersona,
		"Kavitha":  "kavitha",
		" ARUN ":   "arun",
		"supplier": "supplier",
	}
	for in, want := range cases {
		if got := NormalizePersona(in); got != want {
			t.Errorf("NormalizePersona(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParamsService_ResolveDefaults(t *testing.T) {
	svc := NewParamsService(testdb.Open(t))
	p, err := svc.Resolve(context.Background(), "Rajesh")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if p.Persona != "rajesh" || p.SafetyStock != 150 || p.LeadTime != 5 || p.MOQ != 200 {
		t.Errorf("defaults = %+v, want rajesh 150/5/200", p)
	}
}

func TestParamsService_SaveThenResolve(t *testing.T) {
	svc := NewParamsService(testdb.Open(t))
	ctx := context.Background()
	if _, err := svc.Save(ctx, planningEntity.PlanningParams{Persona: "Arun", SafetyStock: 300, LeadTime: 2, MOQ: 50}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	p, err := svc.Resolve(ctx, "arun")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if p.SafetyStock != 300 || p.LeadTime != 2 || p.MOQ != 50 {
		t.Errorf("resolved = %+v, want 300/2/50", p)
	}
}

func TestParamsService_SaveRejectsNegative(t *testing.T) {
	svc := NewParamsService(testdb.Open(t))
	_, err := svc.Save(context.Background(), planningEntity.PlanningParams{Persona: "arun", SafetyStock: -1})
	if !errors.Is(err, ErrInvalidParams) {
		t.Errorf("err = %v, want ErrInvalidParams", err)
	}
}
