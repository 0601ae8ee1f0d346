package planning

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"supplysense/config"
	planningEntity "supplysense/model/entity/planning"
	planningRepo "supplysense/model/repository/planning"
)

// DefaultPersona is used when a request names no persona.
const DefaultPersona = "default"

// Known personas and the concern each workspace focuses on.
var Personas = map[string]string{
	"rajesh":   "Profit & cash flow risk",
	"kavitha":  "Demand vs production mismatch",
	"arun":     "Space & expiry risk",
	"supplier": "Unpredictable purchase orders",
}

var ErrInvalidParams = errors.New("invalid planning parameters")

// NormalizePersona lowercases and trims a persona key.
func NormalizePersona(persona string) string {
	p := strings.ToLower(strings.TrimSpace(persona))
	if p == "" {
		return DefaultPersona
	}
	return p
}

// Defaults returns the configured fallback parameters for persona.
func Defaults(persona string) planningEntity.PlanningParams {
	cfg := config.App()
	return planningEntity.PlanningParams{
		Persona:     NormalizePersona(persona),
		SafetyStock: cfg.DefaultSafetyStock,
		LeadTime:    cfg.DefaultLeadTime,
		MOQ:         cfg.DefaultMOQ,
	}
}

type ParamsService struct {
	repo *planningRepo.ParamsRepository
}

func NewParamsService(db *gorm.DB) *ParamsService {
	return &ParamsService{repo: planningRepo.NewParamsRepository(db)}
}

// Resolve returns the saved parameters of persona, or the defaults when none were saved.
func (s *ParamsService) Resolve(ctx context.Context, persona string) (planningEntity.PlanningParams, error) {
	persona = NormalizePersona(persona)
	p, found, err := s.repo.Find(ctx, persona)
	if err != nil {
		return planningEntity.PlanningParams{}, fmt.Errorf("load planning params: %w", err)
	}
	if !found {
		return Defaults(persona), nil
	}
	return *p, nil
}

// Save validates and stores parameters for p.Persona.
func (s *ParamsService) Save(ctx context.Context, p planningEntity.PlanningParams) (planningEntity.PlanningParams, error) {
	p.Persona = NormalizePersona(p.Persona)
	if p.SafetyStock < 0 || p.LeadTime < 0 || p.MOQ < 0 {
		return p, fmt.Errorf("%w: values must not be negative", ErrInvalidParams)
	}
	p.ID = 0
	if err := s.repo.Save(ctx, &p); err != nil {
		return p, fmt.Errorf("save planning params: %w", err)
	}
	return p, nil
}
