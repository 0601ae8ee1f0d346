package planning

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	planningEntity "supplysense/model/entity/planning"
)

type ParamsRepository struct {
	db *gorm.DB
}

func NewParamsRepository(db *gorm.DB) *ParamsRepository {
	return &ParamsRepository{db: db}
}

// Find returns the saved parameters of a persona; found is false when none were saved.
func (r *ParamsRepository) Find(ctx context.Context, persona string) (p *planningEntity.PlanningParams, found bool, err error) {
	var row planningEntity.PlanningParams
	err = r.db.WithContext(ctx).Where("persona = ?", persona).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &row, true, nil
}

// Save replaces the parameters of p.Persona.
func (r *ParamsRepository) Save(ctx context.Context, p *planningEntity.PlanningParams) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "persona"}},
		DoUpdates: clause.AssignmentColumns([]string{"safety_stock", "lead_time", "moq"}),
	}).Create(p).Error
}
