package planning

// PlanningParams are the per-persona planning defaults.
type PlanningParams struct {
	ID          uint   `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	Persona     string `gorm:"column:persona;type:varchar(32);not null;uniqueIndex" json:"persona"`
	SafetyStock int64  `gorm:"column:safety_stock;not null" json:"safety_stock"`
	LeadTime    int64  `gorm:"column:lead_time;not null" json:"lead_time"`
	MOQ         int64  `gorm:"column:moq;not null" json:"moq"`
}

func (PlanningParams) TableName() string {
	return "planning_params"
}
