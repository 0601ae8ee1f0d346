package inventory

// Capacity is the daily output of one machine in one warehouse.
type Capacity struct {
	ID            uint    `gorm:"column:id;primaryKey;autoIncrement" json:"id,omitempty"`
	Warehouse     string  `gorm:"column:warehouse;type:varchar(64)" json:"warehouse"`
	Machine       string  `gorm:"column:machine;type:varchar(64)" json:"machine"`
	DailyCapacity int64   `gorm:"column:daily_capacity;not null;default:0" json:"daily_capacity"`
	ShiftHours    float64 `gorm:"column:shift_hours;not null;default:0" json:"shift_hours"`
}

func (Capacity) TableName() string {
	return "capacity"
}
