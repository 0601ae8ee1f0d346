package inventory

import "github.com/shopspring/decimal"

// Supplier is static reference data: who supplies an item and on what terms.
type Supplier struct {
	ID          uint            `gorm:"column:id;primaryKey;autoIncrement" json:"id,omitempty"`
	Supplier    string          `gorm:"column:supplier;type:varchar(128);not null" json:"supplier"`
	Item        string          `gorm:"column:item;type:varchar(128);not null;index" json:"item"`
	LeadTime    int64           `gorm:"column:lead_time;not null;default:0" json:"lead_time"`
	MOQ         int64           `gorm:"column:moq;not null;default:0" json:"moq"`
	Reliability float64         `gorm:"column:reliability;not null;default:0" json:"reliability"`
	CostPerUnit decimal.Decimal `gorm:"column:cost_per_unit;type:decimal(12,2);not null;default:0" json:"cost_per_unit"`
	Contact     string          `gorm:"column:contact;type:varchar(64)" json:"contact"`
	Phone       string          `gorm:"column:phone;type:varchar(32)" json:"phone"`
	Email       string          `gorm:"column:email;type:varchar(128)" json:"email"`
}

func (Supplier) TableName() string {
	return "suppliers"
}
