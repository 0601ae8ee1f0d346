package sales

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is one customer order line. Orders are append-only.
type Order struct {
	ID        uint            `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	OrderID   string          `gorm:"column:order_id;type:varchar(64);not null;index" json:"order_id"`
	Date      time.Time       `gorm:"column:date" json:"date"`
	Customer  string          `gorm:"column:customer;type:varchar(128)" json:"customer"`
	City      string          `gorm:"column:city;type:varchar(64)" json:"city"`
	Channel   string          `gorm:"column:channel;type:varchar(32)" json:"channel"`
	Item      string          `gorm:"column:item;type:varchar(128);not null;index" json:"item"`
	Category  string          `gorm:"column:category;type:varchar(64)" json:"category"`
	Qty       int64           `gorm:"column:qty;not null;default:0" json:"qty"`
	UnitPrice decimal.Decimal `gorm:"column:unit_price;type:decimal(12,2);not null;default:0" json:"unit_price"`
	Priority  string          `gorm:"column:priority;type:varchar(16)" json:"priority"`
}

func (Order) TableName() string {
	return "orders"
}
