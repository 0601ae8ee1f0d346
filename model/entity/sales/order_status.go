package sales

import "time"

// Order lifecycle states.
const (
	StatusPending    = "Pending"
	StatusProcessing = "Processing"
	StatusShipped    = "Shipped"
	StatusDelivered  = "Delivered"
)

// ValidStatus reports whether s is a known order status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered:
		return true
	}
	return false
}

// OrderStatus is one entry of an order's status history.
type OrderStatus struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	OrderID    string    `gorm:"column:order_id;type:varchar(64);not null;index" json:"order_id"`
	Status     string    `gorm:"column:status;type:varchar(16);not null" json:"status"`
	LastUpdate time.Time `gorm:"column:last_update;autoCreateTime" json:"last_update"`
}

func (OrderStatus) TableName() string {
	return "order_status"
}
