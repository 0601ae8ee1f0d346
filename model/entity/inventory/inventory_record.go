package inventory

import "github.com/shopspring/decimal"

// InventoryRecord represents the inventory table: owned stock of one item in one warehouse.
type InventoryRecord struct {
	ID           uint            `gorm:"column:id;primaryKey;autoIncrement" json:"id,omitempty"`
	Item         string          `gorm:"column:item;type:varchar(128);not null;uniqueIndex:idx_inventory_item_warehouse" json:"item"`
	Warehouse    string          `gorm:"column:warehouse;type:varchar(64);not null;default:'main';uniqueIndex:idx_inventory_item_warehouse" json:"warehouse"`
	Category     string          `gorm:"column:category;type:varchar(64)" json:"category"`
	Supplier     string          `gorm:"column:supplier;type:varchar(128)" json:"supplier"`
	OnHand       int64           `gorm:"column:on_hand;not null;default:0" json:"on_hand"`
	WIP          int64           `gorm:"column:wip;not null;default:0" json:"wip"`
	Safety       int64           `gorm:"column:safety;not null;default:0" json:"safety"`
	ReorderPoint int64           `gorm:"column:reorder_point;not null;default:0" json:"reorder_point"`
	UnitCost     decimal.Decimal `gorm:"column:unit_cost;type:decimal(12,2);not null;default:0" json:"unit_cost"`
}

func (InventoryRecord) TableName() string {
	return "inventory"
}
