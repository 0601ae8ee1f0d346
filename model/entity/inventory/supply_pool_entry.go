package inventory

// SupplyPoolEntry is an external source able to supply an item at short notice.
type SupplyPoolEntry struct {
	ID           uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id,omitempty"`
	Source       string `gorm:"column:source;type:varchar(128);not null" json:"source"`
	Item         string `gorm:"column:item;type:varchar(128);not null;index" json:"item"`
	AvailableQty int64  `gorm:"column:available_qty;not null;default:0" json:"available_qty"`
	Contact      string `gorm:"column:contact;type:varchar(64)" json:"contact"`
	WhatsApp     string `gorm:"column:whatsapp;type:varchar(64)" json:"whatsapp"`
	Email        string `gorm:"column:email;type:varchar(128)" json:"email"`
}

func (SupplyPoolEntry) TableName() string {
	return "supply_pool"
}
