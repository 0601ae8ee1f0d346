package model

import (
	"fmt"

	"gorm.io/gorm"

	entity "supplysense/model/entity"
	inventoryEntity "supplysense/model/entity/inventory"
	planningEntity "supplysense/model/entity/planning"
	salesEntity "supplysense/model/entity/sales"
)

// Models lists every table managed by SupplySense, in migration order.
func Models() []interface{} {
	return []interface{}{
		&salesEntity.Order{},
		&salesEntity.OrderStatus{},
		&inventoryEntity.InventoryRecord{},
		&inventoryEntity.Supplier{},
		&inventoryEntity.SupplyPoolEntry{},
		&inventoryEntity.Capacity{},
		&planningEntity.PlanningParams{},
		&planningEntity.ActionLogEntry{},
		&planningEntity.Task{},
		&entity.APIToken{},
	}
}

// Migrate creates or updates all tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
