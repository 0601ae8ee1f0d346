package inventory

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	inventoryEntity "supplysense/model/entity/inventory"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) (*InventoryRepository, error) {
	if db == nil {
		return nil, errors.New("inventory repository: nil db")
	}
	return &InventoryRepository{db: db}, nil
}

// WithTx returns a copy of the repository bound to tx.
func (r *InventoryRepository) WithTx(tx *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: tx}
}

// List returns all inventory rows in insertion order.
func (r *InventoryRepository) List(ctx context.Context) ([]inventoryEntity.InventoryRecord, error) {
	var rows []inventoryEntity.InventoryRecord
	err := r.db.WithContext(ctx).Order("id").Find(&rows).Error
	return rows, err
}

// ListByItem returns the rows of one item across warehouses.
func (r *InventoryRepository) ListByItem(ctx context.Context, item string) ([]inventoryEntity.InventoryRecord, error) {
	var rows []inventoryEntity.InventoryRecord
	err := r.db.WithContext(ctx).Where("item = ?", item).Order("id").Find(&rows).Error
	return rows, err
}

// OwnedStock sums on_hand across warehouses for an item.
func (r *InventoryRepository) OwnedStock(ctx context.Context, item string) (int64, error) {
	var total int64
	err := r.ownedStockQuery(ctx, item).Scan(&total).Error
	return total, err
}

func (r *InventoryRepository) ownedStockQuery(ctx context.Context, item string) *gorm.DB {
	return r.db.WithContext(ctx).Model(&inventoryEntity.InventoryRecord{}).
		Where("item = ?", item).
		Select("COALESCE(SUM(on_hand), 0)")
}

// AddOnHand adds qty to the item's first inventory row, creating a row in
// warehouse "main" when the item is not stocked yet.
func (r *InventoryRepository) AddOnHand(ctx context.Context, item string, qty int64) error {
	var rec inventoryEntity.InventoryRecord
	err := r.db.WithContext(ctx).Where("item = ?", item).Order("id").First(&rec).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		rec = inventoryEntity.InventoryRecord{Item: item, Warehouse: "main", OnHand: qty}
		return r.db.WithContext(ctx).Create(&rec).Error
	case err != nil:
		return err
	}
	return r.db.WithContext(ctx).Model(&inventoryEntity.InventoryRecord{}).
		Where("id = ?", rec.ID).
		UpdateColumn("on_hand", gorm.Expr("on_hand + ?", qty)).Error
}

// Upsert inserts rows or updates them on (item, warehouse).
func (r *InventoryRepository) Upsert(ctx context.Context, rows []inventoryEntity.InventoryRecord, batchSize int) error {
	if len(rows) == 0 {
		return nil
	}
	upsert := clause.OnConflict{
		Columns:   []clause.Column{{Name: "item"}, {Name: "warehouse"}},
		DoUpdates: clause.AssignmentColumns([]string{"category", "supplier", "on_hand", "wip", "safety", "reorder_point", "unit_cost"}),
	}
	if err := r.db.WithContext(ctx).Clauses(upsert).CreateInBatches(&rows, batchSize).Error; err != nil {
		return fmt.Errorf("inventory upsert: %w", err)
	}
	return nil
}
