package inventory

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	inventoryEntity "supplysense/model/entity/inventory"
)

type SupplyPoolRepository struct {
	db *gorm.DB
}

func NewSupplyPoolRepository(db *gorm.DB) *SupplyPoolRepository {
	return &SupplyPoolRepository{db: db}
}

func (r *SupplyPoolRepository) WithTx(tx *gorm.DB) *SupplyPoolRepository {
	return &SupplyPoolRepository{db: tx}
}

// ListByItem returns the pool rows for an item in store order.
func (r *SupplyPoolRepository) ListByItem(ctx context.Context, item string) ([]inventoryEntity.SupplyPoolEntry, error) {
	var rows []inventoryEntity.SupplyPoolEntry
	err := r.db.WithContext(ctx).Where("item = ?", item).Order("id").Find(&rows).Error
	return rows, err
}

func (r *SupplyPoolRepository) List(ctx context.Context) ([]inventoryEntity.SupplyPoolEntry, error) {
	var rows []inventoryEntity.SupplyPoolEntry
	err := r.db.WithContext(ctx).Order("id").Find(&rows).Error
	return rows, err
}

// Decrement takes qty from one pool row. Fails if the row no longer holds qty.
func (r *SupplyPoolRepository) Decrement(ctx context.Context, id uint, qty int64) error {
	res := r.db.WithContext(ctx).Model(&inventoryEntity.SupplyPoolEntry{}).
		Where("id = ? AND available_qty >= ?", id, qty).
		UpdateColumn("available_qty", gorm.Expr("available_qty - ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("supply pool row %d: insufficient quantity for %d", id, qty)
	}
	return nil
}

func (r *SupplyPoolRepository) CreateInBatches(ctx context.Context, rows []inventoryEntity.SupplyPoolEntry, batchSize int) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(&rows, batchSize).Error
}
