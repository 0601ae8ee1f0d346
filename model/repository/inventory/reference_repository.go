package inventory

import (
	"context"

	"gorm.io/gorm"

	inventoryEntity "supplysense/model/entity/inventory"
)

// ReferenceRepository reads and seeds static reference tables (suppliers, capacity).
type ReferenceRepository struct {
	db *gorm.DB
}

func NewReferenceRepository(db *gorm.DB) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

func (r *ReferenceRepository) Suppliers(ctx context.Context, item string) ([]inventoryEntity.Supplier, error) {
	var rows []inventoryEntity.Supplier
	q := r.db.WithContext(ctx).Order("id")
	if item != "" {
		q = q.Where("item = ?", item)
	}
	err := q.Find(&rows).Error
	return rows, err
}

func (r *ReferenceRepository) Capacity(ctx context.Context) ([]inventoryEntity.Capacity, error) {
	var rows []inventoryEntity.Capacity
	err := r.db.WithContext(ctx).Order("id").Find(&rows).Error
	return rows, err
}

func (r *ReferenceRepository) CreateSuppliers(ctx context.Context, rows []inventoryEntity.Supplier, batchSize int) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(&rows, batchSize).Error
}

func (r *ReferenceRepository) CreateCapacity(ctx context.Context, rows []inventoryEntity.Capacity, batchSize int) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(&rows, batchSize).Error
}
