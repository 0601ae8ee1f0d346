package sales

import (
	"context"

	"gorm.io/gorm"

	salesEntity "supplysense/model/entity/sales"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, o *salesEntity.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OrderRepository) CreateInBatches(ctx context.Context, rows []salesEntity.Order, batchSize int) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(&rows, batchSize).Error
}

// List returns orders in insertion order; limit <= 0 means all.
func (r *OrderRepository) List(ctx context.Context, limit int) ([]salesEntity.Order, error) {
	var rows []salesEntity.Order
	q := r.db.WithContext(ctx).Order("id")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&rows).Error
	return rows, err
}

// Exists reports whether any order line carries orderID.
func (r *OrderRepository) Exists(ctx context.Context, orderID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&salesEntity.Order{}).Where("order_id = ?", orderID).Count(&n).Error
	return n > 0, err
}

// DemandByItem sums ordered quantity per item.
func (r *OrderRepository) DemandByItem(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.WithContext(ctx).Model(&salesEntity.Order{}).
		Select("item, COALESCE(SUM(qty), 0)").
		Group("item").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	demand := make(map[string]int64)
	for rows.Next() {
		var item string
		var qty int64
		if err := rows.Scan(&item, &qty); err != nil {
			return nil, err
		}
		demand[item] = qty
	}
	return demand, rows.Err()
}

// AppendStatus adds a status history entry.
func (r *OrderRepository) AppendStatus(ctx context.Context, s *salesEntity.OrderStatus) error {
	return r.db.WithContext(ctx).Create(s).Error
}

// StatusHistory returns the status entries of an order, oldest first.
func (r *OrderRepository) StatusHistory(ctx context.Context, orderID string) ([]salesEntity.OrderStatus, error) {
	var rows []salesEntity.OrderStatus
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id").Find(&rows).Error
	return rows, err
}
