package sales

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	salesEntity "supplysense/model/entity/sales"
	salesRepo "supplysense/model/repository/sales"
	"supplysense/service/balancing"
)

var (
	ErrInvalidOrder  = errors.New("order needs an item and a positive quantity")
	ErrUnknownOrder  = errors.New("order not found")
	ErrInvalidStatus = errors.New("unknown order status")
)

// Manual entry defaults.
const (
	DefaultChannel  = "Retail"
	DefaultCategory = "General"
	DefaultPriority = "Normal"
)

// DefaultUnitPrice applies to manual orders entered without a price.
var DefaultUnitPrice = decimal.NewFromInt(40)

type OrderService struct {
	repo *salesRepo.OrderRepository
	now  func() time.Time
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{repo: salesRepo.NewOrderRepository(db), now: time.Now}
}

func (s *OrderService) List(ctx context.Context, limit int) ([]salesEntity.Order, error) {
	return s.repo.List(ctx, limit)
}

// Create stores a manually entered order, filling unset fields with defaults,
// and opens its status history as Pending.
func (s *OrderService) Create(ctx context.Context, o salesEntity.Order) (salesEntity.Order, error) {
	o.Item = strings.TrimSpace(o.Item)
	if o.Item == "" || o.Qty <= 0 {
		return o, ErrInvalidOrder
	}
	o.ID = 0
	if o.OrderID == "" {
		o.OrderID = uuid.NewString()
	}
	if o.Date.IsZero() {
		o.Date = s.now()
	}
	if o.Channel == "" {
		o.Channel = DefaultChannel
	}
	if o.Customer == "" {
		o.Customer = o.Channel
	}
	if o.Category == "" {
		o.Category = DefaultCategory
	}
	if o.Priority == "" {
		o.Priority = DefaultPriority
	}
	if o.UnitPrice.IsZero() {
		o.UnitPrice = DefaultUnitPrice
	}

	if err := s.repo.Create(ctx, &o); err != nil {
		return o, fmt.Errorf("create order: %w", err)
	}
	if err := s.repo.AppendStatus(ctx, &salesEntity.OrderStatus{OrderID: o.OrderID, Status: salesEntity.StatusPending}); err != nil {
		return o, fmt.Errorf("open status history: %w", err)
	}
	balancing.Invalidate(ctx)
	return o, nil
}

// UpdateStatus appends a status entry for an existing order.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, status string) (salesEntity.OrderStatus, error) {
	entry := salesEntity.OrderStatus{OrderID: strings.TrimSpace(orderID), Status: status}
	if !salesEntity.ValidStatus(status) {
		return entry, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	exists, err := s.repo.Exists(ctx, entry.OrderID)
	if err != nil {
		return entry, err
	}
	if !exists {
		return entry, ErrUnknownOrder
	}
	if err := s.repo.AppendStatus(ctx, &entry); err != nil {
		return entry, fmt.Errorf("append status: %w", err)
	}
	return entry, nil
}

// History returns the status entries of an order, oldest first.
func (s *OrderService) History(ctx context.Context, orderID string) ([]salesEntity.OrderStatus, error) {
	return s.repo.StatusHistory(ctx, strings.TrimSpace(orderID))
}
