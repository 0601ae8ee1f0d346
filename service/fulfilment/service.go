package fulfilment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"supplysense/core/events"
	planningEntity "supplysense/model/entity/planning"
	inventoryRepo "supplysense/model/repository/inventory"
	planningRepo "supplysense/model/repository/planning"
	"supplysense/service/balancing"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrUnknownItem     = errors.New("item is required")
)

// PurchaseAssignee owns the tasks logged by purchases.
const PurchaseAssignee = "Procurement"

type Service struct {
	db        *gorm.DB
	inventory *inventoryRepo.InventoryRepository
	pool      *inventoryRepo.SupplyPoolRepository
	audit     *planningRepo.AuditRepository
	bus       *events.Bus
}

func NewService(db *gorm.DB) (*Service, error) {
	invRepo, err := inventoryRepo.NewInventoryRepository(db)
	if err != nil {
		return nil, err
	}
	return &Service{
		db:        db,
		inventory: invRepo,
		pool:      inventoryRepo.NewSupplyPoolRepository(db),
		audit:     planningRepo.NewAuditRepository(db),
		bus:       events.Default(),
	}, nil
}

// WithBus returns a copy of s publishing to bus.
func (s *Service) WithBus(bus *events.Bus) *Service {
	cp := *s
	cp.bus = bus
	return &cp
}

// Plan allocates qty of item across owned stock and the supply pool without
// changing anything.
func (s *Service) Plan(ctx context.Context, item string, qty int64) (Plan, error) {
	item = strings.TrimSpace(item)
	if item == "" {
		return Plan{}, ErrUnknownItem
	}
	if qty <= 0 {
		return Allocate(item, qty, 0, nil), nil
	}
	owned, err := s.inventory.OwnedStock(ctx, item)
	if err != nil {
		return Plan{}, fmt.Errorf("owned stock for %s: %w", item, err)
	}
	pool, err := s.pool.ListByItem(ctx, item)
	if err != nil {
		return Plan{}, fmt.Errorf("supply pool for %s: %w", item, err)
	}
	return Allocate(item, qty, max(owned, 0), pool), nil
}

// Purchase buys qty of item from the supply pool: touched pool rows are
// decremented and the bought total lands in owned inventory, all in one
// transaction. The returned plan holds only pool lines.
func (s *Service) Purchase(ctx context.Context, item string, qty int64) (Plan, error) {
	item = strings.TrimSpace(item)
	if item == "" {
		return Plan{}, ErrUnknownItem
	}
	if qty <= 0 {
		return Plan{}, ErrInvalidQuantity
	}

	var plan Plan
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		pool, err := s.pool.WithTx(tx).ListByItem(ctx, item)
		if err != nil {
			return fmt.Errorf("supply pool for %s: %w", item, err)
		}
		plan = Allocate(item, qty, 0, pool)
		for _, a := range plan.Allocations {
			if err := s.pool.WithTx(tx).Decrement(ctx, a.PoolEntryID, a.Qty); err != nil {
				return err
			}
		}
		bought := plan.Allocated()
		if bought == 0 {
			return nil
		}
		if err := s.inventory.WithTx(tx).AddOnHand(ctx, item, bought); err != nil {
			return fmt.Errorf("add %d %s to inventory: %w", bought, item, err)
		}
		return s.audit.WithTx(tx).CreateTask(ctx, &planningEntity.Task{
			Task:     fmt.Sprintf("Purchased %d %s", bought, item),
			Assignee: PurchaseAssignee,
			Status:   planningEntity.TaskCompleted,
		})
	})
	if err != nil {
		return Plan{}, err
	}

	if plan.Allocated() > 0 {
		balancing.Invalidate(ctx)
		s.bus.Publish(ctx, events.TypePurchase, plan)
	}
	return plan, nil
}
