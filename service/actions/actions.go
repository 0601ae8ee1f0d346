package actions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"supplysense/config"
	"supplysense/core/events"
	planningEntity "supplysense/model/entity/planning"
	planningRepo "supplysense/model/repository/planning"
	"supplysense/service/balancing"
	"supplysense/service/fulfilment"
)

var ErrInvalidDecision = errors.New("action and item are required")

// Decision is the outcome of approving or rejecting a recommendation.
type Decision struct {
	Entry    planningEntity.ActionLogEntry `json:"entry"`
	Purchase *fulfilment.Plan              `json:"purchase,omitempty"`
}

// StockoutAlert is the payload of a stockout event.
type StockoutAlert struct {
	Item      string `json:"item"`
	Warehouse string `json:"warehouse"`
	Projected int64  `json:"projected_stock"`
	Message   string `json:"message"`
}

type Service struct {
	balance     *balancing.Service
	fulfilment  *fulfilment.Service
	audit       *planningRepo.AuditRepository
	bus         *events.Bus
	purchaseQty int64
}

func NewService(db *gorm.DB) (*Service, error) {
	bal, err := balancing.NewService(db)
	if err != nil {
		return nil, err
	}
	ful, err := fulfilment.NewService(db)
	if err != nil {
		return nil, err
	}
	return &Service{
		balance:     bal,
		fulfilment:  ful,
		audit:       planningRepo.NewAuditRepository(db),
		bus:         events.Default(),
		purchaseQty: config.App().ApprovePurchaseQty,
	}, nil
}

// WithBus returns a copy of s (and its purchase flow) publishing to bus.
func (s *Service) WithBus(bus *events.Bus) *Service {
	cp := *s
	cp.bus = bus
	cp.fulfilment = s.fulfilment.WithBus(bus)
	return &cp
}

// Approve buys the configured quantity of item from the supply pool and logs
// the approval with a snapshot of the item's balance row.
func (s *Service) Approve(ctx context.Context, persona, action, item string) (Decision, error) {
	action, item = strings.TrimSpace(action), strings.TrimSpace(item)
	if action == "" || item == "" {
		return Decision{}, ErrInvalidDecision
	}
	details := s.snapshot(ctx, persona, item)

	plan, err := s.fulfilment.Purchase(ctx, item, s.purchaseQty)
	if err != nil {
		return Decision{}, fmt.Errorf("purchase %s: %w", item, err)
	}
	entry, err := s.record(ctx, action, item, planningEntity.DecisionApproved, details)
	if err != nil {
		return Decision{}, err
	}
	return Decision{Entry: entry, Purchase: &plan}, nil
}

// Reject only logs the decision.
func (s *Service) Reject(ctx context.Context, persona, action, item string) (Decision, error) {
	action, item = strings.TrimSpace(action), strings.TrimSpace(item)
	if action == "" || item == "" {
		return Decision{}, ErrInvalidDecision
	}
	entry, err := s.record(ctx, action, item, planningEntity.DecisionRejected, s.snapshot(ctx, persona, item))
	if err != nil {
		return Decision{}, err
	}
	return Decision{Entry: entry}, nil
}

// Log returns recorded decisions, newest first.
func (s *Service) Log(ctx context.Context, limit int) ([]planningEntity.ActionLogEntry, error) {
	return s.audit.Actions(ctx, limit)
}

// PublishStockouts emits one stockout event per expedite row and returns them.
func (s *Service) PublishStockouts(ctx context.Context, persona string) ([]StockoutAlert, error) {
	rep, err := s.balance.Compute(ctx, persona)
	if err != nil {
		return nil, err
	}
	alerts := []StockoutAlert{}
	for _, row := range rep.Stockouts() {
		alert := StockoutAlert{
			Item:      row.Item,
			Warehouse: row.Warehouse,
			Projected: row.ProjectedStock,
			Message:   "URGENT: Stockout risk for " + row.Item,
		}
		s.bus.Publish(ctx, events.TypeStockout, alert)
		alerts = append(alerts, alert)
	}
	return alerts, nil
}

func (s *Service) record(ctx context.Context, action, item, decision string, details datatypes.JSON) (planningEntity.ActionLogEntry, error) {
	entry := planningEntity.ActionLogEntry{
		Action:   action,
		Item:     item,
		Decision: decision,
		Details:  details,
	}
	if err := s.audit.AppendAction(ctx, &entry); err != nil {
		return entry, fmt.Errorf("log %s decision: %w", strings.ToLower(decision), err)
	}
	s.bus.Publish(ctx, events.TypeDecision, entry)
	return entry, nil
}

// snapshot captures the current balance row of item. A failure only loses the details.
func (s *Service) snapshot(ctx context.Context, persona, item string) datatypes.JSON {
	rep, err := s.balance.Compute(ctx, persona)
	if err != nil {
		log.Printf("actions: balance snapshot for %s: %v", item, err)
		return nil
	}
	row, ok := rep.Find(item)
	if !ok {
		return nil
	}
	raw, err := json.Marshal(row)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}
