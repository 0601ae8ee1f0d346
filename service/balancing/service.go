package balancing

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"supplysense/config"
	"supplysense/core/cache"
	inventoryEntity "supplysense/model/entity/inventory"
	planningEntity "supplysense/model/entity/planning"
	inventoryRepo "supplysense/model/repository/inventory"
	salesRepo "supplysense/model/repository/sales"
	planningService "supplysense/service/planning"
)

const (
	// CacheTag marks every cached balance report.
	CacheTag     = "balance"
	remotePrefix = "supplysense:"
	reportTTL    = 30 * time.Second
)

// Report is the balance of all inventory rows for one persona.
type Report struct {
	Persona         string           `json:"persona"`
	SafetyStock     int64            `json:"safety_stock"`
	Thresholds      Thresholds       `json:"thresholds"`
	Rows            []Row            `json:"rows"`
	Recommendations []Recommendation `json:"recommendations"`
	GeneratedAt     time.Time        `json:"generated_at"`
}

// Stockouts returns the rows in the expedite bucket.
func (r *Report) Stockouts() []Row {
	var out []Row
	for _, row := range r.Rows {
		if row.Action == ActionExpedite {
			out = append(out, row)
		}
	}
	return out
}

// Find returns the first row of item.
func (r *Report) Find(item string) (Row, bool) {
	for _, row := range r.Rows {
		if row.Item == item {
			return row, true
		}
	}
	return Row{}, false
}

// generation advances on every Invalidate; a report computed across a change
// is returned but not cached.
var generation atomic.Uint64

type Service struct {
	inventory     *inventoryRepo.InventoryRepository
	orders        *salesRepo.OrderRepository
	params        *planningService.ParamsService
	local         *cache.Cache
	remote        *cache.Remote
	thresholds    Thresholds
	substitutions Substitutions
}

// NewService builds the balancing service with thresholds from config.
func NewService(db *gorm.DB) (*Service, error) {
	invRepo, err := inventoryRepo.NewInventoryRepository(db)
	if err != nil {
		return nil, err
	}
	cfg := config.App()
	th := Thresholds{
		PromoteFactor:  cfg.PromoteFactor,
		ReduceFactor:   cfg.ReduceFactor,
		SequenceFactor: cfg.SequenceFactor,
	}
	if err := th.Validate(); err != nil {
		return nil, fmt.Errorf("balancing thresholds: %w", err)
	}
	subs, err := substitutionsFromConfig()
	if err != nil {
		return nil, err
	}
	return &Service{
		inventory:     invRepo,
		orders:        salesRepo.NewOrderRepository(db),
		params:        planningService.NewParamsService(db),
		local:         cache.GetInstance(),
		remote:        cache.NewRemote(config.RedisClient, remotePrefix),
		thresholds:    th,
		substitutions: subs,
	}, nil
}

// substitutionsFromConfig loads SUBSTITUTES_FILE when set, else the built-in catalog.
func substitutionsFromConfig() (Substitutions, error) {
	path := config.GetEnv("SUBSTITUTES_FILE", "")
	if path == "" {
		return DefaultSubstitutions, nil
	}
	return LoadSubstitutions(path)
}

// WithThresholds returns a copy of s using th.
func (s *Service) WithThresholds(th Thresholds) *Service {
	cp := *s
	cp.thresholds = th
	return &cp
}

// Thresholds returns the active threshold set.
func (s *Service) Thresholds() Thresholds {
	return s.thresholds
}

func (s *Service) cacheKey(persona string) string {
	return cache.Key(CacheTag, persona, s.thresholds.PromoteFactor, s.thresholds.ReduceFactor, s.thresholds.SequenceFactor)
}

// Report returns the balance for persona, served from cache when fresh.
func (s *Service) Report(ctx context.Context, persona string) (*Report, error) {
	persona = planningService.NormalizePersona(persona)
	key := s.cacheKey(persona)
	if v, ok := s.local.Get(key); ok {
		return v.(*Report), nil
	}
	var cached Report
	if s.remote.GetJSON(ctx, key, &cached) {
		s.local.Set(key, &cached, reportTTL, []string{CacheTag})
		return &cached, nil
	}

	gen := generation.Load()
	rep, err := s.Compute(ctx, persona)
	if err != nil {
		return nil, err
	}
	if generation.Load() != gen {
		return rep, nil
	}
	s.local.Set(key, rep, reportTTL, []string{CacheTag})
	if generation.Load() != gen {
		s.local.Delete(key)
		return rep, nil
	}
	if err := s.remote.SetJSON(ctx, key, rep, reportTTL); err != nil {
		log.Printf("balancing: redis cache write failed: %v", err)
	}
	return rep, nil
}

// Compute recomputes the balance without touching the cache.
func (s *Service) Compute(ctx context.Context, persona string) (*Report, error) {
	persona = planningService.NormalizePersona(persona)

	var (
		inv    []inventoryEntity.InventoryRecord
		demand map[string]int64
		params planningEntity.PlanningParams
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		inv, err = s.inventory.List(egCtx)
		if err != nil {
			return fmt.Errorf("load inventory: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		demand, err = s.orders.DemandByItem(egCtx)
		if err != nil {
			return fmt.Errorf("load demand: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		params, err = s.params.Resolve(egCtx, persona)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	rows, recs := Balance(Input{
		Inventory:     inv,
		Demand:        demand,
		DefaultSafety: params.SafetyStock,
		Thresholds:    s.thresholds,
		Substitutions: s.substitutions,
	})
	return &Report{
		Persona:         persona,
		SafetyStock:     params.SafetyStock,
		Thresholds:      s.thresholds,
		Rows:            rows,
		Recommendations: recs,
		GeneratedAt:     time.Now(),
	}, nil
}

// Invalidate drops cached reports after inventory, order or parameter writes.
func Invalidate(ctx context.Context) {
	generation.Add(1)
	cache.GetInstance().DeleteByTag(CacheTag)
	if err := cache.NewRemote(config.RedisClient, remotePrefix).DeletePrefix(ctx, CacheTag); err != nil {
		log.Printf("balancing: redis invalidation failed: %v", err)
	}
}
