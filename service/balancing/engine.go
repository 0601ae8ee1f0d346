package balancing

import (
	"fmt"
	"strings"

	inventoryEntity "supplysense/model/entity/inventory"
	salesEntity "supplysense/model/entity/sales"
)

// Action is the bucket an item falls into after projecting its stock.
type Action string

const (
	ActionExpedite           Action = "expedite"
	ActionIncreaseProduction Action = "increase_production"
	ActionReduceBatch        Action = "reduce_batch"
	ActionPromote            Action = "promote"
	ActionBalanced           Action = "balanced"
)

// Recommendation texts.
const (
	RecExpediteSupplier   = "Expedite Supplier"
	RecOfferSubstitutes   = "Offer Substitutes"
	RecChangeSequence     = "Change Production Sequence"
	RecIncreaseProduction = "Increase Production"
	RecPullPOEarlier      = "Pull Purchase Order Earlier"
	RecReduceBatch        = "Reduce Batch Size"
	RecPushPOLater        = "Push Purchase Order Later"
	RecRunPromotion       = "Run Promotion"
	RecBalanced           = "Balanced"
)

// Thresholds are multiples of safety stock separating the upper buckets.
type Thresholds struct {
	PromoteFactor float64 `json:"promote_factor"`
	ReduceFactor  float64 `json:"reduce_factor"`
	// SequenceFactor > 0 adds a sequencing hint when demand exceeds available × factor.
	SequenceFactor float64 `json:"sequence_factor"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{PromoteFactor: 3, ReduceFactor: 5}
}

// Validate requires 0 <= PromoteFactor <= ReduceFactor.
func (t Thresholds) Validate() error {
	if t.PromoteFactor < 0 || t.ReduceFactor < 0 || t.SequenceFactor < 0 {
		return fmt.Errorf("thresholds must not be negative: %+v", t)
	}
	if t.PromoteFactor > t.ReduceFactor {
		return fmt.Errorf("promote factor %g exceeds reduce factor %g", t.PromoteFactor, t.ReduceFactor)
	}
	return nil
}

// Classify buckets a projected stock level. Checks run top to bottom; first match wins.
func (t Thresholds) Classify(projected, safety int64) Action {
	p, s := float64(projected), float64(safety)
	switch {
	case projected < 0:
		return ActionExpedite
	case projected < safety:
		return ActionIncreaseProduction
	case p > s*t.ReduceFactor:
		return ActionReduceBatch
	case p > s*t.PromoteFactor:
		return ActionPromote
	default:
		return ActionBalanced
	}
}

// Substitutions maps an item to products that can replace it during a stockout.
type Substitutions map[string][]string

var DefaultSubstitutions = Substitutions{
	"Milk":  {"Milk Powder", "Almond Milk"},
	"Bread": {"Buns", "Rusk"},
	"Eggs":  {"Paneer", "Tofu"},
	"Rice":  {"Wheat", "Millets"},
	"Sugar": {"Jaggery", "Honey"},
	"Oil":   {"Butter", "Ghee"},
}

// Row is the projection of one inventory record.
type Row struct {
	Item            string   `json:"item"`
	Warehouse       string   `json:"warehouse"`
	Category        string   `json:"category"`
	OnHand          int64    `json:"on_hand"`
	WIP             int64    `json:"wip"`
	Safety          int64    `json:"safety"`
	ForecastDemand  int64    `json:"forecast_demand"`
	AvailableStock  int64    `json:"available_stock"`
	ProjectedStock  int64    `json:"projected_stock"`
	Action          Action   `json:"action"`
	Recommendations []string `json:"recommendations"`
}

// Recommendation is one suggested action for an item.
type Recommendation struct {
	Action string `json:"action"`
	Item   string `json:"item"`
	Bucket Action `json:"bucket"`
}

// Input carries everything Balance needs.
type Input struct {
	Inventory     []inventoryEntity.InventoryRecord
	Demand        map[string]int64
	DefaultSafety int64
	Thresholds    Thresholds
	Substitutions Substitutions
}

// DemandFromOrders sums order quantity per item.
func DemandFromOrders(orders []salesEntity.Order) map[string]int64 {
	demand := make(map[string]int64)
	for _, o := range orders {
		demand[o.Item] += o.Qty
	}
	return demand
}

// Balance projects every inventory row against its demand and buckets it.
// Every row of an item carries the item's full demand.
func Balance(in Input) ([]Row, []Recommendation) {
	rows := make([]Row, 0, len(in.Inventory))
	var recs []Recommendation
	for _, rec := range in.Inventory {
		// A stored safety of 0 is indistinguishable from "unset", so an
		// explicitly imported 0 also falls back to the persona default.
		safety := rec.Safety
		if safety <= 0 {
			safety = in.DefaultSafety
		}
		demand := in.Demand[rec.Item]
		available := rec.OnHand + rec.WIP
		r := Row{
			Item:           rec.Item,
			Warehouse:      rec.Warehouse,
			Category:       rec.Category,
			OnHand:         rec.OnHand,
			WIP:            rec.WIP,
			Safety:         safety,
			ForecastDemand: demand,
			AvailableStock: available,
			ProjectedStock: available - demand,
		}
		r.Action = in.Thresholds.Classify(r.ProjectedStock, safety)
		r.Recommendations = recommend(r, in.Thresholds, in.Substitutions)
		for _, text := range r.Recommendations {
			recs = append(recs, Recommendation{Action: text, Item: r.Item, Bucket: r.Action})
		}
		rows = append(rows, r)
	}
	return rows, recs
}

func recommend(r Row, t Thresholds, subs Substitutions) []string {
	var out []string
	switch r.Action {
	case ActionExpedite:
		out = append(out, RecExpediteSupplier)
		if alt, ok := subs[r.Item]; ok && len(alt) > 0 {
			out = append(out, RecOfferSubstitutes+": "+strings.Join(alt, ", "))
		}
	case ActionIncreaseProduction:
		out = append(out, RecIncreaseProduction, RecPullPOEarlier)
	case ActionReduceBatch:
		out = append(out, RecReduceBatch)
	case ActionPromote:
		out = append(out, RecPushPOLater, RecRunPromotion)
	default:
		out = append(out, RecBalanced)
	}
	if t.SequenceFactor > 0 && r.ForecastDemand > 0 &&
		float64(r.ForecastDemand) > float64(r.AvailableStock)*t.SequenceFactor {
		out = append(out, RecChangeSequence)
	}
	return out
}
