package importer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	inventoryEntity "supplysense/model/entity/inventory"
	salesEntity "supplysense/model/entity/sales"
)

// record is one normalized input row keyed by column name.
type record map[string]string

func (r record) str(col string) string {
	return strings.TrimSpace(r[col])
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006/01/02",
	"02-01-2006",
}

// rowParser collects per-field warnings for one row.
type rowParser struct {
	line     int
	warnings []string
	failed   bool
}

func (p *rowParser) warn(format string, args ...interface{}) {
	p.warnings = append(p.warnings, fmt.Sprintf("row %d: ", p.line)+fmt.Sprintf(format, args...))
}

func (p *rowParser) int64(r record, col string) int64 {
	v := r.str(col)
	if v == "" {
		return 0
	}
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return n
	}
	// spreadsheets export whole numbers as "12.0"
	if f, err := strconv.ParseFloat(v, 64); err == nil && f == math.Trunc(f) {
		// float64(math.MaxInt64) rounds up to 2^63, hence the strict bound.
		if f >= math.MinInt64 && f < math.MaxInt64 {
			return int64(f)
		}
		p.warn("%s: integer out of range %q", col, v)
		p.failed = true
		return 0
	}
	p.warn("%s: invalid integer %q", col, v)
	p.failed = true
	return 0
}

func (p *rowParser) float(r record, col string) float64 {
	v := r.str(col)
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.warn("%s: invalid number %q", col, v)
		p.failed = true
	}
	return f
}

func (p *rowParser) decimal(r record, col string) decimal.Decimal {
	v := r.str(col)
	if v == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		p.warn("%s: invalid decimal %q", col, v)
		p.failed = true
	}
	return d
}

// date leaves unparseable dates zero; the row is still kept.
func (p *rowParser) date(r record, col string) time.Time {
	v := r.str(col)
	if v == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	p.warn("%s: unparseable date %q, stored without date", col, v)
	return time.Time{}
}

func (p *rowParser) required(r record, col string) string {
	v := r.str(col)
	if v == "" {
		p.warn("missing %s, skipping", col)
		p.failed = true
	}
	return v
}

func buildOrders(rows []record, res *ImportResult) []salesEntity.Order {
	out := make([]salesEntity.Order, 0, len(rows))
	for i, r := range rows {
		p := rowParser{line: i + 1}
		o := salesEntity.Order{
			OrderID:   r.str("order_id"),
			Date:      p.date(r, "date"),
			Customer:  r.str("customer"),
			City:      r.str("city"),
			Channel:   r.str("channel"),
			Item:      p.required(r, "item"),
			Category:  r.str("category"),
			Qty:       p.int64(r, "qty"),
			UnitPrice: p.decimal(r, "unit_price"),
			Priority:  r.str("priority"),
		}
		if !res.accept(&p) {
			continue
		}
		if o.OrderID == "" {
			o.OrderID = uuid.NewString()
		}
		out = append(out, o)
	}
	return out
}

// buildInventory keeps the last row per (item, warehouse) so one batch never
// upserts the same key twice.
func buildInventory(rows []record, res *ImportResult) []inventoryEntity.InventoryRecord {
	out := make([]inventoryEntity.InventoryRecord, 0, len(rows))
	index := make(map[[2]string]int)
	for i, r := range rows {
		p := rowParser{line: i + 1}
		rec := inventoryEntity.InventoryRecord{
			Item:         p.required(r, "item"),
			Warehouse:    r.str("warehouse"),
			Category:     r.str("category"),
			Supplier:     r.str("supplier"),
			OnHand:       p.int64(r, "on_hand"),
			WIP:          p.int64(r, "wip"),
			Safety:       p.int64(r, "safety"),
			ReorderPoint: p.int64(r, "reorder_point"),
			UnitCost:     p.decimal(r, "unit_cost"),
		}
		if !res.accept(&p) {
			continue
		}
		if rec.Warehouse == "" {
			rec.Warehouse = "main"
		}
		key := [2]string{rec.Item, rec.Warehouse}
		if at, dup := index[key]; dup {
			res.Warnings = append(res.Warnings, fmt.Sprintf("row %d: duplicate %s/%s replaces earlier row", i+1, rec.Item, rec.Warehouse))
			out[at] = rec
			continue
		}
		index[key] = len(out)
		out = append(out, rec)
	}
	return out
}

func buildSuppliers(rows []record, res *ImportResult) []inventoryEntity.Supplier {
	out := make([]inventoryEntity.Supplier, 0, len(rows))
	for i, r := range rows {
		p := rowParser{line: i + 1}
		s := inventoryEntity.Supplier{
			Supplier:    p.required(r, "supplier"),
			Item:        p.required(r, "item"),
			LeadTime:    p.int64(r, "lead_time"),
			MOQ:         p.int64(r, "moq"),
			Reliability: p.float(r, "reliability"),
			CostPerUnit: p.decimal(r, "cost_per_unit"),
			Contact:     r.str("contact"),
			Phone:       r.str("phone"),
			Email:       r.str("email"),
		}
		if res.accept(&p) {
			out = append(out, s)
		}
	}
	return out
}

func buildCapacity(rows []record, res *ImportResult) []inventoryEntity.Capacity {
	out := make([]inventoryEntity.Capacity, 0, len(rows))
	for i, r := range rows {
		p := rowParser{line: i + 1}
		c := inventoryEntity.Capacity{
			Warehouse:     r.str("warehouse"),
			Machine:       r.str("machine"),
			DailyCapacity: p.int64(r, "daily_capacity"),
			ShiftHours:    p.float(r, "shift_hours"),
		}
		if res.accept(&p) {
			out = append(out, c)
		}
	}
	return out
}

func buildSupplyPool(rows []record, res *ImportResult) []inventoryEntity.SupplyPoolEntry {
	out := make([]inventoryEntity.SupplyPoolEntry, 0, len(rows))
	for i, r := range rows {
		p := rowParser{line: i + 1}
		e := inventoryEntity.SupplyPoolEntry{
			Source:       p.required(r, "source"),
			Item:         p.required(r, "item"),
			AvailableQty: p.int64(r, "available_qty"),
			Contact:      r.str("contact"),
			WhatsApp:     r.str("whatsapp"),
			Email:        r.str("email"),
		}
		if res.accept(&p) {
			out = append(out, e)
		}
	}
	return out
}
