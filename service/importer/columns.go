package importer

import (
	"fmt"
	"sort"
	"strings"
)

// Table names accepted by the importer.
const (
	TableOrders     = "orders"
	TableInventory  = "inventory"
	TableSuppliers  = "suppliers"
	TableCapacity   = "capacity"
	TableSupplyPool = "supply_pool"
)

var tableColumns = map[string][]string{
	TableOrders:     {"order_id", "date", "customer", "city", "channel", "item", "category", "qty", "unit_price", "priority"},
	TableInventory:  {"item", "warehouse", "category", "supplier", "on_hand", "wip", "safety", "reorder_point", "unit_cost"},
	TableSuppliers:  {"supplier", "item", "lead_time", "moq", "reliability", "cost_per_unit", "contact", "phone", "email"},
	TableCapacity:   {"warehouse", "machine", "daily_capacity", "shift_hours"},
	TableSupplyPool: {"source", "item", "available_qty", "contact", "whatsapp", "email"},
}

var commonAliases = map[string]string{
	"product":      "item",
	"product_name": "item",
}

var tableAliases = map[string]map[string]string{
	TableOrders:    {"quantity": "qty", "price": "unit_price"},
	TableInventory: {"stock": "on_hand", "quantity": "on_hand"},
}

// Tables lists the importable tables in a stable order.
func Tables() []string {
	out := make([]string, 0, len(tableColumns))
	for t := range tableColumns {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func checkTable(table string) error {
	if _, ok := tableColumns[table]; !ok {
		return fmt.Errorf("%w: %q (want one of %s)", ErrUnknownTable, table, strings.Join(Tables(), ", "))
	}
	return nil
}

// NormalizeHeader lowercases h, turns spaces into underscores and applies the
// table's column aliases.
func NormalizeHeader(table, h string) string {
	h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
	h = strings.ReplaceAll(h, " ", "_")
	if alias, ok := tableAliases[table][h]; ok {
		return alias
	}
	if alias, ok := commonAliases[h]; ok {
		return alias
	}
	return h
}

func knownColumns(table string) map[string]bool {
	known := make(map[string]bool)
	for _, c := range tableColumns[table] {
		known[c] = true
	}
	return known
}
