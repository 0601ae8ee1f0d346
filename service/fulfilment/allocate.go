package fulfilment

import (
	inventoryEntity "supplysense/model/entity/inventory"
)

const (
	OwnWarehouseSource  = "Own Warehouse"
	OwnWarehouseContact = "Internal stock"
)

// Allocation is one line of a supply plan.
type Allocation struct {
	Source  string `json:"source"`
	Qty     int64  `json:"allocated_qty"`
	Contact string `json:"contact"`
	// PoolEntryID is set for supply pool lines.
	PoolEntryID uint `json:"pool_entry_id,omitempty"`
}

// Plan is the result of allocating a requested quantity.
type Plan struct {
	Item        string       `json:"item"`
	Requested   int64        `json:"requested"`
	Allocations []Allocation `json:"allocations"`
	Shortage    int64        `json:"shortage"`
}

// Allocated sums the allocated quantity of all lines.
func (p Plan) Allocated() int64 {
	var n int64
	for _, a := range p.Allocations {
		n += a.Qty
	}
	return n
}

// Satisfied reports whether the request is fully covered.
func (p Plan) Satisfied() bool {
	return p.Requested > 0 && p.Shortage == 0
}

// Allocate fills requested first from owned stock, then greedily from pool rows
// in the given order, each capped at its available quantity.
func Allocate(item string, requested, owned int64, pool []inventoryEntity.SupplyPoolEntry) Plan {
	plan := Plan{Item: item, Requested: requested}
	if requested <= 0 {
		return plan
	}
	remaining := requested

	if owned > 0 {
		take := min(owned, remaining)
		plan.Allocations = append(plan.Allocations, Allocation{
			Source:  OwnWarehouseSource,
			Qty:     take,
			Contact: OwnWarehouseContact,
		})
		remaining -= take
	}

	for _, entry := range pool {
		if remaining <= 0 {
			break
		}
		if entry.Item != item || entry.AvailableQty <= 0 {
			continue
		}
		take := min(entry.AvailableQty, remaining)
		plan.Allocations = append(plan.Allocations, Allocation{
			Source:      entry.Source,
			Qty:         take,
			Contact:     contactLine(entry),
			PoolEntryID: entry.ID,
		})
		remaining -= take
	}

	plan.Shortage = remaining
	return plan
}

func contactLine(e inventoryEntity.SupplyPoolEntry) string {
	return "phone: " + e.Contact + " | whatsapp: " + e.WhatsApp + " | email: " + e.Email
}
