// Package zone resolves per-region product availability and the current
// zone selection.
package zone

import "podshop/internal/domain"

// StockTable maps product id to in-zone stock for one zone. A missing
// entry means zero stock in that zone.
type StockTable map[string]int

// Filter answers availability questions for the current (zone, stock
// table) snapshot. Its reads are pure and safe to call per request.
type Filter struct {
	zone   *domain.Zone
	stock  StockTable
	loaded bool
}

// NewFilter builds a Filter for a selected zone. A nil stock table marks
// the stock data as not loaded; availability gates must then fail closed.
func NewFilter(z domain.Zone, stock StockTable) *Filter {
	return &Filter{zone: &z, stock: stock, loaded: stock != nil}
}

// Unfiltered is the no-zone-selected state: every active product is
// visible and its global stock field applies.
func Unfiltered() *Filter {
	return &Filter{loaded: true}
}

// HasZone reports whether a zone is selected.
func (f *Filter) HasZone() bool {
	return f.zone != nil
}

// Zone returns the selected zone, or nil.
func (f *Filter) Zone() *domain.Zone {
	return f.zone
}

// Loaded reports whether the stock data backing this filter is usable.
func (f *Filter) Loaded() bool {
	return f.loaded
}

// ProductStock returns the effective stock ceiling for p: the product's
// own stock when no zone is selected, otherwise the zone row quantity,
// with a missing row meaning exactly zero.
func (f *Filter) ProductStock(p domain.Product) int {
	if f.zone == nil {
		return p.Stock
	}
	return f.stock[p.ID]
}

// ProductAvailable reports whether p can be purchased. Without a zone the
// catalog is unfiltered; with a zone the product needs stock above zero.
func (f *Filter) ProductAvailable(p domain.Product) bool {
	if f.zone == nil {
		return true
	}
	return f.stock[p.ID] > 0
}

// ValidateSelection checks a persisted zone id against the active zone
// list. It returns the matching zone, or nil when the selection is stale
// and must be discarded so the user re-selects.
func ValidateSelection(zoneID string, zones []domain.Zone) *domain.Zone {
	if zoneID == "" {
		return nil
	}
	for i := range zones {
		if zones[i].ID == zoneID && zones[i].Active {
			return &zones[i]
		}
	}
	return nil
}
