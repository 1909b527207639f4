// Package checkout gates order submission on zone availability and
// assembles the outgoing order payload and WhatsApp handoff message.
package checkout

import (
	"github.com/shopspring/decimal"

	"podshop/internal/domain"
	"podshop/internal/money"
	couponsvc "podshop/internal/service/coupon"
	zonesvc "podshop/internal/service/zone"
)

// ReportLine compares one cart line's requested quantity against the
// stock available in the selected zone.
type ReportLine struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Requested   int    `json:"requested"`
	Available   int    `json:"available"`
	OK          bool   `json:"ok"`
}

// BuildAvailabilityReport produces the per-line availability comparison
// used both to gate submission and to tell the user which lines block it.
func BuildAvailabilityReport(lines []domain.CartLine, f *zonesvc.Filter) []ReportLine {
	report := make([]ReportLine, 0, len(lines))
	for _, l := range lines {
		available := f.ProductStock(l.Product)
		report = append(report, ReportLine{
			ProductID:   l.Product.ID,
			ProductName: l.Product.Name,
			Requested:   l.Quantity,
			Available:   available,
			OK:          l.Quantity <= available && f.ProductAvailable(l.Product),
		})
	}
	return report
}

// CanSubmit reports whether the order may be placed: a zone is selected,
// its stock data is loaded, the cart is non-empty, and every requested
// quantity fits the in-zone stock. Indeterminate stock data fails closed.
func CanSubmit(lines []domain.CartLine, f *zonesvc.Filter) bool {
	if len(lines) == 0 || !f.HasZone() || !f.Loaded() {
		return false
	}
	for _, rl := range BuildAvailabilityReport(lines, f) {
		if !rl.OK {
			return false
		}
	}
	return true
}

// AssembleOrder builds the order payload from the cart snapshot. It is a
// pure transformation: the cart is not mutated, and the id and timestamp
// are assigned by the order repository on write.
func AssembleOrder(lines []domain.CartLine, addr domain.Address, coupon *domain.Coupon, z domain.Zone) domain.Order {
	items := make([]domain.OrderItem, 0, len(lines))
	subtotal := decimal.Zero
	for _, l := range lines {
		items = append(items, domain.OrderItem{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			UnitPrice: l.Product.Price,
			Quantity:  l.Quantity,
		})
		subtotal = subtotal.Add(l.LineTotal())
	}

	order := domain.Order{
		Items:    items,
		Address:  addr,
		Subtotal: money.Round(subtotal),
		ZoneID:   z.ID,
		ZoneName: z.Name,
	}
	if coupon != nil {
		order.CouponCode = coupon.Code
		order.Discount = couponsvc.Discount(*coupon, subtotal)
	}
	order.Total = couponsvc.FinalTotal(coupon, subtotal)
	return order
}
