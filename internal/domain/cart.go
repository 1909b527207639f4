package domain

import "github.com/shopspring/decimal"

// CartLine is one product plus a requested quantity. The product is a
// snapshot taken at add time; later catalog price changes do not flow into
// existing lines.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal is unit price times quantity.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
