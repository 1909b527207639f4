package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Address is the delivery address collected at checkout.
type Address struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	District   string `json:"district"`
	City       string `json:"city"`
	Complement string `json:"complement,omitempty"`
	Reference  string `json:"reference,omitempty"`
}

type OrderItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
}

// Order is the payload assembled at checkout submission. It is built once
// and never mutated afterwards.
type Order struct {
	ID         string          `json:"id"`
	Items      []OrderItem     `json:"items"`
	Address    Address         `json:"address"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	CouponCode string          `json:"couponCode,omitempty"`
	Discount   decimal.Decimal `json:"discount"`
	Total      decimal.Decimal `json:"total"`
	ZoneID     string          `json:"zoneId"`
	ZoneName   string          `json:"zoneName"`
	CreatedAt  time.Time       `json:"createdAt"`
}
