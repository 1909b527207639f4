package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Coupon is a user-entered discount code. Codes are stored normalized to
// upper case. The restriction slices, when non-empty, limit the coupon to
// carts that intersect them.
type Coupon struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	DiscountType  DiscountType    `json:"discountType"`
	DiscountValue decimal.Decimal `json:"discountValue"`
	MinPurchase   decimal.Decimal `json:"minPurchase"`
	MaxUses       *int            `json:"maxUses,omitempty"`
	UsesCount     int             `json:"usesCount"`
	ValidFrom     *time.Time      `json:"validFrom,omitempty"`
	ValidUntil    *time.Time      `json:"validUntil,omitempty"`
	Active        bool            `json:"active"`
	ProductIDs    []string        `json:"productIds,omitempty"`
	CategoryIDs   []string        `json:"categoryIds,omitempty"`
	ZoneIDs       []string        `json:"zoneIds,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}
