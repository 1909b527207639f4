// Package coupon validates discount codes against the cart and computes
// discount amounts.
package coupon

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"podshop/internal/domain"
	"podshop/internal/money"
)

type couponRepo interface {
	GetByCode(ctx context.Context, code string) (*domain.Coupon, error)
}

type Service struct {
	repo couponRepo
	now  func() time.Time
}

func New(repo couponRepo) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Normalize upper-cases and trims a user-entered code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Apply validates code against the current cart and returns the coupon on
// success. Checks run in a fixed order and the first failure wins; a
// rejection is a *domain.CouponError and leaves cart state untouched.
func (s *Service) Apply(ctx context.Context, code string, subtotal decimal.Decimal, lines []domain.CartLine, zoneID string) (*domain.Coupon, error) {
	c, err := s.repo.GetByCode(ctx, Normalize(code))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.CouponError{Reason: domain.CouponNotFound, Message: "Cupom inválido ou não encontrado"}
		}
		return nil, fmt.Errorf("coupon lookup: %w", err)
	}
	if !c.Active {
		return nil, &domain.CouponError{Reason: domain.CouponNotFound, Message: "Cupom inválido ou não encontrado"}
	}

	now := s.now()
	if c.ValidFrom != nil && now.Before(*c.ValidFrom) {
		return nil, &domain.CouponError{Reason: domain.CouponNotYetValid, Message: "Cupom ainda não está válido"}
	}
	if c.ValidUntil != nil && now.After(*c.ValidUntil) {
		return nil, &domain.CouponError{Reason: domain.CouponExpired, Message: "Cupom expirado"}
	}
	if c.MaxUses != nil && c.UsesCount >= *c.MaxUses {
		return nil, &domain.CouponError{Reason: domain.CouponExhausted, Message: "Cupom esgotado"}
	}
	if subtotal.LessThan(c.MinPurchase) {
		return nil, &domain.CouponError{
			Reason:  domain.CouponBelowMinimum,
			Message: fmt.Sprintf("Valor mínimo de compra: %s", money.Format(c.MinPurchase)),
		}
	}
	if !inScope(c, lines, zoneID) {
		return nil, &domain.CouponError{Reason: domain.CouponOutOfScope, Message: "Cupom não é válido para os itens ou a região selecionada"}
	}

	return c, nil
}

// inScope checks the optional restriction sets. Empty sets mean no
// restriction; when any set is non-empty, at least one cart line or the
// selected zone must intersect it.
func inScope(c *domain.Coupon, lines []domain.CartLine, zoneID string) bool {
	if len(c.ProductIDs) == 0 && len(c.CategoryIDs) == 0 && len(c.ZoneIDs) == 0 {
		return true
	}
	for _, id := range c.ZoneIDs {
		if zoneID != "" && id == zoneID {
			return true
		}
	}
	for _, l := range lines {
		for _, id := range c.ProductIDs {
			if l.Product.ID == id {
				return true
			}
		}
		for _, id := range c.CategoryIDs {
			if l.Product.CategoryID != "" && l.Product.CategoryID == id {
				return true
			}
		}
	}
	return false
}

// Discount computes the amount a coupon takes off the given subtotal. A
// percentage value is clamped to [0, 100]; a fixed value is clamped to the
// subtotal so the final total never goes negative.
func Discount(c domain.Coupon, subtotal decimal.Decimal) decimal.Decimal {
	switch c.DiscountType {
	case domain.DiscountPercentage:
		pct := c.DiscountValue
		if pct.IsNegative() {
			pct = decimal.Zero
		}
		if pct.GreaterThan(decimal.NewFromInt(100)) {
			pct = decimal.NewFromInt(100)
		}
		return money.Round(subtotal.Mul(pct).Div(decimal.NewFromInt(100)))
	case domain.DiscountFixed:
		v := c.DiscountValue
		if v.IsNegative() {
			return decimal.Zero
		}
		if v.GreaterThan(subtotal) {
			return money.Round(subtotal)
		}
		return money.Round(v)
	default:
		return decimal.Zero
	}
}

// FinalTotal is the subtotal minus the coupon discount, never negative.
func FinalTotal(c *domain.Coupon, subtotal decimal.Decimal) decimal.Decimal {
	if c == nil {
		return money.Round(subtotal)
	}
	total := subtotal.Sub(Discount(*c, subtotal))
	if total.IsNegative() {
		return decimal.Zero
	}
	return money.Round(total)
}
