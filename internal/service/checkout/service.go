package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"podshop/internal/domain"
	cartsvc "podshop/internal/service/cart"
	zonesvc "podshop/internal/service/zone"
)

// ErrNotSubmittable means the submission gate is closed: no zone, stock
// data missing, empty cart, or a line exceeding in-zone stock. Callers
// render the availability report instead of a generic failure.
var ErrNotSubmittable = errors.New("order not submittable")

type orderRepo interface {
	Create(ctx context.Context, order domain.Order) (*domain.Order, error)
}

type couponEvaluator interface {
	Apply(ctx context.Context, code string, subtotal decimal.Decimal, lines []domain.CartLine, zoneID string) (*domain.Coupon, error)
}

type couponUses interface {
	IncrementUses(ctx context.Context, couponID string) error
}

type Service struct {
	orders  orderRepo
	coupons couponEvaluator
	uses    couponUses
	logger  *zap.Logger
}

func New(orders orderRepo, coupons couponEvaluator, uses couponUses, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{orders: orders, coupons: coupons, uses: uses, logger: logger}
}

// Submit commits the checkout: it re-validates the applied coupon against
// the final cart, checks the availability gate, persists the order, and
// only then clears the cart. It returns the stored order and the WhatsApp
// link for the handoff.
func (s *Service) Submit(ctx context.Context, store *cartsvc.Store, addr domain.Address, filter *zonesvc.Filter, storeName string) (*domain.Order, string, error) {
	lines := store.Lines()
	if !CanSubmit(lines, filter) {
		return nil, "", ErrNotSubmittable
	}

	// Coupons are validated when applied, but the cart may have changed
	// since; the authoritative check happens here, at submission.
	var coupon *domain.Coupon
	if applied := store.Coupon(); applied != nil {
		validated, err := s.coupons.Apply(ctx, applied.Code, store.Subtotal(), lines, store.ZoneID())
		if err != nil {
			return nil, "", err
		}
		coupon = validated
	}

	z := filter.Zone()
	order := AssembleOrder(lines, addr, coupon, *z)

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, "", fmt.Errorf("create order: %w", err)
	}

	if coupon != nil {
		if err := s.uses.IncrementUses(ctx, coupon.ID); err != nil {
			// The order is already placed; a missed counter bump is not
			// worth failing the checkout over.
			s.logger.Warn("increment coupon uses failed",
				zap.String("coupon", coupon.Code), zap.Error(err))
		}
	}

	msg := Message(storeName, *created)
	link := WhatsAppLink(z.WhatsAppNumber, msg)

	// State is cleared only after the order exists.
	store.Clear()

	s.logger.Info("order submitted",
		zap.String("order", created.ID),
		zap.String("zone", z.ID),
		zap.Int("items", len(created.Items)))

	return created, link, nil
}
