// Package cart holds the session cart store. The store owns the line
// list, the applied coupon, and the selected zone for one session; every
// mutation is persisted synchronously before returning.
package cart

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"podshop/internal/domain"
	"podshop/internal/storage"
)

const (
	cartKeyPrefix   = "cart:"
	couponKeyPrefix = "coupon:"
	zoneKeyPrefix   = "zone:"
)

// Store is the single owner of one session's cart state. All mutation
// goes through its methods; external code never splices the line list.
type Store struct {
	sessionID string
	storage   storage.Store
	logger    *zap.Logger

	lines  []domain.CartLine
	coupon *domain.Coupon
	zoneID string
}

// NewStore hydrates a Store for the given session from storage. Corrupt
// or missing persisted state yields an empty cart, never an error.
func NewStore(sessionID string, st storage.Store, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		sessionID: sessionID,
		storage:   st,
		logger:    logger,
	}
	s.hydrate()
	return s
}

func (s *Store) hydrate() {
	if data, ok, err := s.storage.Get(cartKeyPrefix + s.sessionID); err != nil {
		s.logger.Warn("cart hydrate read failed", zap.String("session", s.sessionID), zap.Error(err))
	} else if ok {
		var lines []domain.CartLine
		if err := json.Unmarshal(data, &lines); err != nil {
			s.logger.Warn("cart hydrate parse failed, starting empty", zap.String("session", s.sessionID), zap.Error(err))
		} else {
			s.lines = lines
		}
	}

	if data, ok, err := s.storage.Get(couponKeyPrefix + s.sessionID); err != nil {
		s.logger.Warn("coupon hydrate read failed", zap.String("session", s.sessionID), zap.Error(err))
	} else if ok {
		var c domain.Coupon
		if err := json.Unmarshal(data, &c); err != nil {
			s.logger.Warn("coupon hydrate parse failed, dropping", zap.String("session", s.sessionID), zap.Error(err))
		} else {
			s.coupon = &c
		}
	}

	if data, ok, err := s.storage.Get(zoneKeyPrefix + s.sessionID); err != nil {
		s.logger.Warn("zone hydrate read failed", zap.String("session", s.sessionID), zap.Error(err))
	} else if ok {
		s.zoneID = string(data)
	}
}

// AddItem merges quantity into an existing line for the same product, or
// appends a new line with a snapshot of the product.
func (s *Store) AddItem(p domain.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range s.lines {
		if s.lines[i].Product.ID == p.ID {
			s.lines[i].Quantity += quantity
			s.persistLines()
			return
		}
	}
	s.lines = append(s.lines, domain.CartLine{Product: p, Quantity: quantity})
	s.persistLines()
}

// RemoveItem drops the line for productID. Absent lines are a no-op.
func (s *Store) RemoveItem(productID string) {
	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.persistLines()
			return
		}
	}
}

// UpdateQuantity replaces the quantity of an existing line. A quantity of
// zero or less removes the line.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(productID)
		return
	}
	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines[i].Quantity = quantity
			s.persistLines()
			return
		}
	}
}

// Clear empties the cart and drops any applied coupon. The coupon cannot
// outlive the cart it was validated against.
func (s *Store) Clear() {
	s.lines = nil
	s.coupon = nil
	s.persistLines()
	s.persistCoupon()
}

// Lines returns a copy of the current line list.
func (s *Store) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// TotalItems is the sum of line quantities, recomputed on every call.
func (s *Store) TotalItems() int {
	total := 0
	for _, l := range s.lines {
		total += l.Quantity
	}
	return total
}

// Subtotal is the sum of unit price times quantity over all lines, using
// the price snapshot stored at add time.
func (s *Store) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range s.lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

// ApplyCoupon records a validated coupon as applied.
func (s *Store) ApplyCoupon(c domain.Coupon) {
	s.coupon = &c
	s.persistCoupon()
}

// Coupon returns the applied coupon, or nil.
func (s *Store) Coupon() *domain.Coupon {
	if s.coupon == nil {
		return nil
	}
	c := *s.coupon
	return &c
}

// RemoveCoupon unconditionally clears the applied coupon.
func (s *Store) RemoveCoupon() {
	s.coupon = nil
	s.persistCoupon()
}

// SelectZone records the chosen delivery zone. An empty id clears the
// selection.
func (s *Store) SelectZone(zoneID string) {
	s.zoneID = zoneID
	if zoneID == "" {
		if err := s.storage.Delete(zoneKeyPrefix + s.sessionID); err != nil {
			s.logger.Warn("zone persist delete failed", zap.String("session", s.sessionID), zap.Error(err))
		}
		return
	}
	if err := s.storage.Set(zoneKeyPrefix+s.sessionID, []byte(zoneID)); err != nil {
		s.logger.Warn("zone persist failed", zap.String("session", s.sessionID), zap.Error(err))
	}
}

// ZoneID returns the selected zone id, or empty when none is selected.
func (s *Store) ZoneID() string {
	return s.zoneID
}

func (s *Store) persistLines() {
	if len(s.lines) == 0 {
		if err := s.storage.Delete(cartKeyPrefix + s.sessionID); err != nil {
			s.logger.Warn("cart persist delete failed", zap.String("session", s.sessionID), zap.Error(err))
		}
		return
	}
	data, err := json.Marshal(s.lines)
	if err != nil {
		s.logger.Warn("cart persist marshal failed", zap.String("session", s.sessionID), zap.Error(err))
		return
	}
	if err := s.storage.Set(cartKeyPrefix+s.sessionID, data); err != nil {
		s.logger.Warn("cart persist failed", zap.String("session", s.sessionID), zap.Error(err))
	}
}

func (s *Store) persistCoupon() {
	if s.coupon == nil {
		if err := s.storage.Delete(couponKeyPrefix + s.sessionID); err != nil {
			s.logger.Warn("coupon persist delete failed", zap.String("session", s.sessionID), zap.Error(err))
		}
		return
	}
	data, err := json.Marshal(s.coupon)
	if err != nil {
		s.logger.Warn("coupon persist marshal failed", zap.String("session", s.sessionID), zap.Error(err))
		return
	}
	if err := s.storage.Set(couponKeyPrefix+s.sessionID, data); err != nil {
		s.logger.Warn("coupon persist failed", zap.String("session", s.sessionID), zap.Error(err))
	}
}
