package coupon

import (
	"context"

	"podshop/internal/domain"
)

type Repository interface {
	// GetByCode looks a coupon up by its normalized (upper-case) code.
	GetByCode(ctx context.Context, code string) (*domain.Coupon, error)
	IncrementUses(ctx context.Context, couponID string) error
	Upsert(ctx context.Context, c domain.Coupon) (*domain.Coupon, error)
}
