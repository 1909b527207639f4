package coupon

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"podshop/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *zap.Logger) Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const couponColumns = `
id::text, code, discount_type, discount_value, min_purchase, max_uses, uses_count,
valid_from, valid_until, active,
COALESCE(product_ids, '{}'), COALESCE(category_ids, '{}'), COALESCE(zone_ids, '{}'),
created_at
`

func (r *postgresRepo) GetByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	q := `
SELECT ` + couponColumns + `
FROM coupons
WHERE code = $1
`
	var c domain.Coupon
	err := r.pool.QueryRow(ctx, q, code).Scan(
		&c.ID,
		&c.Code,
		&c.DiscountType,
		&c.DiscountValue,
		&c.MinPurchase,
		&c.MaxUses,
		&c.UsesCount,
		&c.ValidFrom,
		&c.ValidUntil,
		&c.Active,
		&c.ProductIDs,
		&c.CategoryIDs,
		&c.ZoneIDs,
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error("coupon get failed", zap.String("code", code), zap.Error(err))
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) IncrementUses(ctx context.Context, couponID string) error {
	const q = `
UPDATE coupons
SET uses_count = uses_count + 1
WHERE id = $1
`
	cmd, err := r.pool.Exec(ctx, q, couponID)
	if err != nil {
		r.logger.Error("coupon uses increment failed", zap.String("coupon", couponID), zap.Error(err))
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Upsert(ctx context.Context, c domain.Coupon) (*domain.Coupon, error) {
	const q = `
INSERT INTO coupons (code, discount_type, discount_value, min_purchase, max_uses, valid_from, valid_until, active, product_ids, category_ids, zone_ids)
VALUES (UPPER($1), $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (code) DO UPDATE SET
    discount_type = EXCLUDED.discount_type,
    discount_value = EXCLUDED.discount_value,
    min_purchase = EXCLUDED.min_purchase,
    max_uses = EXCLUDED.max_uses,
    valid_from = EXCLUDED.valid_from,
    valid_until = EXCLUDED.valid_until,
    active = EXCLUDED.active,
    product_ids = EXCLUDED.product_ids,
    category_ids = EXCLUDED.category_ids,
    zone_ids = EXCLUDED.zone_ids
RETURNING id::text, code, uses_count, created_at
`
	out := c
	err := r.pool.QueryRow(ctx, q,
		c.Code,
		c.DiscountType,
		c.DiscountValue,
		c.MinPurchase,
		c.MaxUses,
		c.ValidFrom,
		c.ValidUntil,
		c.Active,
		c.ProductIDs,
		c.CategoryIDs,
		c.ZoneIDs,
	).Scan(&out.ID, &out.Code, &out.UsesCount, &out.CreatedAt)
	if err != nil {
		r.logger.Error("coupon upsert failed", zap.String("code", c.Code), zap.Error(err))
		return nil, err
	}
	return &out, nil
}
