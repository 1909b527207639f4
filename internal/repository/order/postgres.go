package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

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

// Create writes the order header and its items in one transaction. The
// payload is stored as assembled; nothing is recomputed on write.
func (r *postgresRepo) Create(ctx context.Context, order domain.Order) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	address, err := json.Marshal(order.Address)
	if err != nil {
		return nil, fmt.Errorf("marshal address: %w", err)
	}

	const headerQ = `
INSERT INTO orders (address, subtotal, coupon_code, discount, total, zone_id, zone_name)
VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7)
RETURNING id::text, created_at
`
	out := order
	if err := tx.QueryRow(ctx, headerQ,
		address,
		order.Subtotal,
		order.CouponCode,
		order.Discount,
		order.Total,
		order.ZoneID,
		order.ZoneName,
	).Scan(&out.ID, &out.CreatedAt); err != nil {
		r.logger.Error("order insert failed", zap.Error(err))
		return nil, err
	}

	const itemQ = `
INSERT INTO order_items (order_id, product_id, name, unit_price, quantity)
VALUES ($1, $2, $3, $4, $5)
`
	for _, it := range order.Items {
		if _, err := tx.Exec(ctx, itemQ, out.ID, it.ProductID, it.Name, it.UnitPrice, it.Quantity); err != nil {
			r.logger.Error("order item insert failed", zap.String("order", out.ID), zap.Error(err))
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const headerQ = `
SELECT id::text, address, subtotal, COALESCE(coupon_code, ''), discount, total, zone_id::text, zone_name, created_at
FROM orders
WHERE id = $1
`
	var (
		o       domain.Order
		address []byte
	)
	err := r.pool.QueryRow(ctx, headerQ, id).Scan(
		&o.ID,
		&address,
		&o.Subtotal,
		&o.CouponCode,
		&o.Discount,
		&o.Total,
		&o.ZoneID,
		&o.ZoneName,
		&o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(address, &o.Address); err != nil {
		return nil, fmt.Errorf("unmarshal address: %w", err)
	}

	const itemsQ = `
SELECT product_id::text, name, unit_price, quantity
FROM order_items
WHERE order_id = $1
ORDER BY created_at ASC
`
	rows, err := r.pool.Query(ctx, itemsQ, o.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var it domain.OrderItem
		if err := rows.Scan(&it.ProductID, &it.Name, &it.UnitPrice, &it.Quantity); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &o, nil
}
