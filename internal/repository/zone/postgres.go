package zone

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

func (r *postgresRepo) ListActive(ctx context.Context) ([]domain.Zone, error) {
	const q = `
SELECT id::text, name, COALESCE(slug, ''), whatsapp_number, active, created_at
FROM zones
WHERE active
ORDER BY name ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Error("zone list failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var result []domain.Zone
	for rows.Next() {
		var z domain.Zone
		if err := rows.Scan(&z.ID, &z.Name, &z.Slug, &z.WhatsAppNumber, &z.Active, &z.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, z)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("zone list rows failed", zap.Error(err))
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Zone, error) {
	const q = `
SELECT id::text, name, COALESCE(slug, ''), whatsapp_number, active, created_at
FROM zones
WHERE id = $1
`
	var z domain.Zone
	err := r.pool.QueryRow(ctx, q, id).Scan(&z.ID, &z.Name, &z.Slug, &z.WhatsAppNumber, &z.Active, &z.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error("zone get failed", zap.String("zone", id), zap.Error(err))
		return nil, err
	}
	return &z, nil
}

func (r *postgresRepo) StockByZone(ctx context.Context, zoneID string) (map[string]int, error) {
	const q = `
SELECT product_id::text, stock
FROM zone_stock
WHERE zone_id = $1
`
	rows, err := r.pool.Query(ctx, q, zoneID)
	if err != nil {
		r.logger.Error("zone stock fetch failed", zap.String("zone", zoneID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	stock := make(map[string]int)
	for rows.Next() {
		var productID string
		var qty int
		if err := rows.Scan(&productID, &qty); err != nil {
			return nil, err
		}
		stock[productID] = qty
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("zone stock rows failed", zap.String("zone", zoneID), zap.Error(err))
		return nil, err
	}
	return stock, nil
}

func (r *postgresRepo) UpsertStock(ctx context.Context, s domain.ZoneStock) error {
	const q = `
INSERT INTO zone_stock (zone_id, product_id, stock)
VALUES ($1, $2, $3)
ON CONFLICT (zone_id, product_id) DO UPDATE SET stock = EXCLUDED.stock
`
	_, err := r.pool.Exec(ctx, q, s.ZoneID, s.ProductID, s.Stock)
	if err != nil {
		r.logger.Error("zone stock upsert failed", zap.String("zone", s.ZoneID), zap.String("product", s.ProductID), zap.Error(err))
	}
	return err
}
