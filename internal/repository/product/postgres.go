package product

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
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

const productColumns = `
p.id::text, p.slug, p.name, COALESCE(p.description, ''), p.price, p.original_price,
p.stock, COALESCE(p.category_id::text, ''), p.active, p.images, p.created_at
`

func (r *postgresRepo) ListActive(ctx context.Context, categorySlug string) ([]domain.Product, error) {
	q := `
SELECT ` + productColumns + `
FROM products p
WHERE p.active
`
	args := []interface{}{}
	if categorySlug != "" {
		q += `AND p.category_id = (SELECT id FROM categories WHERE slug = $1)
`
		args = append(args, categorySlug)
	}
	q += `ORDER BY p.name ASC`

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Error("product list failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("product list rows failed", zap.Error(err))
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	q := `
SELECT ` + productColumns + `
FROM products p
WHERE p.slug = $1 AND p.active
`
	return r.getOne(ctx, q, slug)
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	q := `
SELECT ` + productColumns + `
FROM products p
WHERE p.id = $1
`
	return r.getOne(ctx, q, id)
}

func (r *postgresRepo) getOne(ctx context.Context, q string, arg interface{}) (*domain.Product, error) {
	row := r.pool.QueryRow(ctx, q, arg)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error("product get failed", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, product domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (slug, name, description, price, original_price, stock, category_id, active, images)
VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, NULLIF($7, '')::uuid, $8, $9)
ON CONFLICT (slug) DO UPDATE SET
    name = EXCLUDED.name,
    description = EXCLUDED.description,
    price = EXCLUDED.price,
    original_price = EXCLUDED.original_price,
    stock = EXCLUDED.stock,
    category_id = EXCLUDED.category_id,
    active = EXCLUDED.active,
    images = EXCLUDED.images
RETURNING id::text, created_at
`
	images := product.Images
	if images == nil {
		images = []string{}
	}
	out := product
	err := r.pool.QueryRow(ctx, q,
		product.Slug,
		product.Name,
		product.Description,
		product.Price,
		product.OriginalPrice,
		product.Stock,
		product.CategoryID,
		product.Active,
		images,
	).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		r.logger.Error("product upsert failed", zap.String("slug", product.Slug), zap.Error(err))
		return nil, err
	}
	return &out, nil
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var (
		p        domain.Product
		price    decimal.Decimal
		original decimal.NullDecimal
	)
	if err := row.Scan(
		&p.ID,
		&p.Slug,
		&p.Name,
		&p.Description,
		&price,
		&original,
		&p.Stock,
		&p.CategoryID,
		&p.Active,
		&p.Images,
		&p.CreatedAt,
	); err != nil {
		return domain.Product{}, err
	}
	p.Price = price
	if original.Valid {
		v := original.Decimal
		p.OriginalPrice = &v
	}
	return p, nil
}
