package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Apply inserts demo data for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	categories := map[string]string{}
	for _, c := range []struct{ name, slug string }{
		{"Pods Descartáveis", "pods-descartaveis"},
		{"Juices", "juices"},
		{"Acessórios", "acessorios"},
	} {
		id, err := upsertCategory(ctx, pool, c.name, c.slug)
		if err != nil {
			return fmt.Errorf("upsert category %s: %w", c.slug, err)
		}
		categories[c.slug] = id
	}

	products := map[string]string{}
	for _, p := range []struct {
		slug, name, category string
		price                string
		original             *string
		stock                int
	}{
		{"pod-uva-ice", "Pod Uva Ice 8000 puffs", "pods-descartaveis", "54.90", strPtr("69.90"), 40},
		{"pod-morango-banana", "Pod Morango Banana 8000 puffs", "pods-descartaveis", "54.90", nil, 25},
		{"pod-menta", "Pod Menta 5000 puffs", "pods-descartaveis", "39.90", nil, 60},
		{"juice-blueberry-30ml", "Juice Blueberry 30ml", "juices", "29.90", nil, 80},
		{"coil-mesh-08", "Coil Mesh 0.8ohm", "acessorios", "19.90", nil, 120},
	} {
		id, err := upsertProduct(ctx, pool, p.slug, p.name, categories[p.category], p.price, p.original, p.stock)
		if err != nil {
			return fmt.Errorf("upsert product %s: %w", p.slug, err)
		}
		products[p.slug] = id
	}

	zones := map[string]string{}
	for _, z := range []struct{ name, slug, whatsapp string }{
		{"Centro", "centro", "5581999990001"},
		{"Zona Norte", "zona-norte", "5581999990002"},
	} {
		id, err := upsertZone(ctx, pool, z.name, z.slug, z.whatsapp)
		if err != nil {
			return fmt.Errorf("upsert zone %s: %w", z.slug, err)
		}
		zones[z.slug] = id
	}

	// Zona Norte deliberately has no row for some products: absent rows
	// mean zero stock in that zone.
	for _, s := range []struct {
		zone, product string
		stock         int
	}{
		{"centro", "pod-uva-ice", 15},
		{"centro", "pod-morango-banana", 10},
		{"centro", "pod-menta", 30},
		{"centro", "juice-blueberry-30ml", 50},
		{"centro", "coil-mesh-08", 80},
		{"zona-norte", "pod-uva-ice", 5},
		{"zona-norte", "pod-menta", 2},
	} {
		if err := upsertZoneStock(ctx, pool, zones[s.zone], products[s.product], s.stock); err != nil {
			return fmt.Errorf("upsert zone stock %s/%s: %w", s.zone, s.product, err)
		}
	}

	for _, c := range []struct {
		code, discountType, value, minPurchase string
		maxUses                                *int
	}{
		{"DESCONTO10", "percentage", "10", "0", nil},
		{"FRETE50", "fixed", "50.00", "150.00", intPtr(100)},
	} {
		if err := upsertCoupon(ctx, pool, c.code, c.discountType, c.value, c.minPurchase, c.maxUses); err != nil {
			return fmt.Errorf("upsert coupon %s: %w", c.code, err)
		}
	}

	return nil
}

func upsertCategory(ctx context.Context, pool *pgxpool.Pool, name, slug string) (string, error) {
	const q = `
INSERT INTO categories (name, slug)
VALUES ($1, $2)
ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name
RETURNING id::text
`
	var id string
	err := pool.QueryRow(ctx, q, name, slug).Scan(&id)
	return id, err
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, slug, name, categoryID, price string, original *string, stock int) (string, error) {
	const q = `
INSERT INTO products (slug, name, price, original_price, stock, category_id)
VALUES ($1, $2, $3::numeric, $4::numeric, $5, $6::uuid)
ON CONFLICT (slug) DO UPDATE
SET name = EXCLUDED.name,
    price = EXCLUDED.price,
    original_price = EXCLUDED.original_price,
    stock = EXCLUDED.stock,
    category_id = EXCLUDED.category_id
RETURNING id::text
`
	var id string
	err := pool.QueryRow(ctx, q, slug, name, price, original, stock, categoryID).Scan(&id)
	return id, err
}

func upsertZone(ctx context.Context, pool *pgxpool.Pool, name, slug, whatsapp string) (string, error) {
	const q = `
INSERT INTO zones (name, slug, whatsapp_number)
VALUES ($1, $2, $3)
ON CONFLICT (slug) DO UPDATE
SET name = EXCLUDED.name,
    whatsapp_number = EXCLUDED.whatsapp_number
RETURNING id::text
`
	var id string
	err := pool.QueryRow(ctx, q, name, slug, whatsapp).Scan(&id)
	return id, err
}

func upsertZoneStock(ctx context.Context, pool *pgxpool.Pool, zoneID, productID string, stock int) error {
	const q = `
INSERT INTO zone_stock (zone_id, product_id, stock)
VALUES ($1, $2, $3)
ON CONFLICT (zone_id, product_id) DO UPDATE SET stock = EXCLUDED.stock
`
	_, err := pool.Exec(ctx, q, zoneID, productID, stock)
	return err
}

func upsertCoupon(ctx context.Context, pool *pgxpool.Pool, code, discountType, value, minPurchase string, maxUses *int) error {
	const q = `
INSERT INTO coupons (code, discount_type, discount_value, min_purchase, max_uses)
VALUES ($1, $2, $3::numeric, $4::numeric, $5)
ON CONFLICT (code) DO UPDATE
SET discount_type = EXCLUDED.discount_type,
    discount_value = EXCLUDED.discount_value,
    min_purchase = EXCLUDED.min_purchase,
    max_uses = EXCLUDED.max_uses
`
	_, err := pool.Exec(ctx, q, code, discountType, value, minPurchase, maxUses)
	return err
}

func strPtr(v string) *string { return &v }

func intPtr(v int) *int { return &v }
