package zone

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"podshop/internal/domain"
	"podshop/internal/migrate"
)

func TestPostgres_ZoneStockRoundTrip(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	var zoneID string
	err := pool.QueryRow(ctx, `
INSERT INTO zones (name, slug, whatsapp_number, active)
VALUES ('Centro', 'centro', '+55 (81) 99999-0000', TRUE)
RETURNING id::text`).Scan(&zoneID)
	if err != nil {
		t.Fatalf("insert zone: %v", err)
	}

	var productID string
	err = pool.QueryRow(ctx, `
INSERT INTO products (slug, name, price, stock, active)
VALUES ('pod-uva-ice', 'Pod Uva Ice', 54.90, 10, TRUE)
RETURNING id::text`).Scan(&productID)
	if err != nil {
		t.Fatalf("insert product: %v", err)
	}

	repo := NewPostgres(pool, nil)

	zones, err := repo.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(zones) != 1 || zones[0].ID != zoneID || zones[0].WhatsAppNumber != "+55 (81) 99999-0000" {
		t.Fatalf("unexpected zones %+v", zones)
	}

	// No rows yet: the map is simply empty.
	stock, err := repo.StockByZone(ctx, zoneID)
	if err != nil {
		t.Fatalf("StockByZone: %v", err)
	}
	if len(stock) != 0 {
		t.Fatalf("expected empty stock table, got %v", stock)
	}

	if err := repo.UpsertStock(ctx, domain.ZoneStock{ZoneID: zoneID, ProductID: productID, Stock: 4}); err != nil {
		t.Fatalf("UpsertStock: %v", err)
	}
	if err := repo.UpsertStock(ctx, domain.ZoneStock{ZoneID: zoneID, ProductID: productID, Stock: 7}); err != nil {
		t.Fatalf("UpsertStock update: %v", err)
	}

	stock, err = repo.StockByZone(ctx, zoneID)
	if err != nil {
		t.Fatalf("StockByZone: %v", err)
	}
	if stock[productID] != 7 {
		t.Fatalf("stock = %d, want 7", stock[productID])
	}
}

func TestPostgres_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool, nil)
	if _, err := repo.GetByID(ctx, "00000000-0000-0000-0000-000000000000"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return pool
}

func resetTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(ctx, `TRUNCATE order_items, orders, zone_stock, coupons, products, categories, zones RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
}
