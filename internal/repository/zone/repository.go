package zone

import (
	"context"

	"podshop/internal/domain"
)

type Repository interface {
	ListActive(ctx context.Context) ([]domain.Zone, error)
	GetByID(ctx context.Context, id string) (*domain.Zone, error)
	// StockByZone returns the product_id -> stock table for one zone.
	// Products without a row are simply absent from the map.
	StockByZone(ctx context.Context, zoneID string) (map[string]int, error)
	UpsertStock(ctx context.Context, stock domain.ZoneStock) error
}
