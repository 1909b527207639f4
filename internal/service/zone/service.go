package zone

import (
	"context"
	"fmt"

	"podshop/internal/domain"
)

type zoneRepo interface {
	ListActive(ctx context.Context) ([]domain.Zone, error)
	GetByID(ctx context.Context, id string) (*domain.Zone, error)
	StockByZone(ctx context.Context, zoneID string) (map[string]int, error)
}

type Service struct {
	repo zoneRepo
}

func New(repo zoneRepo) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Zone, error) {
	return s.repo.ListActive(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Zone, error) {
	return s.repo.GetByID(ctx, id)
}

// FilterFor builds the availability filter for the session's persisted
// zone id. A stale or empty id yields the unfiltered state; a failed
// stock fetch yields a filter whose stock data is marked not loaded.
func (s *Service) FilterFor(ctx context.Context, zoneID string) (*Filter, error) {
	if zoneID == "" {
		return Unfiltered(), nil
	}

	zones, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list zones: %w: %w", domain.ErrDataUnavailable, err)
	}
	z := ValidateSelection(zoneID, zones)
	if z == nil {
		// Previously selected zone no longer exists; selection must be
		// discarded by the caller.
		return nil, domain.ErrNotFound
	}

	stock, err := s.repo.StockByZone(ctx, z.ID)
	if err != nil {
		return NewFilter(*z, nil), nil
	}
	table := make(StockTable, len(stock))
	for productID, qty := range stock {
		table[productID] = qty
	}
	return NewFilter(*z, table), nil
}
