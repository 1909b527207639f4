package category

import (
	"context"

	"podshop/internal/domain"
)

type Repository interface {
	ListActive(ctx context.Context) ([]domain.Category, error)
	Upsert(ctx context.Context, c domain.Category) (*domain.Category, error)
}
