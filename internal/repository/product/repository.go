package product

import (
	"context"

	"podshop/internal/domain"
)

type Repository interface {
	ListActive(ctx context.Context, categorySlug string) ([]domain.Product, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}
