// Package catalog serves the storefront browse surface: active products
// and categories.
package catalog

import (
	"context"

	"podshop/internal/domain"
	categoryrepo "podshop/internal/repository/category"
	productrepo "podshop/internal/repository/product"
)

type Service struct {
	products   productrepo.Repository
	categories categoryrepo.Repository
}

func New(products productrepo.Repository, categories categoryrepo.Repository) *Service {
	return &Service{products: products, categories: categories}
}

func (s *Service) ListProducts(ctx context.Context, categorySlug string) ([]domain.Product, error) {
	return s.products.ListActive(ctx, categorySlug)
}

func (s *Service) GetProduct(ctx context.Context, slug string) (*domain.Product, error) {
	return s.products.GetBySlug(ctx, slug)
}

func (s *Service) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.ListActive(ctx)
}
