package service

import (
	"context"

	"marketplace/ecommerce/internal/model"
)

type ProductStore interface {
	FindAll(ctx context.Context) ([]model.Product, error)
	Save(ctx context.Context, p model.Product) (model.Product, error)
	DeleteByID(ctx context.Context, id int64) error
	ReplaceAll(ctx context.Context, products []model.Product) ([]model.Product, error)
}

type CatalogService struct {
	store ProductStore
}

func NewCatalogService(store ProductStore) *CatalogService {
	return &CatalogService{store: store}
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return s.store.FindAll(ctx)
}

// AddProduct stores p under a freshly generated id. Fields are not validated.
func (s *CatalogService) AddProduct(ctx context.Context, p model.Product) (model.Product, error) {
	p.ID = 0
	return s.store.Save(ctx, p)
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id int64) error {
	return s.store.DeleteByID(ctx, id)
}
