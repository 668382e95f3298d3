package services

import (
	"context"

	"github.com/rajabpour4097/businessmanagement/internal/models"
	"github.com/rajabpour4097/businessmanagement/internal/repo"
)

type ProductService struct {
	products *repo.ProductRepo
}

func NewProductService(products *repo.ProductRepo) *ProductService {
	return &ProductService{products: products}
}

func (s *ProductService) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	return s.products.Create(ctx, product)
}

func (s *ProductService) List(ctx context.Context, filters repo.ProductFilters) ([]models.Product, int64, error) {
	return s.products.List(ctx, filters)
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*models.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *ProductService) Update(ctx context.Context, product *models.Product) error {
	return s.products.Update(ctx, product)
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}
