package services

import (
	"context"

	"github.com/rajabpour4097/businessmanagement/internal/models"
	"github.com/rajabpour4097/businessmanagement/internal/repo"
)

// InventoryService records stock movements. Creating a transaction also
// applies it to the product's quantity; the repo does both atomically.
type InventoryService struct {
	transactions *repo.InventoryTxRepo
}

func NewInventoryService(transactions *repo.InventoryTxRepo) *InventoryService {
	return &InventoryService{transactions: transactions}
}

func (s *InventoryService) Create(ctx context.Context, tx *models.InventoryTransaction) (*models.InventoryTransaction, error) {
	return s.transactions.CreateAndApply(ctx, tx)
}

func (s *InventoryService) GetByID(ctx context.Context, id string) (*models.InventoryTransaction, error) {
	return s.transactions.GetByID(ctx, id)
}

func (s *InventoryService) List(ctx context.Context, filters repo.InventoryTxFilters) ([]models.InventoryTransaction, int64, error) {
	return s.transactions.List(ctx, filters)
}
