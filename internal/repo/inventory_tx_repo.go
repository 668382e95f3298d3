package repo

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/rajabpour4097/businessmanagement/internal/models"
)

type InventoryTxRepo struct {
	db *gorm.DB
}

type InventoryTxFilters struct {
	ProductID string
	Type      string
	Page      int
	PerPage   int
}

func NewInventoryTxRepo(db *gorm.DB) *InventoryTxRepo {
	return &InventoryTxRepo{db: db}
}

// CreateAndApply records the movement and adjusts the product's stock in
// one database transaction: "in" adds, "out" subtracts, "adjustment"
// replaces the count outright.
func (r *InventoryTxRepo) CreateAndApply(ctx context.Context, tx *models.InventoryTransaction) (*models.InventoryTransaction, error) {
	err := r.db.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		var product models.Product
		if err := db.First(&product, "id = ?", tx.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ErrNotFound
			}
			return fmt.Errorf("get product: %w", err)
		}

		switch tx.TransactionType {
		case models.InventoryTxIn:
			product.Quantity += tx.Quantity
		case models.InventoryTxOut:
			product.Quantity -= tx.Quantity
		case models.InventoryTxAdjustment:
			product.Quantity = tx.Quantity
		}

		if err := db.Model(&models.Product{}).Where("id = ?", product.ID).
			Update("quantity", product.Quantity).Error; err != nil {
			return fmt.Errorf("apply stock movement: %w", err)
		}

		if err := db.Create(tx).Error; err != nil {
			return fmt.Errorf("insert inventory transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tx, nil
}

func (r *InventoryTxRepo) GetByID(ctx context.Context, id string) (*models.InventoryTransaction, error) {
	return getRecord[models.InventoryTransaction](ctx, r.db, id, "inventory transaction")
}

func (r *InventoryTxRepo) List(ctx context.Context, filters InventoryTxFilters) ([]models.InventoryTransaction, int64, error) {
	scope := func(q *gorm.DB) *gorm.DB {
		if filters.ProductID != "" {
			q = q.Where("product_id = ?", filters.ProductID)
		}
		if filters.Type != "" {
			q = q.Where("transaction_type = ?", filters.Type)
		}
		return q
	}
	return listRecords[models.InventoryTransaction](ctx, r.db, scope, filters.Page, filters.PerPage, "inventory transactions")
}
