package models

import "time"

const (
	InventoryTxIn         = "in"
	InventoryTxOut        = "out"
	InventoryTxAdjustment = "adjustment"
)

// InventoryTransaction is one stock movement against a product: goods
// in, goods out, or a manual count adjustment.
type InventoryTransaction struct {
	ID              string    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProductID       string    `gorm:"type:uuid;index;not null" json:"product_id"`
	TransactionType string    `gorm:"size:20;not null" json:"transaction_type"`
	Quantity        int       `gorm:"not null" json:"quantity"`
	UnitPrice       float64   `gorm:"not null" json:"unit_price"`
	Description     string    `json:"description"`
	ReferenceNumber string    `gorm:"size:50" json:"reference_number"`
	CreatedByID     string    `gorm:"type:uuid;index;not null" json:"created_by_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TotalAmount is the monetary value of the movement.
func (t *InventoryTransaction) TotalAmount() float64 {
	return float64(t.Quantity) * t.UnitPrice
}
