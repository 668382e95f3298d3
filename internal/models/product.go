package models

import "time"

type Product struct {
	ID           string    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name         string    `gorm:"size:200;not null" json:"name"`
	Code         string    `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Description  string    `json:"description"`
	UnitPrice    float64   `gorm:"not null;default:0" json:"unit_price"`
	Quantity     int       `gorm:"not null;default:0" json:"quantity"`
	MinimumStock int       `gorm:"not null;default:0" json:"minimum_stock"`
	Category     string    `gorm:"size:100" json:"category"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TotalValue is the current stock value of the product.
func (p *Product) TotalValue() float64 {
	return float64(p.Quantity) * p.UnitPrice
}

// IsLowStock reports whether the quantity has dropped to the reorder threshold.
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.MinimumStock
}
