package models

import "time"

type Account struct {
	ID            string    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name          string    `gorm:"size:200;not null" json:"name"`
	AccountNumber string    `gorm:"size:50;uniqueIndex;not null" json:"account_number"`
	Balance       float64   `gorm:"not null;default:0" json:"balance"`
	IsActive      bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
