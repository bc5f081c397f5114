package models

import "time"

const (
	ProductKindProduct = "product"
	ProductKindService = "service"
)

// Produto ou serviço do catálogo. Services carry no stock.
type Product struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Stock       int     `gorm:"default:0" json:"stock"`
	Kind        string  `gorm:"size:20;default:'product'" json:"kind"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
