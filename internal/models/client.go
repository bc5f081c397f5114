package models

import "time"

// Cliente da barbearia, sem login próprio
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Phone    string `gorm:"size:20;not null" json:"phone"`
	Birthday string `gorm:"size:10" json:"birthday"` // DD/MM/YYYY, as typed at the counter

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
