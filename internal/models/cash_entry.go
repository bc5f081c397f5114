package models

import "time"

const (
	CashIn  = "in"
	CashOut = "out"
)

// Lançamento do caixa. Sales write an "in" entry on checkout; manual
// entries cover supplies, withdrawals and other movements.
type CashEntry struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date          string  `gorm:"size:10;not null;index" json:"date"` // YYYY-MM-DD
	Direction     string  `gorm:"size:5;not null" json:"direction"`
	Description   string  `gorm:"size:255" json:"description"`
	Amount        float64 `gorm:"not null" json:"amount"`
	PaymentMethod string  `gorm:"size:20" json:"payment_method"`

	CreatedAt time.Time `json:"created_at"`
}
