package models

import "time"

const (
	PaymentCash   = "cash"
	PaymentPix    = "pix"
	PaymentCredit = "credit"
	PaymentDebit  = "debit"
)

func IsPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentPix, PaymentCredit, PaymentDebit:
		return true
	}
	return false
}

type Sale struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date          string  `gorm:"size:10;not null;index" json:"date"` // YYYY-MM-DD
	ClientName    string  `gorm:"size:100" json:"client_name"`
	PaymentMethod string  `gorm:"size:20;default:'cash'" json:"payment_method"`
	Total         float64 `gorm:"not null" json:"total"`

	Items []SaleItem `gorm:"constraint:OnDelete:CASCADE;" json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SaleItem struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	SaleID uint `json:"sale_id"`

	ProductID uint    `json:"product_id"`
	Name      string  `gorm:"size:100;not null" json:"name"`
	UnitPrice float64 `gorm:"not null" json:"unit_price"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Subtotal  float64 `gorm:"not null" json:"subtotal"`
}
