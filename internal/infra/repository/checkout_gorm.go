package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/norteboa/barberpos/internal/httperr"
	"github.com/norteboa/barberpos/internal/models"
	"github.com/norteboa/barberpos/internal/usecase/checkout"
)

type CheckoutGormRepository struct {
	db *gorm.DB
}

func NewCheckoutGormRepository(db *gorm.DB) *CheckoutGormRepository {
	return &CheckoutGormRepository{db: db}
}

func (r *CheckoutGormRepository) GetProducts(
	ctx context.Context,
	ids []uint,
) ([]models.Product, error) {

	var products []models.Product
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// SaveSale grava venda, itens, baixa de estoque e lançamento de caixa em
// uma transação. The stock decrement re-checks the balance so a stale
// product read cannot drive it negative.
func (r *CheckoutGormRepository) SaveSale(
	ctx context.Context,
	sale *models.Sale,
	stockDelta map[uint]int,
	entry *models.CashEntry,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Create(sale).Error; err != nil {
			return err
		}

		for productID, qty := range stockDelta {
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", productID, qty).
				Update("stock", gorm.Expr("stock - ?", qty))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return httperr.ErrBusiness("insufficient_stock")
			}
		}

		return tx.Create(entry).Error
	})
}

// Compile-time check
var _ checkout.Repository = (*CheckoutGormRepository)(nil)
