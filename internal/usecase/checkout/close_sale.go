package checkout

import (
	"context"
	"fmt"

	"github.com/norteboa/barberpos/internal/httperr"
	"github.com/norteboa/barberpos/internal/models"
	"github.com/norteboa/barberpos/internal/timezone"
)

// ======================================================
// REPOSITORY
// ======================================================

type Repository interface {
	GetProducts(ctx context.Context, ids []uint) ([]models.Product, error)

	// SaveSale grava a venda, baixa o estoque e lança a entrada no caixa
	// atomicamente.
	SaveSale(
		ctx context.Context,
		sale *models.Sale,
		stockDelta map[uint]int,
		entry *models.CashEntry,
	) error
}

// ======================================================
// INPUT
// ======================================================

type CartItem struct {
	ProductID uint
	Quantity  int
}

type CloseSaleInput struct {
	ClientName    string
	PaymentMethod string
	Items         []CartItem
}

// ======================================================
// USE CASE
// ======================================================

type CloseSale struct {
	repo Repository
	tz   string
}

func NewCloseSale(repo Repository, tz string) *CloseSale {
	return &CloseSale{repo: repo, tz: tz}
}

func (uc *CloseSale) Execute(
	ctx context.Context,
	in CloseSaleInput,
) (*models.Sale, error) {

	if len(in.Items) == 0 {
		return nil, httperr.ErrBusiness("empty_cart")
	}

	if in.PaymentMethod == "" {
		in.PaymentMethod = models.PaymentCash
	}
	if !models.IsPaymentMethod(in.PaymentMethod) {
		return nil, httperr.ErrBusinessDetail("invalid_input", "unknown payment method")
	}

	ids := make([]uint, 0, len(in.Items))
	for _, item := range in.Items {
		if item.ProductID == 0 || item.Quantity <= 0 {
			return nil, httperr.ErrBusinessDetail("invalid_input", "cart item needs a product and a positive quantity")
		}
		ids = append(ids, item.ProductID)
	}

	products, err := uc.repo.GetProducts(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	sale := &models.Sale{
		Date:          timezone.Today(uc.tz),
		ClientName:    in.ClientName,
		PaymentMethod: in.PaymentMethod,
	}

	// Only products carry stock; services sell without a balance check.
	stockDelta := make(map[uint]int)

	for _, item := range in.Items {
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, httperr.ErrBusiness("product_not_found")
		}

		if product.Kind == models.ProductKindProduct {
			if product.Stock < stockDelta[product.ID]+item.Quantity {
				return nil, httperr.ErrBusinessDetail(
					"insufficient_stock",
					fmt.Sprintf("%s: %d left", product.Name, product.Stock),
				)
			}
			stockDelta[product.ID] += item.Quantity
		}

		subtotal := float64(item.Quantity) * product.Price
		sale.Items = append(sale.Items, models.SaleItem{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  item.Quantity,
			Subtotal:  subtotal,
		})
		sale.Total += subtotal
	}

	entry := &models.CashEntry{
		Date:          sale.Date,
		Direction:     models.CashIn,
		Description:   saleDescription(sale),
		Amount:        sale.Total,
		PaymentMethod: sale.PaymentMethod,
	}

	if err := uc.repo.SaveSale(ctx, sale, stockDelta, entry); err != nil {
		return nil, err
	}

	return sale, nil
}

func saleDescription(sale *models.Sale) string {
	if sale.ClientName != "" {
		return "Venda - " + sale.ClientName
	}
	return "Venda balcão"
}
