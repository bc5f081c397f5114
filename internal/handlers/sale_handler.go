package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/norteboa/barberpos/internal/httperr"
	"github.com/norteboa/barberpos/internal/httpresp"
	"github.com/norteboa/barberpos/internal/models"
	"github.com/norteboa/barberpos/internal/usecase/checkout"
)

type SaleHandler struct {
	db        *gorm.DB
	closeSale *checkout.CloseSale
}

func NewSaleHandler(db *gorm.DB, closeSale *checkout.CloseSale) *SaleHandler {
	return &SaleHandler{db: db, closeSale: closeSale}
}

// --------- Requests ---------

type SaleItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type CreateSaleRequest struct {
	ClientName    string            `json:"client_name"`
	PaymentMethod string            `json:"payment_method"`
	Items         []SaleItemRequest `json:"items" binding:"required"`
}

// --------- Handlers ---------

func (h *SaleHandler) Create(c *gin.Context) {
	var req CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	items := make([]checkout.CartItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, checkout.CartItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}

	sale, err := h.closeSale.Execute(c.Request.Context(), checkout.CloseSaleInput{
		ClientName:    req.ClientName,
		PaymentMethod: req.PaymentMethod,
		Items:         items,
	})
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			switch code {
			case "insufficient_stock":
				httperr.Conflict(c, code, err.Error())
			case "product_not_found":
				httperr.NotFound(c, code, "Produto não encontrado.")
			default:
				httperr.BadRequest(c, code, err.Error())
			}
			return
		}
		httperr.Internal(c, "failed_to_create_sale", "Erro ao finalizar venda.")
		return
	}

	httpresp.Created(c, sale)
}

func (h *SaleHandler) List(c *gin.Context) {
	var sales []models.Sale
	if err := h.db.
		Preload("Items").
		Order("date DESC, created_at DESC").
		Find(&sales).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_sales"})
		return
	}

	c.JSON(http.StatusOK, sales)
}
