package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/norteboa/barberpos/internal/httperr"
	"github.com/norteboa/barberpos/internal/httpresp"
	"github.com/norteboa/barberpos/internal/usecase/cashbook"
)

type CashHandler struct {
	cashbook *cashbook.Cashbook
}

func NewCashHandler(cb *cashbook.Cashbook) *CashHandler {
	return &CashHandler{cashbook: cb}
}

// --------- Requests ---------

type CashEntryRequest struct {
	Date          string  `json:"date"` // DD/MM/YYYY or YYYY-MM-DD, defaults to today
	Direction     string  `json:"direction" binding:"required"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount" binding:"required"`
	PaymentMethod string  `json:"payment_method"`
}

// --------- Handlers ---------

func (h *CashHandler) Create(c *gin.Context) {
	var req CashEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	date := req.Date
	if date != "" {
		var err error
		if date, err = normalizeDate(date); err != nil {
			httperr.BadRequest(c, "invalid_input", "Data inválida. Use o formato DD/MM/AAAA.")
			return
		}
	}

	entry, err := h.cashbook.AddEntry(c.Request.Context(), cashbook.AddEntryInput{
		Date:          date,
		Direction:     req.Direction,
		Description:   req.Description,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, err.Error())
			return
		}
		httperr.Internal(c, "failed_to_create_entry", "Erro ao lançar no caixa.")
		return
	}

	httpresp.Created(c, entry)
}

func (h *CashHandler) List(c *gin.Context) {
	from, err := normalizeDate(c.Query("from"))
	if err != nil {
		httperr.BadRequest(c, "invalid_input", "Data inicial inválida.")
		return
	}
	to, err := normalizeDate(c.Query("to"))
	if err != nil {
		httperr.BadRequest(c, "invalid_input", "Data final inválida.")
		return
	}

	entries, err := h.cashbook.ListByPeriod(c.Request.Context(), from, to)
	if err != nil {
		httperr.Internal(c, "failed_to_list_entries", "Erro ao listar o caixa.")
		return
	}

	httpresp.List(c, entries)
}
