package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/norteboa/barberpos/internal/domain/schedule"
	"github.com/norteboa/barberpos/internal/httperr"
	"github.com/norteboa/barberpos/internal/httpresp"
	ucSchedule "github.com/norteboa/barberpos/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book         *ucSchedule.BookAppointment
	availability *ucSchedule.GetAvailability
	transition   *ucSchedule.TransitionAppointment
	list         *ucSchedule.ListAppointments
}

func NewAppointmentHandler(
	book *ucSchedule.BookAppointment,
	availability *ucSchedule.GetAvailability,
	transition *ucSchedule.TransitionAppointment,
	list *ucSchedule.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:         book,
		availability: availability,
		transition:   transition,
		list:         list,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	ClientID uint   `json:"client_id" binding:"required"`
	BarberID uint   `json:"barber_id" binding:"required"`
	Date     string `json:"date" binding:"required"` // DD/MM/YYYY or YYYY-MM-DD
	Slot     string `json:"slot" binding:"required"` // HH:MM
	Service  string `json:"service" binding:"required"`
}

// normalizeDate aceita a data como digitada no balcão (DD/MM/YYYY) ou já
// em ISO, devolvendo sempre YYYY-MM-DD.
func normalizeDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if strings.Contains(raw, "/") {
		return domain.ToISODate(raw)
	}
	return raw, nil
}

// ======================================================
// HANDLERS
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	date, err := normalizeDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_input", "Data inválida. Use o formato DD/MM/AAAA.")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucSchedule.BookAppointmentInput{
		ClientID: req.ClientID,
		BarberID: req.BarberID,
		Date:     date,
		Slot:     req.Slot,
		Service:  req.Service,
	})
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) Availability(c *gin.Context) {
	var barberID uint
	if raw := c.Query("barber_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
			return
		}
		barberID = uint(id)
	}

	date, err := normalizeDate(c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_input", "Data inválida. Use o formato DD/MM/AAAA.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), barberID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_get_availability", "Erro ao buscar horários.")
		return
	}

	httpresp.List(c, slots)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	date, err := normalizeDate(c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_input", "Data inválida. Use o formato DD/MM/AAAA.")
		return
	}

	var barberID uint
	if raw := c.Query("barber_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
			return
		}
		barberID = uint(id)
	}

	apps, err := h.list.Execute(c.Request.Context(), date, barberID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, apps)
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.applyTransition(c, domain.ActionConfirm)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.applyTransition(c, domain.ActionCancel)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.applyTransition(c, domain.ActionComplete)
}

func (h *AppointmentHandler) applyTransition(c *gin.Context, action domain.Action) {
	id := c.Param("id")

	ap, err := h.transition.Execute(c.Request.Context(), id, action)
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// ERROR MAPPING
// ======================================================

func writeScheduleError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	switch code {
	case "slot_unavailable":
		httperr.Conflict(c, code, "Horário indisponível para este barbeiro.")
	case "illegal_transition":
		httperr.BadRequest(c, code, err.Error())
	case "invalid_input":
		httperr.BadRequest(c, code, err.Error())
	case "appointment_not_found", "client_not_found", "barber_not_found":
		httperr.NotFound(c, code, "Registro não encontrado.")
	default:
		httperr.BadRequest(c, code, err.Error())
	}
}
