package schedule

import (
	"github.com/google/uuid"

	"github.com/norteboa/barberpos/internal/httperr"
	"github.com/norteboa/barberpos/internal/models"
)

// ===============================
// Booking
// ===============================

type BookingInput struct {
	ClientID uint
	BarberID uint
	Date     string // YYYY-MM-DD
	Slot     string // HH:MM
	Service  string
}

// Book valida uma reserva contra o snapshot e monta o agendamento.
// Pure decision function: persistence belongs to the caller, the engine
// holds no state of its own.
func Book(grid Grid, appts []models.Appointment, in BookingInput) (*models.Appointment, error) {
	if in.ClientID == 0 || in.BarberID == 0 || in.Date == "" || in.Slot == "" || in.Service == "" {
		return nil, httperr.ErrBusinessDetail("invalid_input", "all booking fields are required")
	}

	if _, err := ParseISODate(in.Date); err != nil {
		return nil, err
	}

	if !grid.Contains(in.Slot) {
		return nil, httperr.ErrBusinessDetail("invalid_input", "slot is not in the schedule grid")
	}

	if !IsAvailable(appts, in.BarberID, in.Date, in.Slot) {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	return &models.Appointment{
		ID:       uuid.NewString(),
		ClientID: in.ClientID,
		BarberID: in.BarberID,
		Date:     in.Date,
		Slot:     in.Slot,
		Service:  in.Service,
		Status:   string(InitialStatus()),
	}, nil
}
