package schedule

import (
	"context"

	"github.com/rs/zerolog/log"

	domain "github.com/norteboa/barberpos/internal/domain/schedule"
	"github.com/norteboa/barberpos/internal/httperr"
	"github.com/norteboa/barberpos/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	ClientID uint
	BarberID uint
	Date     string // YYYY-MM-DD
	Slot     string // HH:MM
	Service  string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	cache Cache
	grid  domain.Grid
}

func NewBookAppointment(
	repo domain.Repository,
	cache Cache,
	grid domain.Grid,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		cache: cache,
		grid:  grid,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	if _, err := uc.repo.GetClient(ctx, in.ClientID); err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	if _, err := uc.repo.GetBarber(ctx, in.BarberID); err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	// Full snapshot; the engine decides against it and stays pure.
	appts, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	ap, err := domain.Book(uc.grid, appts, domain.BookingInput{
		ClientID: in.ClientID,
		BarberID: in.BarberID,
		Date:     in.Date,
		Slot:     in.Slot,
		Service:  in.Service,
	})
	if err != nil {
		return nil, err
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if err := uc.cache.Invalidate(ctx, ap.BarberID, ap.Date); err != nil {
		log.Warn().Err(err).Msg("availability cache invalidate failed")
	}

	return ap, nil
}
