package schedule

import (
	"context"

	"github.com/rs/zerolog/log"

	domain "github.com/norteboa/barberpos/internal/domain/schedule"
	"github.com/norteboa/barberpos/internal/httperr"
	"github.com/norteboa/barberpos/internal/models"
	"github.com/norteboa/barberpos/internal/timezone"
)

type TransitionAppointment struct {
	repo  domain.Repository
	cache Cache
	tz    string
}

func NewTransitionAppointment(
	repo domain.Repository,
	cache Cache,
	tz string,
) *TransitionAppointment {
	return &TransitionAppointment{
		repo:  repo,
		cache: cache,
		tz:    tz,
	}
}

func (uc *TransitionAppointment) Execute(
	ctx context.Context,
	appointmentID string,
	action domain.Action,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	next, err := domain.Transition(domain.Status(ap.Status), action)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.tz)
	ap.Status = string(next)

	switch next {
	case domain.StatusConfirmed:
		ap.ConfirmedAt = &now
	case domain.StatusCancelled:
		ap.CancelledAt = &now
	case domain.StatusCompleted:
		ap.CompletedAt = &now
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if err := uc.cache.Invalidate(ctx, ap.BarberID, ap.Date); err != nil {
		log.Warn().Err(err).Msg("availability cache invalidate failed")
	}

	return ap, nil
}
