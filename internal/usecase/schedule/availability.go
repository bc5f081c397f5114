package schedule

import (
	"context"

	"github.com/rs/zerolog/log"

	domain "github.com/norteboa/barberpos/internal/domain/schedule"
)

type GetAvailability struct {
	repo  domain.Repository
	cache Cache
	grid  domain.Grid
}

func NewGetAvailability(
	repo domain.Repository,
	cache Cache,
	grid domain.Grid,
) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		cache: cache,
		grid:  grid,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	barberID uint,
	date string,
) ([]string, error) {

	// Unnarrowed search: full grid, nothing to cache.
	if barberID == 0 || date == "" {
		return domain.AvailableSlots(uc.grid, nil, 0, ""), nil
	}

	if cached, err := uc.cache.Get(ctx, barberID, date); err != nil {
		log.Warn().Err(err).Msg("availability cache read failed")
	} else if cached != nil {
		return cached, nil
	}

	appts, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	slots := domain.AvailableSlots(uc.grid, appts, barberID, date)

	if err := uc.cache.Set(ctx, barberID, date, slots); err != nil {
		log.Warn().Err(err).Msg("availability cache write failed")
	}

	return slots, nil
}
