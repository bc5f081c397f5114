package schedule

import (
	"context"

	domain "github.com/norteboa/barberpos/internal/domain/schedule"
	"github.com/norteboa/barberpos/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute lista agendamentos, opcionalmente restritos a uma data ou a um barbeiro.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	date string,
	barberID uint,
) ([]models.Appointment, error) {

	switch {
	case date != "":
		return uc.repo.ListAppointmentsForDate(ctx, date)
	case barberID != 0:
		return uc.repo.ListAppointmentsForBarber(ctx, barberID)
	default:
		return uc.repo.ListAppointments(ctx)
	}
}
