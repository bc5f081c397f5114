package schedule

import (
	"context"

	"github.com/norteboa/barberpos/internal/models"
)

type Repository interface {
	// -------- Snapshot --------
	ListAppointments(ctx context.Context) ([]models.Appointment, error)

	ListAppointmentsForDate(
		ctx context.Context,
		date string,
	) ([]models.Appointment, error)

	ListAppointmentsForBarber(
		ctx context.Context,
		barberID uint,
	) ([]models.Appointment, error)

	// -------- Appointment --------
	GetAppointment(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Referenced entities --------
	GetClient(ctx context.Context, id uint) (*models.Client, error)
	GetBarber(ctx context.Context, id uint) (*models.Barber, error)
}
