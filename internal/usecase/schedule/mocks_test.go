package schedule

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/norteboa/barberpos/internal/models"
)

// Mock структуры for the schedule repository and cache.

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockRepository) ListAppointmentsForDate(ctx context.Context, date string) ([]models.Appointment, error) {
	args := m.Called(ctx, date)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockRepository) ListAppointmentsForBarber(ctx context.Context, barberID uint) ([]models.Appointment, error) {
	args := m.Called(ctx, barberID)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockRepository) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}

func (m *MockRepository) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}

func (m *MockRepository) GetClient(ctx context.Context, id uint) (*models.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Client), args.Error(1)
}

func (m *MockRepository) GetBarber(ctx context.Context, id uint) (*models.Barber, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Barber), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, barberID uint, date string) ([]string, error) {
	args := m.Called(ctx, barberID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, barberID uint, date string, slots []string) error {
	args := m.Called(ctx, barberID, date, slots)
	return args.Error(0)
}

func (m *MockCache) Invalidate(ctx context.Context, barberID uint, date string) error {
	args := m.Called(ctx, barberID, date)
	return args.Error(0)
}
