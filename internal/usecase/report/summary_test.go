package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/norteboa/barberpos/internal/httperr"
	"github.com/norteboa/barberpos/internal/models"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CountClientsCreatedBetween(ctx context.Context, from, to string) (int64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) ListAppointmentsBetween(ctx context.Context, from, to string) ([]models.Appointment, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]models.Appointment), args.Error(1)
}

func (m *MockRepository) ListSalesBetween(ctx context.Context, from, to string) ([]models.Sale, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]models.Sale), args.Error(1)
}

func (m *MockRepository) ListCashEntriesBetween(ctx context.Context, from, to string) ([]models.CashEntry, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]models.CashEntry), args.Error(1)
}

func TestBuildSummary_Aggregates(t *testing.T) {
	repo := &MockRepository{}
	uc := NewBuildSummary(repo, "America/Sao_Paulo")

	repo.On("CountClientsCreatedBetween", mock.Anything, mock.Anything, mock.Anything).Return(int64(2), nil)
	repo.On("ListAppointmentsBetween", mock.Anything, mock.Anything, mock.Anything).Return([]models.Appointment{
		{Status: "pending"},
		{Status: "confirmed"},
		{Status: "confirmed"},
		{Status: "cancelled"},
	}, nil)
	repo.On("ListSalesBetween", mock.Anything, mock.Anything, mock.Anything).Return([]models.Sale{
		{Total: 90.0},
		{Total: 40.0},
	}, nil)
	repo.On("ListCashEntriesBetween", mock.Anything, mock.Anything, mock.Anything).Return([]models.CashEntry{
		{Direction: models.CashIn, Amount: 130.0},
		{Direction: models.CashOut, Amount: 30.0},
	}, nil)

	out, err := uc.Execute(context.Background(), PeriodToday)
	require.NoError(t, err)

	assert.Equal(t, int64(2), out.NewClients)
	assert.Equal(t, 4, out.Appointments)
	assert.Equal(t, 2, out.AppointmentsByStatus["confirmed"])
	assert.Equal(t, 1, out.AppointmentsByStatus["cancelled"])
	assert.Equal(t, 2, out.Sales)
	assert.InDelta(t, 130.0, out.Revenue, 1e-9)
	assert.InDelta(t, 130.0, out.CashIn, 1e-9)
	assert.InDelta(t, 30.0, out.CashOut, 1e-9)
	assert.InDelta(t, 100.0, out.CashBalance, 1e-9)
	assert.Equal(t, out.From, out.To, "today is a single-day window")
}

func TestBuildSummary_UnknownPeriod(t *testing.T) {
	repo := &MockRepository{}
	uc := NewBuildSummary(repo, "America/Sao_Paulo")

	_, err := uc.Execute(context.Background(), "year")
	assert.True(t, httperr.IsBusiness(err, "invalid_input"))
}

func TestPeriodBounds(t *testing.T) {
	// Wednesday 2024-03-13
	now := time.Date(2024, 3, 13, 15, 0, 0, 0, time.UTC)

	from, to, err := periodBounds(PeriodToday, now)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-13", from)
	assert.Equal(t, "2024-03-13", to)

	from, to, err = periodBounds(PeriodWeek, now)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-10", from, "week starts on Sunday")
	assert.Equal(t, "2024-03-13", to)

	from, to, err = periodBounds(PeriodMonth, now)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", from)
	assert.Equal(t, "2024-03-13", to)

	// empty defaults to today
	from, to, err = periodBounds("", now)
	require.NoError(t, err)
	assert.Equal(t, from, to)
}
