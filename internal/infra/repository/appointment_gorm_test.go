package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/norteboa/barberpos/internal/httperr"
	"github.com/norteboa/barberpos/internal/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn: conn,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return db, mock
}

func TestListAppointments(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentGormRepository(db)

	rows := sqlmock.NewRows([]string{"id", "client_id", "barber_id", "date", "slot", "service", "status"}).
		AddRow("a1", 1, 2, "2024-03-13", "09:00", "Corte", "pending").
		AddRow("a2", 3, 2, "2024-03-13", "08:30", "Barba", "confirmed")

	mock.ExpectQuery(`SELECT .* FROM "appointments"`).WillReturnRows(rows)

	apps, err := repo.ListAppointments(context.Background())
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, "a1", apps[0].ID)
	assert.Equal(t, "confirmed", apps[1].Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAppointment(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentGormRepository(db)

	rows := sqlmock.NewRows([]string{"id", "client_id", "barber_id", "date", "slot", "service", "status"}).
		AddRow("a1", 1, 2, "2024-03-13", "09:00", "Corte", "pending")

	mock.ExpectQuery(`SELECT .* FROM "appointments" WHERE id = .*`).
		WithArgs("a1", 1).
		WillReturnRows(rows)

	ap, err := repo.GetAppointment(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, "09:00", ap.Slot)
	assert.Equal(t, uint(2), ap.BarberID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAppointment(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentGormRepository(db)

	mock.ExpectExec(`INSERT INTO "appointments"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateAppointment(context.Background(), &models.Appointment{
		ID:       "a1",
		ClientID: 1,
		BarberID: 2,
		Date:     "2024-03-13",
		Slot:     "09:00",
		Service:  "Corte",
		Status:   "pending",
	})
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAppointment_SlotTakenMapsUniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentGormRepository(db)

	mock.ExpectExec(`INSERT INTO "appointments"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uniq_live_slot"})

	err := repo.CreateAppointment(context.Background(), &models.Appointment{
		ID:       "a1",
		ClientID: 1,
		BarberID: 2,
		Date:     "2024-03-13",
		Slot:     "09:00",
		Service:  "Corte",
		Status:   "pending",
	})
	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAppointmentsForBarber(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentGormRepository(db)

	mock.ExpectQuery(`SELECT .* FROM "appointments" WHERE barber_id = .*`).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "client_id", "barber_id", "date", "slot", "service", "status"}).
			AddRow("a1", 1, 2, "2024-03-13", "09:00", "Corte", "pending"))
	mock.ExpectQuery(`SELECT .* FROM "clients"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "João"))

	apps, err := repo.ListAppointmentsForBarber(context.Background(), uint(2))
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "João", apps[0].Client.Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}
