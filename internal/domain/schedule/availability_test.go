package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/norteboa/barberpos/internal/models"
)

func appt(barberID uint, date, slot string, status Status) models.Appointment {
	return models.Appointment{
		ID:       "ap-" + slot,
		ClientID: 1,
		BarberID: barberID,
		Date:     date,
		Slot:     slot,
		Service:  "Corte",
		Status:   string(status),
	}
}

func TestAvailableSlots_NoFilterWithoutBarberOrDate(t *testing.T) {
	grid := Grid{"08:00", "08:30", "09:00"}
	appts := []models.Appointment{
		appt(1, "2024-03-10", "08:30", StatusConfirmed),
	}

	assert.Equal(t, []string{"08:00", "08:30", "09:00"}, AvailableSlots(grid, appts, 0, "2024-03-10"))
	assert.Equal(t, []string{"08:00", "08:30", "09:00"}, AvailableSlots(grid, appts, 1, ""))
}

func TestAvailableSlots_ExcludesLiveAppointments(t *testing.T) {
	grid := Grid{"08:00", "08:30", "09:00"}
	appts := []models.Appointment{
		appt(1, "2024-03-10", "08:30", StatusConfirmed),
	}

	got := AvailableSlots(grid, appts, 1, "2024-03-10")
	assert.Equal(t, []string{"08:00", "09:00"}, got)
}

func TestAvailableSlots_CancelledReleasesSlot(t *testing.T) {
	grid := Grid{"08:00", "08:30", "09:00"}
	appts := []models.Appointment{
		appt(1, "2024-03-10", "08:30", StatusCancelled),
	}

	got := AvailableSlots(grid, appts, 1, "2024-03-10")
	assert.Equal(t, []string{"08:00", "08:30", "09:00"}, got)
}

func TestAvailableSlots_OtherBarberOrDateDoesNotBlock(t *testing.T) {
	grid := Grid{"08:00", "08:30"}
	appts := []models.Appointment{
		appt(2, "2024-03-10", "08:00", StatusPending),
		appt(1, "2024-03-11", "08:30", StatusPending),
	}

	got := AvailableSlots(grid, appts, 1, "2024-03-10")
	assert.Equal(t, []string{"08:00", "08:30"}, got)
}

func TestAvailableSlots_PreservesGridOrderAndValues(t *testing.T) {
	grid := DefaultGrid()
	appts := []models.Appointment{
		appt(1, "2024-03-10", "14:00", StatusPending),
		appt(1, "2024-03-10", "09:30", StatusConfirmed),
	}

	got := AvailableSlots(grid, appts, 1, "2024-03-10")
	assert.Len(t, got, len(grid)-2)

	// every result value comes from the grid, in grid order
	idx := 0
	for _, slot := range got {
		for idx < len(grid) && grid[idx] != slot {
			idx++
		}
		assert.Less(t, idx, len(grid), "slot %s out of grid order", slot)
	}

	// pure: same inputs, same output
	assert.Equal(t, got, AvailableSlots(grid, appts, 1, "2024-03-10"))
}

func TestIsAvailable(t *testing.T) {
	appts := []models.Appointment{
		appt(1, "2024-03-10", "08:30", StatusPending),
		appt(1, "2024-03-10", "09:00", StatusCancelled),
		appt(1, "2024-03-10", "10:00", StatusCompleted),
	}

	assert.False(t, IsAvailable(appts, 1, "2024-03-10", "08:30"), "pending holds the slot")
	assert.True(t, IsAvailable(appts, 1, "2024-03-10", "09:00"), "cancelled releases the slot")
	assert.True(t, IsAvailable(appts, 1, "2024-03-10", "10:00"), "completed is history")
	assert.True(t, IsAvailable(appts, 1, "2024-03-10", "08:00"), "untouched slot is free")
	assert.True(t, IsAvailable(appts, 2, "2024-03-10", "08:30"), "other barber is free")
}
