package schedule

import "github.com/norteboa/barberpos/internal/models"

// AvailableSlots filtra a grade contra o snapshot de agendamentos.
// Without a barber or a date the search is not narrowed yet and the
// full grid is returned as-is. Pure function of its inputs.
func AvailableSlots(grid Grid, appts []models.Appointment, barberID uint, dateISO string) []string {
	out := make([]string, 0, len(grid))

	if barberID == 0 || dateISO == "" {
		return append(out, grid...)
	}

	taken := make(map[string]struct{}, len(appts))
	for _, ap := range appts {
		if ap.BarberID == barberID && ap.Date == dateISO && Status(ap.Status) != StatusCancelled {
			taken[ap.Slot] = struct{}{}
		}
	}

	for _, slot := range grid {
		if _, ok := taken[slot]; !ok {
			out = append(out, slot)
		}
	}
	return out
}

// IsAvailable é o predicado único por trás da grade e da validação de reserva:
// a slot is taken while a live (pending or confirmed) appointment holds it.
func IsAvailable(appts []models.Appointment, barberID uint, dateISO, slot string) bool {
	for _, ap := range appts {
		if ap.BarberID == barberID &&
			ap.Date == dateISO &&
			ap.Slot == slot &&
			IsLive(Status(ap.Status)) {
			return false
		}
	}
	return true
}
