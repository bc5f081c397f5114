package schedule

// Grid é a grade fixa de horários agendáveis do dia, em ordem.
// Injected configuration: deployments may run a different shift pattern,
// the engine never computes slot values.
type Grid []string

// DefaultGrid: half-hour slots across a morning and an afternoon shift,
// with the midday break between them.
func DefaultGrid() Grid {
	return Grid{
		"08:00", "08:30", "09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
		"14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00", "17:30", "18:00",
	}
}

func (g Grid) Contains(slot string) bool {
	for _, s := range g {
		if s == slot {
			return true
		}
	}
	return false
}
