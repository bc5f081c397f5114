package schedule

import "github.com/norteboa/barberpos/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

type Action string

const (
	ActionConfirm  Action = "confirm"
	ActionCancel   Action = "cancel"
	ActionComplete Action = "complete"
)

func InitialStatus() Status {
	return StatusPending
}

// IsLive indica se o agendamento ocupa o horário.
// Cancelled frees the slot; completed is history and does not block it either.
func IsLive(s Status) bool {
	return s == StatusPending || s == StatusConfirmed
}

// ===============================
// Transitions
// ===============================

// Transition aplica uma ação ao status atual.
// confirm: pending → confirmed
// cancel:  pending|confirmed → cancelled
// complete: confirmed → completed
// completed and cancelled are terminal.
func Transition(current Status, action Action) (Status, error) {
	switch action {
	case ActionConfirm:
		if current == StatusPending {
			return StatusConfirmed, nil
		}
	case ActionCancel:
		if current == StatusPending || current == StatusConfirmed {
			return StatusCancelled, nil
		}
	case ActionComplete:
		if current == StatusConfirmed {
			return StatusCompleted, nil
		}
	}

	return current, httperr.ErrBusinessDetail(
		"illegal_transition",
		"cannot "+string(action)+" from "+string(current),
	)
}
