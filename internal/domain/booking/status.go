package booking

import "github.com/agendly/booking-api/internal/httperr"

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// ActiveStatuses são os status que ocupam horário na agenda.
// Cancelado e concluído nunca bloqueiam um slot.
var ActiveStatuses = []string{
	string(StatusPending),
	string(StatusConfirmed),
}

// ===============================
// Validations
// ===============================

// CanConfirm define se uma reserva pode ser confirmada
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

// CanCancel define se uma reserva pode ser cancelada
func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

// CanComplete define se uma reserva pode ser concluída
func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

// InitialStatus valida status inicial
func InitialStatus() Status {
	return StatusPending
}
