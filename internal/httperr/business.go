package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos de negócio usados pelo fluxo de agendamento.
const (
	CodeValidation      = "validation"
	CodeInvalidPro      = "invalid_professional"
	CodeInvalidService  = "invalid_service"
	CodeSlotConflict    = "slot_conflict"
	CodeIdentityFailed  = "identity_resolution_failed"
	CodeOutsideHours    = "outside_working_hours"
	CodeTooSoon         = "too_soon"
	CodeInvalidDateTime = "invalid_date_or_time"
	CodeInvalidState    = "invalid_state"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// IsUniqueViolation detecta a violação do índice único parcial de slots
// (Postgres 23505) no insert da reserva.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
