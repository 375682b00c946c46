package booking

import (
	"time"

	"github.com/agendly/booking-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(res *models.Reservation, now time.Time) error {
	if err := CanConfirm(Status(res.Status)); err != nil {
		return err
	}

	res.Status = string(StatusConfirmed)
	res.ConfirmedAt = &now
	return nil
}

func Cancel(res *models.Reservation, now time.Time) error {
	if err := CanCancel(Status(res.Status)); err != nil {
		return err
	}

	res.Status = string(StatusCancelled)
	res.CancelledAt = &now
	return nil
}

func Complete(res *models.Reservation, now time.Time) error {
	if err := CanComplete(Status(res.Status)); err != nil {
		return err
	}

	res.Status = string(StatusCompleted)
	res.CompletedAt = &now
	return nil
}
