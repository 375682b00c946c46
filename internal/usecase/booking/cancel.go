package booking

import (
	"context"

	"github.com/agendly/booking-api/internal/audit"
	domain "github.com/agendly/booking-api/internal/domain/booking"
	"github.com/agendly/booking-api/internal/httperr"
	"github.com/agendly/booking-api/internal/models"
	"github.com/agendly/booking-api/internal/timezone"
)

type CancelReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelReservation {
	return &CancelReservation{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelReservation) Execute(
	ctx context.Context,
	businessID uint,
	userID uint,
	reservationID uint,
) (*models.Reservation, error) {

	biz, err := uc.repo.GetBusinessByID(ctx, businessID)
	if err != nil {
		return nil, err
	}

	res, err := uc.repo.GetReservationForBusiness(ctx, reservationID, businessID)
	if err != nil {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	now := timezone.NowIn(biz.Timezone)
	if err := domain.Cancel(res, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BusinessID: businessID,
		UserID:     &userID,
		Action:     "reservation_cancelled",
		Entity:     "reservation",
		EntityID:   &res.ID,
	})

	return res, nil
}
