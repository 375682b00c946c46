package booking

import (
	"context"
	"time"

	domain "github.com/agendly/booking-api/internal/domain/booking"
	"github.com/agendly/booking-api/internal/dto"
	"github.com/agendly/booking-api/internal/timezone"
)

type ListReservationsByDate struct {
	repo domain.Repository
}

func NewListReservationsByDate(
	repo domain.Repository,
) *ListReservationsByDate {
	return &ListReservationsByDate{
		repo: repo,
	}
}

func (uc *ListReservationsByDate) Execute(
	ctx context.Context,
	businessID uint,
	professionalID uint,
	date time.Time,
) ([]dto.ReservationListDTO, error) {

	biz, err := uc.repo.GetBusinessByID(ctx, businessID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(biz.Timezone)

	start := time.Date(
		date.Year(),
		date.Month(),
		date.Day(),
		0, 0, 0, 0,
		loc,
	)
	end := start.Add(24 * time.Hour)

	reservations, err := uc.repo.ListReservationsForPeriod(
		ctx,
		businessID,
		professionalID,
		start,
		end,
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ReservationListDTO, 0, len(reservations))
	for _, res := range reservations {
		out = append(out, dto.ReservationListDTO{
			ID:               res.ID,
			StartTime:        res.StartTime,
			EndTime:          res.EndTime,
			Status:           res.Status,
			ClientName:       res.Client.Name,
			ProfessionalName: res.Professional.Name,
			ServiceName:      res.Service.Name,
		})
	}

	return out, nil
}
