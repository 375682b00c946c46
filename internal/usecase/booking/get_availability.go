package booking

import (
	"context"
	"time"

	domain "github.com/agendly/booking-api/internal/domain/booking"
	"github.com/agendly/booking-api/internal/httperr"
	"github.com/agendly/booking-api/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute monta o DayWindow e os intervalos ocupados do dia e delega o
// cálculo puro para domain.ComputeSlots. Leitura consultiva: a palavra
// final sobre conflito é do CreateBooking.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	biz, err := uc.repo.GetBusinessByID(ctx, in.BusinessID)
	if err != nil {
		return nil, err
	}

	service, err := uc.repo.GetService(ctx, in.BusinessID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidService)
	}

	// profissional inativo não tem agenda
	if _, err := uc.repo.GetActiveProfessional(
		ctx,
		in.BusinessID,
		in.ProfessionalID,
	); err != nil {
		return []domain.TimeSlot{}, nil
	}

	weekday := int(in.Date.Weekday())

	oh, err := uc.repo.GetOperatingHours(ctx, in.BusinessID, weekday)
	if err != nil || !oh.Active || oh.OpensAt == "" || oh.ClosesAt == "" {
		return []domain.TimeSlot{}, nil
	}

	loc := in.Date.Location()

	parseHM := func(hm string) time.Time {
		t, _ := time.Parse("15:04", hm)
		return time.Date(
			in.Date.Year(), in.Date.Month(), in.Date.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		)
	}

	dayStart := parseHM(oh.OpensAt)
	dayEnd := parseHM(oh.ClosesAt)

	reservations, err := uc.repo.ListReservationsForDay(
		ctx,
		in.ProfessionalID,
		dayStart,
		dayEnd,
	)
	if err != nil {
		return nil, err
	}

	busy := make([]domain.BusyInterval, 0, len(reservations))
	for _, res := range reservations {
		busy = append(busy, domain.BusyInterval{
			StartMin: minuteOf(res.StartTime),
			EndMin:   minuteOf(res.EndTime),
		})
	}

	win := domain.DayWindow{
		OpensAt:    oh.OpensAt,
		ClosesAt:   oh.ClosesAt,
		BreakStart: oh.BreakStart,
		BreakEnd:   oh.BreakEnd,
	}

	slots := domain.ComputeSlots(win, service.DurationMin, busy)

	// Todo horário devolvido aqui tem que passar no CreateBooking:
	// aplica a mesma antecedência mínima do commit.
	minAdvance := biz.MinAdvanceMinutes
	if minAdvance <= 0 {
		minAdvance = 120
	}

	earliest := timezone.NowIn(biz.Timezone).
		Add(time.Duration(minAdvance) * time.Minute).
		In(loc)

	cutoffDay := time.Date(
		earliest.Year(), earliest.Month(), earliest.Day(),
		0, 0, 0, 0,
		loc,
	)

	switch {
	case in.Date.Before(cutoffDay):
		return []domain.TimeSlot{}, nil
	case in.Date.Equal(cutoffDay):
		cutoffMin := minuteOf(earliest)
		if earliest.Second() > 0 || earliest.Nanosecond() > 0 {
			cutoffMin++
		}
		slots = domain.SlotsFrom(slots, cutoffMin)
	}

	return slots, nil
}

func minuteOf(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// AvailabilityDate interpreta a data da consulta no fuso do negócio.
func AvailabilityDate(tz string, dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, timezone.Location(tz))
}
