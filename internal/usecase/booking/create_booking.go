package booking

import (
	"context"
	"time"

	"github.com/agendly/booking-api/internal/audit"
	domain "github.com/agendly/booking-api/internal/domain/booking"
	"github.com/agendly/booking-api/internal/httperr"
	"github.com/agendly/booking-api/internal/models"
	"github.com/agendly/booking-api/internal/timezone"
	"github.com/agendly/booking-api/internal/validators"
)

const maxNotesLen = 500

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	BusinessID     uint
	ProfessionalID uint
	ServiceID      uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	Date  string
	Time  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute valida, resolve a identidade do cliente e comete a reserva.
// A disponibilidade calculada antes pelo cliente é só consultiva: o
// recheque de conflito acontece aqui, dentro da transação.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Reservation, error) {

	// --------------------------------------------------
	// 1. Negócio (tenant)
	// --------------------------------------------------
	biz, err := uc.repo.GetBusinessByID(ctx, in.BusinessID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Validação de entrada
	// --------------------------------------------------
	if len(in.Notes) > maxNotesLen {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}
	if in.ClientName == "" {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	// --------------------------------------------------
	// 3. Data / hora no fuso do negócio
	// --------------------------------------------------
	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(biz.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDateTime)
	}

	// --------------------------------------------------
	// 4. Antecedência mínima
	// --------------------------------------------------
	minAdvance := biz.MinAdvanceMinutes
	if minAdvance <= 0 {
		minAdvance = 120
	}

	now := timezone.NowIn(biz.Timezone)
	if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
		return nil, httperr.ErrBusiness(httperr.CodeTooSoon)
	}

	// --------------------------------------------------
	// 5. Profissional ativo e do negócio
	// --------------------------------------------------
	pro, err := uc.repo.GetActiveProfessional(
		ctx,
		in.BusinessID,
		in.ProfessionalID,
	)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidPro)
	}

	// --------------------------------------------------
	// 6. Serviço
	// --------------------------------------------------
	service, err := uc.repo.GetService(ctx, in.BusinessID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidService)
	}

	end := start.Add(time.Duration(service.DurationMin) * time.Minute)

	// --------------------------------------------------
	// 7. Expediente
	// --------------------------------------------------
	ok, err := uc.isWithinOperatingHours(ctx, biz.ID, start, end)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeOutsideHours)
	}

	// --------------------------------------------------
	// 8. Conflito (consultivo, antes de criar o cliente)
	// --------------------------------------------------
	if err := uc.repo.AssertNoTimeConflict(ctx, pro.ID, start, end); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 9. Cliente (telefone → e-mail → cria)
	// --------------------------------------------------
	client, err := uc.repo.ResolveClient(
		ctx,
		in.BusinessID,
		in.ClientName,
		validators.NormalizePhone(in.ClientPhone),
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 10. Commit (recheque + insert na mesma transação)
	// --------------------------------------------------
	res := &models.Reservation{
		BusinessID:     in.BusinessID,
		ProfessionalID: pro.ID,
		ClientID:       client.ID,
		ServiceID:      service.ID,
		StartTime:      start,
		EndTime:        end,
		Status:         string(domain.InitialStatus()),
		Notes:          in.Notes,
	}

	if err := uc.repo.CreateReservation(ctx, res); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 11. Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		BusinessID: in.BusinessID,
		Action:     "reservation_created",
		Entity:     "reservation",
		EntityID:   &res.ID,
	})

	return res, nil
}

// isWithinOperatingHours valida se o intervalo cabe no expediente do dia,
// respeitando a pausa.
func (uc *CreateBooking) isWithinOperatingHours(
	ctx context.Context,
	businessID uint,
	start time.Time,
	end time.Time,
) (bool, error) {

	weekday := int(start.Weekday())
	loc := start.Location()

	oh, err := uc.repo.GetOperatingHours(ctx, businessID, weekday)
	if err != nil {
		return false, nil
	}

	if !oh.Active || oh.OpensAt == "" || oh.ClosesAt == "" {
		return false, nil
	}

	parseHM := func(hm string) time.Time {
		t, _ := time.Parse("15:04", hm)
		return time.Date(
			start.Year(), start.Month(), start.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		)
	}

	opens := parseHM(oh.OpensAt)
	closes := parseHM(oh.ClosesAt)

	if start.Before(opens) || end.After(closes) {
		return false, nil
	}

	if oh.BreakStart != "" && oh.BreakEnd != "" {
		breakStart := parseHM(oh.BreakStart)
		breakEnd := parseHM(oh.BreakEnd)

		if start.Before(breakEnd) && end.After(breakStart) {
			return false, nil
		}
	}

	return true, nil
}
