package booking

import (
	"context"
	"testing"
	"time"

	"github.com/agendly/booking-api/internal/audit"
	domain "github.com/agendly/booking-api/internal/domain/booking"
	"github.com/agendly/booking-api/internal/httperr"
)

// Data fixa bem no futuro para não esbarrar na antecedência mínima.
const testDate = "2030-05-20" // segunda-feira

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

func newCreateBooking(repo domain.Repository) *CreateBooking {
	return NewCreateBooking(repo, testDispatcher())
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		BusinessID:     1,
		ProfessionalID: 1,
		ServiceID:      1,
		ClientName:     "Maria Souza",
		ClientPhone:    "(11) 99999-0000",
		Date:           testDate,
		Time:           "10:00",
	}
}

func TestCreateBooking_Success(t *testing.T) {
	repo := newFakeRepository().
		withProfessional(1, true).
		withService(1, 60).
		withAllWeekHours("09:00", "18:00")

	uc := newCreateBooking(repo)

	res, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.ID == 0 {
		t.Fatalf("expected reservation to be persisted")
	}
	if res.Status != string(domain.StatusPending) {
		t.Fatalf("expected pending, got %s", res.Status)
	}
	if res.EndTime.Sub(res.StartTime) != time.Hour {
		t.Fatalf("expected 60min reservation, got %v", res.EndTime.Sub(res.StartTime))
	}
	if res.StartTime.Hour() != 10 || res.StartTime.Minute() != 0 {
		t.Fatalf("expected start at 10:00, got %v", res.StartTime)
	}
}

func TestCreateBooking_NotesTooLong(t *testing.T) {
	repo := newFakeRepository().
		withProfessional(1, true).
		withService(1, 60).
		withAllWeekHours("09:00", "18:00")

	in := validInput()
	for len(in.Notes) <= maxNotesLen {
		in.Notes += "x"
	}

	_, err := newCreateBooking(repo).Execute(context.Background(), in)
	if !httperr.IsBusiness(err, httperr.CodeValidation) {
		t.Fatalf("expected validation, got %v", err)
	}
}

func TestCreateBooking_MissingClientName(t *testing.T) {
	repo := newFakeRepository().
		withProfessional(1, true).
		withService(1, 60).
		withAllWeekHours("09:00", "18:00")

	in := validInput()
	in.ClientName = ""

	_, err := newCreateBooking(repo).Execute(context.Background(), in)
	if !httperr.IsBusiness(err, httperr.CodeValidation) {
		t.Fatalf("expected validation, got %v", err)
	}
}

func TestCreateBooking_InvalidDateTime(t *testing.T) {
	repo := newFakeRepository().
		withProfessional(1, true).
		withService(1, 60).
		withAllWeekHours("09:00", "18:00")

	in := validInput()
	in.Time = "25:99"

	_, err := newCreateBooking(repo).Execute(context.Background(), in)
	if !httperr.IsBusiness(err, httperr.CodeInvalidDateTime) {
		t.Fatalf("expected invalid_date_or_time, got %v", err)
	}
}

func TestCreateBooking_TooSoon(t *testing.T) {
	repo := newFakeRepository().
		withProfessional(1, true).
		withService(1, 60).
		withAllWeekHours("00:00", "23:59")

	in := validInput()
	soon := time.Now().UTC().Add(30 * time.Minute)
	in.Date = soon.Format("2006-01-02")
	in.Time = soon.Format("15:04")

	_, err := newCreateBooking(repo).Execute(context.Background(), in)
	if !httperr.IsBusiness(err, httperr.CodeTooSoon) {
		t.Fatalf("expected too_soon, got %v", err)
	}
}

func TestCreateBooking_InactiveProfessional(t *testing.T) {
	repo := newFakeRepository().
		withProfessional(1, false).
		withService(1, 60).
		withAllWeekHours("09:00", "18:00")

	_, err := newCreateBooking(repo).Execute(context.Background(), validInput())
	if !httperr.IsBusiness(err, httperr.CodeInvalidPro) {
		t.Fatalf("expected invalid_professional, got %v", err)
	}
}

func TestCreateBooking_UnknownService(t *testing.T) {
	repo := newFakeRepository().
		withProfessional(1, true).
		withAllWeekHours("09:00", "18:00")

	_, err := newCreateBooking(repo).Execute(context.Background(), validInput())
	if !httperr.IsBusiness(err, httperr.CodeInvalidService) {
		t.Fatalf("expected invalid_service, got %v", err)
	}
}

func TestCreateBooking_OutsideOperatingHours(t *testing.T) {
	repo := newFakeRepository().
		withProfessional(1, true).
		withService(1, 60).
		withAllWeekHours("09:00", "18:00")

	in := validInput()
	in.Time = "17:30" // terminaria 18:30, depois do fechamento

	_, err := newCreateBooking(repo).Execute(context.Background(), in)
	if !httperr.IsBusiness(err, httperr.CodeOutsideHours) {
		t.Fatalf("expected outside_working_hours, got %v", err)
	}
}

func TestCreateBooking_DuringBreak(t *testing.T) {
	repo := newFakeRepository().
		withProfessional(1, true).
		withService(1, 60).
		withAllWeekHours("09:00", "18:00")
	for _, oh := range repo.hours {
		oh.BreakStart = "12:00"
		oh.BreakEnd = "13:00"
	}

	in := validInput()
	in.Time = "12:30"

	_, err := newCreateBooking(repo).Execute(context.Background(), in)
	if !httperr.IsBusiness(err, httperr.CodeOutsideHours) {
		t.Fatalf("expected outside_working_hours, got %v", err)
	}
}

func TestCreateBooking_SlotConflict(t *testing.T) {
	repo := newFakeRepository().
		withProfessional(1, true).
		withService(1, 60).
		withAllWeekHours("09:00", "18:00")

	uc := newCreateBooking(repo)

	if _, err := uc.Execute(context.Background(), validInput()); err != nil {
		t.Fatalf("first booking: unexpected error: %v", err)
	}

	// segunda tentativa no mesmo horário, outro cliente
	in := validInput()
	in.ClientName = "João Lima"
	in.ClientPhone = "(11) 98888-0000"

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, httperr.CodeSlotConflict) {
		t.Fatalf("expected slot_conflict, got %v", err)
	}

	if len(repo.reservations) != 1 {
		t.Fatalf("expected exactly 1 reservation, got %d", len(repo.reservations))
	}

	// a checagem consultiva barra antes de registrar o segundo cliente
	if len(repo.clients) != 1 {
		t.Fatalf("expected 1 client, got %d", len(repo.clients))
	}
}

func TestCreateBooking_PartialOverlapConflicts(t *testing.T) {
	repo := newFakeRepository().
		withProfessional(1, true).
		withService(1, 60).
		withAllWeekHours("09:00", "18:00")

	uc := newCreateBooking(repo)

	if _, err := uc.Execute(context.Background(), validInput()); err != nil {
		t.Fatalf("first booking: unexpected error: %v", err)
	}

	// 10:30–11:30 cruza com a reserva de 10:00–11:00
	in := validInput()
	in.ClientPhone = "(11) 97777-0000"
	in.Time = "10:30"

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, httperr.CodeSlotConflict) {
		t.Fatalf("expected slot_conflict, got %v", err)
	}
}

func TestCreateBooking_CancelledReservationFreesSlot(t *testing.T) {
	repo := newFakeRepository().
		withProfessional(1, true).
		withService(1, 60).
		withAllWeekHours("09:00", "18:00")

	uc := newCreateBooking(repo)

	res, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("first booking: unexpected error: %v", err)
	}

	res.Status = string(domain.StatusCancelled)

	in := validInput()
	in.ClientPhone = "(11) 96666-0000"

	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("booking over cancelled slot: unexpected error: %v", err)
	}
}

func TestCreateBooking_ClientResolvedByPhone(t *testing.T) {
	repo := newFakeRepository().
		withProfessional(1, true).
		withService(1, 60).
		withAllWeekHours("09:00", "18:00")

	uc := newCreateBooking(repo)

	first, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("first booking: unexpected error: %v", err)
	}

	// mesmo telefone com formatação diferente, horário livre
	in := validInput()
	in.ClientPhone = "11999990000"
	in.Time = "14:00"

	second, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("second booking: unexpected error: %v", err)
	}

	if first.ClientID != second.ClientID {
		t.Fatalf("expected same client, got %d and %d", first.ClientID, second.ClientID)
	}
	if len(repo.clients) != 1 {
		t.Fatalf("expected 1 client, got %d", len(repo.clients))
	}
}

func TestCreateBooking_IdentityResolutionFailure(t *testing.T) {
	repo := newFakeRepository().
		withProfessional(1, true).
		withService(1, 60).
		withAllWeekHours("09:00", "18:00")
	repo.failClientCreate = true

	_, err := newCreateBooking(repo).Execute(context.Background(), validInput())
	if !httperr.IsBusiness(err, httperr.CodeIdentityFailed) {
		t.Fatalf("expected identity_resolution_failed, got %v", err)
	}

	if len(repo.reservations) != 0 {
		t.Fatalf("expected no reservation, got %d", len(repo.reservations))
	}
}
