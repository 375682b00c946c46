package booking

import (
	"context"
	"time"

	domain "github.com/agendly/booking-api/internal/domain/booking"
	"github.com/agendly/booking-api/internal/httperr"
	"github.com/agendly/booking-api/internal/models"
)

// fakeRepository é uma implementação em memória do domain.Repository,
// com a mesma semântica de conflito do repositório Postgres.
type fakeRepository struct {
	business      *models.Business
	professionals map[uint]*models.Professional
	services      map[uint]*models.Service
	hours         map[int]*models.OperatingHours

	clients      []*models.Client
	reservations []*models.Reservation

	nextClientID      uint
	nextReservationID uint

	failClientCreate bool
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		business: &models.Business{
			ID:                1,
			Name:              "Estúdio Teste",
			Slug:              "estudio-teste",
			Timezone:          "UTC",
			MinAdvanceMinutes: 120,
		},
		professionals:     make(map[uint]*models.Professional),
		services:          make(map[uint]*models.Service),
		hours:             make(map[int]*models.OperatingHours),
		nextClientID:      1,
		nextReservationID: 1,
	}
}

func (f *fakeRepository) withProfessional(id uint, active bool) *fakeRepository {
	f.professionals[id] = &models.Professional{
		ID:         id,
		BusinessID: f.business.ID,
		Name:       "Profissional",
		Active:     active,
	}
	return f
}

func (f *fakeRepository) withService(id uint, durationMin int) *fakeRepository {
	f.services[id] = &models.Service{
		ID:          id,
		BusinessID:  f.business.ID,
		Name:        "Serviço",
		DurationMin: durationMin,
		Active:      true,
	}
	return f
}

func (f *fakeRepository) withAllWeekHours(opens, closes string) *fakeRepository {
	for wd := 0; wd < 7; wd++ {
		f.hours[wd] = &models.OperatingHours{
			BusinessID: f.business.ID,
			Weekday:    wd,
			OpensAt:    opens,
			ClosesAt:   closes,
			Active:     true,
		}
	}
	return f
}

func (f *fakeRepository) GetBusinessByID(_ context.Context, id uint) (*models.Business, error) {
	if f.business == nil || f.business.ID != id {
		return nil, httperr.ErrBusiness("business_not_found")
	}
	return f.business, nil
}

func (f *fakeRepository) GetActiveProfessional(_ context.Context, businessID, professionalID uint) (*models.Professional, error) {
	pro, ok := f.professionals[professionalID]
	if !ok || pro.BusinessID != businessID || !pro.Active {
		return nil, httperr.ErrBusiness("not_found")
	}
	return pro, nil
}

func (f *fakeRepository) GetService(_ context.Context, businessID, serviceID uint) (*models.Service, error) {
	svc, ok := f.services[serviceID]
	if !ok || svc.BusinessID != businessID {
		return nil, httperr.ErrBusiness("not_found")
	}
	return svc, nil
}

func (f *fakeRepository) ResolveClient(_ context.Context, businessID uint, name, phone, email string) (*models.Client, error) {
	if phone != "" {
		for _, c := range f.clients {
			if c.BusinessID == businessID && c.Phone == phone {
				return c, nil
			}
		}
	}
	if email != "" {
		for _, c := range f.clients {
			if c.BusinessID == businessID && c.Email == email {
				return c, nil
			}
		}
	}

	if f.failClientCreate {
		return nil, httperr.ErrBusiness(httperr.CodeIdentityFailed)
	}

	client := &models.Client{
		ID:         f.nextClientID,
		BusinessID: businessID,
		Name:       name,
		Phone:      phone,
		Email:      email,
	}
	f.nextClientID++
	f.clients = append(f.clients, client)
	return client, nil
}

func (f *fakeRepository) hasOverlap(professionalID uint, start, end time.Time) bool {
	for _, r := range f.reservations {
		if r.ProfessionalID != professionalID {
			continue
		}
		if r.Status != string(domain.StatusPending) && r.Status != string(domain.StatusConfirmed) {
			continue
		}
		if r.StartTime.Before(end) && r.EndTime.After(start) {
			return true
		}
	}
	return false
}

func (f *fakeRepository) AssertNoTimeConflict(_ context.Context, professionalID uint, start, end time.Time) error {
	if f.hasOverlap(professionalID, start, end) {
		return httperr.ErrBusiness(httperr.CodeSlotConflict)
	}
	return nil
}

func (f *fakeRepository) CreateReservation(_ context.Context, res *models.Reservation) error {
	if f.hasOverlap(res.ProfessionalID, res.StartTime, res.EndTime) {
		return httperr.ErrBusiness(httperr.CodeSlotConflict)
	}

	res.ID = f.nextReservationID
	f.nextReservationID++
	f.reservations = append(f.reservations, res)
	return nil
}

func (f *fakeRepository) GetReservationForBusiness(_ context.Context, reservationID, businessID uint) (*models.Reservation, error) {
	for _, r := range f.reservations {
		if r.ID == reservationID && r.BusinessID == businessID {
			return r, nil
		}
	}
	return nil, httperr.ErrBusiness("not_found")
}

func (f *fakeRepository) UpdateReservation(_ context.Context, res *models.Reservation) error {
	for i, r := range f.reservations {
		if r.ID == res.ID {
			f.reservations[i] = res
			return nil
		}
	}
	return httperr.ErrBusiness("not_found")
}

func (f *fakeRepository) GetOperatingHours(_ context.Context, businessID uint, weekday int) (*models.OperatingHours, error) {
	oh, ok := f.hours[weekday]
	if !ok || oh.BusinessID != businessID {
		return nil, httperr.ErrBusiness("not_found")
	}
	return oh, nil
}

func (f *fakeRepository) ListReservationsForDay(_ context.Context, professionalID uint, start, end time.Time) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, r := range f.reservations {
		if r.ProfessionalID != professionalID {
			continue
		}
		if r.Status != string(domain.StatusPending) && r.Status != string(domain.StatusConfirmed) {
			continue
		}
		if !r.StartTime.Before(start) && r.StartTime.Before(end) {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRepository) ListReservationsForPeriod(_ context.Context, businessID, professionalID uint, start, end time.Time) ([]models.Reservation, error) {
	var out []models.Reservation
	for _, r := range f.reservations {
		if r.BusinessID != businessID {
			continue
		}
		if professionalID != 0 && r.ProfessionalID != professionalID {
			continue
		}
		if !r.StartTime.Before(start) && r.StartTime.Before(end) {
			out = append(out, *r)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepository)(nil)
