package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/agendly/booking-api/internal/domain/booking"
	"github.com/agendly/booking-api/internal/httperr"
	"github.com/agendly/booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Business
// --------------------------------------------------

func (r *BookingGormRepository) GetBusinessByID(
	ctx context.Context,
	id uint,
) (*models.Business, error) {

	var biz models.Business
	if err := r.db.WithContext(ctx).First(&biz, id).Error; err != nil {
		return nil, err
	}
	return &biz, nil
}

// --------------------------------------------------
// Professional
// --------------------------------------------------

func (r *BookingGormRepository) GetActiveProfessional(
	ctx context.Context,
	businessID uint,
	professionalID uint,
) (*models.Professional, error) {

	var pro models.Professional
	if err := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ? AND active = true", professionalID, businessID).
		First(&pro).Error; err != nil {
		return nil, err
	}
	return &pro, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	businessID uint,
	serviceID uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", serviceID, businessID).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Client (identity resolution)
// --------------------------------------------------

// ResolveClient busca por telefone, depois por e-mail, e só então cria.
// Idempotente: reservas repetidas do mesmo contato reutilizam o registro.
func (r *BookingGormRepository) ResolveClient(
	ctx context.Context,
	businessID uint,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	var client models.Client

	if phone != "" {
		err := r.db.WithContext(ctx).
			Where("business_id = ? AND phone = ?", businessID, phone).
			First(&client).Error
		if err == nil {
			return &client, nil
		}
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
	}

	if email != "" {
		err := r.db.WithContext(ctx).
			Where("business_id = ? AND email = ?", businessID, email).
			First(&client).Error
		if err == nil {
			return &client, nil
		}
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
	}

	client = models.Client{
		BusinessID: businessID,
		Name:       name,
		Phone:      phone,
		Email:      email,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeIdentityFailed)
	}

	return &client, nil
}

// --------------------------------------------------
// Reservation (create / conflict)
// --------------------------------------------------

func (r *BookingGormRepository) AssertNoTimeConflict(
	ctx context.Context,
	professionalID uint,
	start time.Time,
	end time.Time,
) error {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where(
			"professional_id = ? AND status IN ? AND start_time < ? AND end_time > ?",
			professionalID,
			domain.ActiveStatuses,
			end,
			start,
		).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrBusiness(httperr.CodeSlotConflict)
	}

	return nil
}

// CreateReservation é o ponto de commit: lock das reservas concorrentes,
// recheque de sobreposição e insert na mesma transação. O índice único
// parcial em (professional_id, start_time) fecha a janela que o lock
// não cobre (linhas ainda não existentes).
func (r *BookingGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.Reservation{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"professional_id = ? AND status IN ? AND start_time < ? AND end_time > ?",
				res.ProfessionalID,
				domain.ActiveStatuses,
				res.EndTime,
				res.StartTime,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness(httperr.CodeSlotConflict)
		}

		return tx.Create(res).Error
	})

	if err != nil {
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrBusiness(httperr.CodeSlotConflict)
		}
		return err
	}

	return nil
}

// --------------------------------------------------
// Reservation (state change)
// --------------------------------------------------

func (r *BookingGormRepository) GetReservationForBusiness(
	ctx context.Context,
	reservationID uint,
	businessID uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", reservationID, businessID).
		First(&res).Error; err != nil {
		return nil, err
	}

	return &res, nil
}

func (r *BookingGormRepository) UpdateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Save(res).Error
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) GetOperatingHours(
	ctx context.Context,
	businessID uint,
	weekday int,
) (*models.OperatingHours, error) {

	var oh models.OperatingHours
	if err := r.db.WithContext(ctx).
		Where("business_id = ? AND weekday = ?", businessID, weekday).
		First(&oh).Error; err != nil {
		return nil, err
	}

	return &oh, nil
}

func (r *BookingGormRepository) ListReservationsForDay(
	ctx context.Context,
	professionalID uint,
	start time.Time,
	end time.Time,
) ([]models.Reservation, error) {

	var list []models.Reservation
	if err := r.db.WithContext(ctx).
		Select("start_time", "end_time").
		Where(
			"professional_id = ? AND status IN ? AND start_time >= ? AND start_time < ?",
			professionalID, domain.ActiveStatuses, start, end,
		).
		Order("start_time ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}

	return list, nil
}

func (r *BookingGormRepository) ListReservationsForPeriod(
	ctx context.Context,
	businessID uint,
	professionalID uint,
	start time.Time,
	end time.Time,
) ([]models.Reservation, error) {

	var list []models.Reservation

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Preload("Professional").
		Where(
			"business_id = ? AND start_time >= ? AND start_time < ?",
			businessID,
			start,
			end,
		)

	if professionalID != 0 {
		q = q.Where("professional_id = ?", professionalID)
	}

	if err := q.Order("start_time ASC").Find(&list).Error; err != nil {
		return nil, err
	}

	return list, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
