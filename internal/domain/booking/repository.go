package booking

import (
	"context"
	"time"

	"github.com/agendly/booking-api/internal/models"
)

type Repository interface {
	// -------- Business --------
	GetBusinessByID(
		ctx context.Context,
		id uint,
	) (*models.Business, error)

	// -------- Professional --------
	GetActiveProfessional(
		ctx context.Context,
		businessID uint,
		professionalID uint,
	) (*models.Professional, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		businessID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Client --------
	ResolveClient(
		ctx context.Context,
		businessID uint,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Reservation (create / conflict) --------

	// AssertNoTimeConflict é a checagem consultiva fora da transação.
	AssertNoTimeConflict(
		ctx context.Context,
		professionalID uint,
		start time.Time,
		end time.Time,
	) error

	// CreateReservation refaz a checagem de conflito com lock de linha e
	// insere na mesma transação. Violação do índice único parcial também
	// vira slot_conflict.
	CreateReservation(
		ctx context.Context,
		res *models.Reservation,
	) error

	// -------- Reservation (state change) --------
	GetReservationForBusiness(
		ctx context.Context,
		reservationID uint,
		businessID uint,
	) (*models.Reservation, error)

	UpdateReservation(
		ctx context.Context,
		res *models.Reservation,
	) error

	// -------- Availability --------
	GetOperatingHours(
		ctx context.Context,
		businessID uint,
		weekday int,
	) (*models.OperatingHours, error)

	ListReservationsForDay(
		ctx context.Context,
		professionalID uint,
		start time.Time,
		end time.Time,
	) ([]models.Reservation, error)

	ListReservationsForPeriod(
		ctx context.Context,
		businessID uint,
		professionalID uint,
		start time.Time,
		end time.Time,
	) ([]models.Reservation, error)
}
