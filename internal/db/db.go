package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/agendly/booking-api/internal/config"
	"github.com/agendly/booking-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Business{},
		&models.User{},
		&models.Professional{},
		&models.Service{},
		&models.OperatingHours{},
		&models.Client{},
		&models.Reservation{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Índice único parcial: no máximo uma reserva ativa por
	// (profissional, início). É o ponto de corte contra double-booking
	// entre requisições concorrentes.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uniq_reservations_active_slot
        ON reservations (professional_id, start_time)
        WHERE status IN ('pending', 'confirmed')
    `)

	return db
}
