package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendly/booking-api/internal/audit"
	"github.com/agendly/booking-api/internal/config"
	"github.com/agendly/booking-api/internal/handlers"
	infraRepo "github.com/agendly/booking-api/internal/infra/repository"
	"github.com/agendly/booking-api/internal/middleware"
	"github.com/agendly/booking-api/internal/reminder"
	ucBooking "github.com/agendly/booking-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestIDMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	reminders := reminder.NewEnqueuer(cfg.RedisAddr)

	// ======================================================
	// 🧠 USE CASES — BOOKING
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo)

	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
	)

	confirmUC := ucBooking.NewConfirmReservation(
		bookingRepo,
		auditDispatcher,
	)

	cancelUC := ucBooking.NewCancelReservation(
		bookingRepo,
		auditDispatcher,
	)

	completeUC := ucBooking.NewCompleteReservation(
		bookingRepo,
		auditDispatcher,
	)

	listByDateUC := ucBooking.NewListReservationsByDate(bookingRepo)
	listByMonthUC := ucBooking.NewListReservationsByMonth(bookingRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	businessHandler := handlers.NewBusinessHandler(db)

	serviceHandler := handlers.NewServiceHandler(db)
	professionalHandler := handlers.NewProfessionalHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	operatingHoursHandler := handlers.NewOperatingHoursHandler(db)

	reservationHandler := handlers.NewReservationHandler(
		createBookingUC,
		confirmUC,
		cancelUC,
		completeUC,
		listByDateUC,
		listByMonthUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(
		db,
		availabilityUC,
		createBookingUC,
		reminders,
	)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		publicAPI.Use(middleware.RateLimitMiddleware())
		{
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/professionals", publicHandler.ListProfessionals)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.POST("/:slug/reservations", publicHandler.CreateReservation)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/business", businessHandler.GetMeBusiness)
			secured.PATCH("/me/business", businessHandler.UpdateMeBusiness)

			secured.GET("/me/clients", clientHandler.List)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			secured.GET("/me/professionals", professionalHandler.List)
			secured.POST("/me/professionals", professionalHandler.Create)
			secured.PATCH("/me/professionals/:id", professionalHandler.Update)

			secured.GET("/me/operating-hours", operatingHoursHandler.Get)
			secured.PUT("/me/operating-hours", operatingHoursHandler.Update)

			// ------------------------------
			// RESERVATIONS
			// ------------------------------
			secured.POST("/me/reservations", reservationHandler.Create)
			secured.GET("/me/reservations", reservationHandler.ListByDate)
			secured.GET("/me/reservations/month", reservationHandler.ListByMonth)
			secured.PATCH("/me/reservations/:id/confirm", reservationHandler.Confirm)
			secured.PATCH("/me/reservations/:id/cancel", reservationHandler.Cancel)
			secured.PATCH("/me/reservations/:id/complete", reservationHandler.Complete)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
