package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	domain "github.com/agendly/booking-api/internal/domain/booking"
	"github.com/agendly/booking-api/internal/httperr"
	"github.com/agendly/booking-api/internal/models"
	"github.com/agendly/booking-api/internal/reminder"
	ucBooking "github.com/agendly/booking-api/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db             *gorm.DB
	availabilityUC *ucBooking.GetAvailability
	createUC       *ucBooking.CreateBooking
	reminders      *reminder.Enqueuer
}

func NewPublicHandler(
	db *gorm.DB,
	availabilityUC *ucBooking.GetAvailability,
	createUC *ucBooking.CreateBooking,
	reminders *reminder.Enqueuer,
) *PublicHandler {
	return &PublicHandler{
		db:             db,
		availabilityUC: availabilityUC,
		createUC:       createUC,
		reminders:      reminders,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateReservationRequest struct {
	ClientName     string `json:"name" binding:"required"`
	ClientEmail    string `json:"email" binding:"required,email"`
	ClientPhone    string `json:"phone"`
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	ServiceID      uint   `json:"service_id" binding:"required"`
	Date           string `json:"date" binding:"required"` // YYYY-MM-DD
	Time           string `json:"time" binding:"required"` // HH:mm
	Notes          string `json:"notes"`
}

////////////////////////////////////////////////////////
// SERVICES / PROFESSIONALS
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	slug := c.Param("slug")

	var biz models.Business
	if err := h.db.Where("slug = ?", slug).First(&biz).Error; err != nil {
		httperr.NotFound(c, "business_not_found", "Negócio não encontrado.")
		return
	}

	category := strings.TrimSpace(strings.ToLower(c.Query("category")))
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.
		Where("business_id = ? AND active = true", biz.ID)

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"business": biz,
		"services": services,
	})
}

func (h *PublicHandler) ListProfessionals(c *gin.Context) {
	slug := c.Param("slug")

	var biz models.Business
	if err := h.db.Where("slug = ?", slug).First(&biz).Error; err != nil {
		httperr.NotFound(c, "business_not_found", "Negócio não encontrado.")
		return
	}

	var pros []models.Professional
	if err := h.db.
		Where("business_id = ? AND active = true", biz.ID).
		Order("id ASC").
		Find(&pros).Error; err != nil {
		httperr.Internal(c, "failed_to_list_professionals", "Erro ao listar profissionais.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"business":      biz,
		"professionals": pros,
	})
}

////////////////////////////////////////////////////////
// AVAILABILITY (LEITURA CONSULTIVA)
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	slug := c.Param("slug")
	dateStr := c.Query("date")
	serviceIDStr := c.Query("service_id")
	professionalIDStr := c.Query("professional_id")

	if dateStr == "" || serviceIDStr == "" || professionalIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Data, serviço e profissional obrigatórios.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	professionalID, err := strconv.ParseUint(professionalIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_professional_id", "Profissional inválido.")
		return
	}

	var biz models.Business
	if err := h.db.Where("slug = ?", slug).First(&biz).Error; err != nil {
		httperr.NotFound(c, "business_not_found", "Negócio não encontrado.")
		return
	}

	date, err := ucBooking.AvailabilityDate(biz.Timezone, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.availabilityUC.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			BusinessID:     biz.ID,
			ProfessionalID: uint(professionalID),
			ServiceID:      uint(serviceID),
			Date:           date,
		},
	)

	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeInvalidService) {
			httperr.BadRequest(c, "invalid_service", "Serviço inválido.")
			return
		}

		zap.L().Error("availability failed", zap.Error(err))
		httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

////////////////////////////////////////////////////////
// CREATE RESERVATION (ESCRITA AUTORITATIVA)
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateReservation(c *gin.Context) {
	slug := c.Param("slug")

	var biz models.Business
	if err := h.db.Where("slug = ?", slug).First(&biz).Error; err != nil {
		httperr.NotFound(c, "business_not_found", "Negócio não encontrado.")
		return
	}

	var req PublicCreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	res, err := h.createUC.Execute(
		c.Request.Context(),
		ucBooking.CreateBookingInput{
			BusinessID:     biz.ID,
			ProfessionalID: req.ProfessionalID,
			ServiceID:      req.ServiceID,
			ClientName:     req.ClientName,
			ClientPhone:    req.ClientPhone,
			ClientEmail:    req.ClientEmail,
			Date:           req.Date,
			Time:           req.Time,
			Notes:          req.Notes,
		},
	)

	if err != nil {
		mapCreateErrors(c, err)
		return
	}

	// lembrete é colaboração externa: depois do commit, nunca dentro
	h.scheduleReminder(&biz, res.ID, &req, res)

	c.JSON(http.StatusCreated, gin.H{
		"ok":             true,
		"reservation_id": res.ID,
	})
}

func (h *PublicHandler) scheduleReminder(
	biz *models.Business,
	reservationID uint,
	req *PublicCreateReservationRequest,
	res *models.Reservation,
) {
	var pro models.Professional
	h.db.First(&pro, res.ProfessionalID)

	var svc models.Service
	h.db.First(&svc, res.ServiceID)

	h.reminders.Schedule(reminder.Payload{
		ReservationID:    reservationID,
		BusinessName:     biz.Name,
		ClientName:       req.ClientName,
		ClientPhone:      req.ClientPhone,
		ClientEmail:      req.ClientEmail,
		ProfessionalName: pro.Name,
		ServiceName:      svc.Name,
		StartTime:        res.StartTime,
	})
}

////////////////////////////////////////////////////////
// ERROR MAPPING
////////////////////////////////////////////////////////

func mapCreateErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, httperr.CodeValidation):
		httperr.BadRequest(c, httperr.CodeValidation, "Dados inválidos (observações até 500 caracteres).")

	case httperr.IsBusiness(err, httperr.CodeInvalidDateTime):
		httperr.BadRequest(c, httperr.CodeInvalidDateTime, "Data ou hora inválida.")

	case httperr.IsBusiness(err, httperr.CodeTooSoon):
		httperr.BadRequest(c, httperr.CodeTooSoon, "Horário muito próximo ou no passado.")

	case httperr.IsBusiness(err, httperr.CodeInvalidPro):
		httperr.BadRequest(c, httperr.CodeInvalidPro, "Profissional inválido ou inativo.")

	case httperr.IsBusiness(err, httperr.CodeInvalidService):
		httperr.BadRequest(c, httperr.CodeInvalidService, "Serviço inválido.")

	case httperr.IsBusiness(err, httperr.CodeOutsideHours):
		httperr.BadRequest(c, httperr.CodeOutsideHours, "Fora do horário de atendimento.")

	case httperr.IsBusiness(err, httperr.CodeSlotConflict):
		httperr.Conflict(c, httperr.CodeSlotConflict, "Horário acabou de ser reservado. Escolha outro.")

	case httperr.IsBusiness(err, httperr.CodeIdentityFailed):
		zap.L().Error("identity resolution failed", zap.Error(err))
		httperr.Internal(c, httperr.CodeIdentityFailed, "Erro ao registrar cliente.")

	default:
		zap.L().Error("reservation create failed", zap.Error(err))
		httperr.Internal(c, "failed_to_create_reservation", "Erro ao criar reserva.")
	}
}
