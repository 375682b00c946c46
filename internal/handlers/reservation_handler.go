package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agendly/booking-api/internal/httperr"
	"github.com/agendly/booking-api/internal/httpresp"
	"github.com/agendly/booking-api/internal/middleware"
	ucBooking "github.com/agendly/booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	createUC    *ucBooking.CreateBooking
	confirmUC   *ucBooking.ConfirmReservation
	cancelUC    *ucBooking.CancelReservation
	completeUC  *ucBooking.CompleteReservation
	listDateUC  *ucBooking.ListReservationsByDate
	listMonthUC *ucBooking.ListReservationsByMonth
}

func NewReservationHandler(
	createUC *ucBooking.CreateBooking,
	confirmUC *ucBooking.ConfirmReservation,
	cancelUC *ucBooking.CancelReservation,
	completeUC *ucBooking.CompleteReservation,
	listDateUC *ucBooking.ListReservationsByDate,
	listMonthUC *ucBooking.ListReservationsByMonth,
) *ReservationHandler {
	return &ReservationHandler{
		createUC:    createUC,
		confirmUC:   confirmUC,
		cancelUC:    cancelUC,
		completeUC:  completeUC,
		listDateUC:  listDateUC,
		listMonthUC: listMonthUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	ClientName     string `json:"client_name" binding:"required"`
	ClientPhone    string `json:"client_phone"`
	ClientEmail    string `json:"client_email"`
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	ServiceID      uint   `json:"service_id" binding:"required"`
	Date           string `json:"date" binding:"required"` // YYYY-MM-DD
	Time           string `json:"time" binding:"required"` // HH:mm
	Notes          string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	res, err := h.createUC.Execute(
		c.Request.Context(),
		ucBooking.CreateBookingInput{
			BusinessID:     businessID,
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

	c.JSON(201, res)
}

// ======================================================
// LIST
// ======================================================

func (h *ReservationHandler) ListByDate(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	professionalID := parseOptionalID(c.Query("professional_id"))

	list, err := h.listDateUC.Execute(
		c.Request.Context(),
		businessID,
		professionalID,
		date,
	)
	if err != nil {
		httperr.Internal(c, "failed_to_list_reservations", "Erro ao listar reservas.")
		return
	}

	httpresp.List(c, list)
}

func (h *ReservationHandler) ListByMonth(c *gin.Context) {
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Ano e mês são obrigatórios.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	professionalID := parseOptionalID(c.Query("professional_id"))

	list, err := h.listMonthUC.Execute(
		c.Request.Context(),
		businessID,
		professionalID,
		year,
		month,
	)
	if err != nil {
		httperr.Internal(c, "failed_to_list_reservations", "Erro ao listar reservas.")
		return
	}

	c.JSON(200, gin.H{
		"year":         year,
		"month":        month,
		"reservations": list,
	})
}

// ======================================================
// STATE CHANGES
// ======================================================

func (h *ReservationHandler) Confirm(c *gin.Context) {
	h.changeState(c, "confirm")
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	h.changeState(c, "cancel")
}

func (h *ReservationHandler) Complete(c *gin.Context) {
	h.changeState(c, "complete")
}

func (h *ReservationHandler) changeState(c *gin.Context, action string) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	businessID := c.MustGet(middleware.ContextBusinessID).(uint)

	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}
	reservationID := uint(id64)

	var exec func() (any, error)
	switch action {
	case "confirm":
		exec = func() (any, error) {
			return h.confirmUC.Execute(c.Request.Context(), businessID, userID, reservationID)
		}
	case "cancel":
		exec = func() (any, error) {
			return h.cancelUC.Execute(c.Request.Context(), businessID, userID, reservationID)
		}
	default:
		exec = func() (any, error) {
			return h.completeUC.Execute(c.Request.Context(), businessID, userID, reservationID)
		}
	}

	res, err := exec()
	if err != nil {
		if httperr.IsBusiness(err, "reservation_not_found") {
			httperr.NotFound(c, "reservation_not_found", "Reserva não encontrada.")
			return
		}
		if httperr.IsBusiness(err, httperr.CodeInvalidState) {
			httperr.BadRequest(c, "invalid_state", "Transição de status inválida.")
			return
		}
		httperr.Internal(c, "failed_to_update_reservation", "Erro ao atualizar reserva.")
		return
	}

	c.JSON(200, res)
}

func parseOptionalID(raw string) uint {
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}
