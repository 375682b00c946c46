package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/agendly/booking-api/internal/domain/booking"
	"github.com/agendly/booking-api/internal/middleware"
	"github.com/agendly/booking-api/internal/models"
)

type OperatingHoursHandler struct {
	db *gorm.DB
}

func NewOperatingHoursHandler(db *gorm.DB) *OperatingHoursHandler {
	return &OperatingHoursHandler{db: db}
}

type OperatingDayConfig struct {
	Weekday    int    `json:"weekday" binding:"min=0,max=6"`
	Active     bool   `json:"active"`
	OpensAt    string `json:"opens_at"`
	ClosesAt   string `json:"closes_at"`
	BreakStart string `json:"break_start"`
	BreakEnd   string `json:"break_end"`
}

type OperatingHoursUpdateRequest struct {
	Days []OperatingDayConfig `json:"days" binding:"required"`
}

func (h *OperatingHoursHandler) Get(c *gin.Context) {
	businessIDVal, _ := c.Get(middleware.ContextBusinessID)
	businessID := businessIDVal.(uint)

	var hours []models.OperatingHours
	if err := h.db.
		Where("business_id = ?", businessID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_operating_hours"})
		return
	}

	c.JSON(http.StatusOK, hours)
}

func (h *OperatingHoursHandler) Update(c *gin.Context) {
	businessIDVal, _ := c.Get(middleware.ContextBusinessID)
	businessID := businessIDVal.(uint)

	var req OperatingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	// abertura antes do fechamento em todo dia ativo
	for _, d := range req.Days {
		if !d.Active {
			continue
		}

		open := domain.MinuteOfDay(d.OpensAt)
		closeMin := domain.MinuteOfDay(d.ClosesAt)
		if open < 0 || closeMin < 0 || open >= closeMin {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_operating_window"})
			return
		}
	}

	var toCreate []models.OperatingHours
	for _, d := range req.Days {
		oh := models.OperatingHours{
			BusinessID: businessID,
			Weekday:    d.Weekday,
			Active:     d.Active,
			OpensAt:    d.OpensAt,
			ClosesAt:   d.ClosesAt,
			BreakStart: d.BreakStart,
			BreakEnd:   d.BreakEnd,
		}
		toCreate = append(toCreate, oh)
	}

	// troca atômica: uma falha no meio não pode deixar o negócio sem expediente
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("business_id = ?", businessID).
			Delete(&models.OperatingHours{}).Error; err != nil {
			return err
		}

		if len(toCreate) > 0 {
			return tx.Create(&toCreate).Error
		}
		return nil
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_operating_hours"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
