package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"restaurant_orders/internal/models"
	"restaurant_orders/internal/services"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservationService services.ReservationService
}

func NewReservationHandler(reservationService services.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService}
}

func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req struct {
		CustomerName    string    `json:"customer_name" binding:"required"`
		CustomerPhone   string    `json:"customer_phone" binding:"required"`
		CustomerEmail   string    `json:"customer_email"`
		PartySize       int       `json:"party_size" binding:"required"`
		ReservationTime time.Time `json:"reservation_time" binding:"required"`
		Notes           string    `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request format"})
		return
	}

	reservation := &models.Reservation{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		PartySize:       req.PartySize,
		ReservationTime: req.ReservationTime,
		Notes:           req.Notes,
	}
	if err := h.reservationService.CreateReservation(reservation); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPartySize),
			errors.Is(err, services.ErrReservationInPast),
			errors.Is(err, services.ErrMissingContact):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create reservation"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": reservation})
}

func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid reservation id"})
		return
	}

	reservation, err := h.reservationService.GetReservation(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Reservation not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": reservation})
}

func (h *ReservationHandler) ListReservations(c *gin.Context) {
	if dateParam := c.Query("date"); dateParam != "" {
		date, err := time.Parse("2006-01-02", dateParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		reservations, err := h.reservationService.GetReservationsByDate(date)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load reservations"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": reservations})
		return
	}

	reservations, err := h.reservationService.GetAllReservations()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load reservations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": reservations})
}

func (h *ReservationHandler) ConfirmReservation(c *gin.Context) {
	h.updateStatus(c, h.reservationService.ConfirmReservation)
}

func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	h.updateStatus(c, h.reservationService.CancelReservation)
}

func (h *ReservationHandler) updateStatus(c *gin.Context, update func(id uint) error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid reservation id"})
		return
	}

	if err := update(uint(id)); err != nil {
		switch {
		case errors.Is(err, services.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Reservation not found"})
		case errors.Is(err, services.ErrReservationNotPending):
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update reservation"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
