package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redroute/bus-reservation-backend/internal/models"
	"github.com/redroute/bus-reservation-backend/internal/services"
	"github.com/sirupsen/logrus"
)

// BookingHandler handles booking lifecycle endpoints
type BookingHandler struct {
	bookingService *services.BookingService
	ticketService  *services.TicketService
	logger         *logrus.Logger
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(bookingService *services.BookingService, ticketService *services.TicketService, logger *logrus.Logger) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		ticketService:  ticketService,
		logger:         logger,
	}
}

// CreateBooking creates a new booking
// POST /bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	pnr, err := h.bookingService.CreateBooking(&req)
	if err != nil {
		if models.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		// Storage details stay in the server log
		h.logger.WithError(err).Error("Failed to create booking")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"pnr":     pnr,
		"message": "Booking confirmed successfully!",
	})
}

// GetBooking fetches a booking by PNR
// GET /bookings?pnr=X
func (h *BookingHandler) GetBooking(c *gin.Context) {
	pnr := c.Query("pnr")

	booking, err := h.bookingService.GetBooking(pnr)
	if err != nil {
		switch {
		case models.IsValidationError(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, models.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "No booking found with this PNR"})
		default:
			h.logger.WithError(err).Error("Failed to fetch booking")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch booking"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// CancelBooking cancels a booking identified by PNR, email and mobile
// POST /bookings/cancel
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	var req models.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	message, err := h.bookingService.CancelBooking(&req)
	if err != nil {
		switch {
		case models.IsValidationError(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, models.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "No matching booking found. Please check your details."})
		case errors.Is(err, models.ErrAlreadyCancelled):
			c.JSON(http.StatusBadRequest, gin.H{"error": "This ticket has already been cancelled."})
		default:
			h.logger.WithError(err).Error("Failed to cancel booking")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
	})
}

// GetETicket downloads the e-ticket PDF for a booking
// GET /bookings/ticket?pnr=X
func (h *BookingHandler) GetETicket(c *gin.Context) {
	pnr := c.Query("pnr")

	data, filename, err := h.ticketService.GenerateETicket(pnr)
	if err != nil {
		switch {
		case models.IsValidationError(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, models.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "No booking found with this PNR"})
		default:
			h.logger.WithError(err).Error("Failed to generate e-ticket")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate e-ticket"})
		}
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
