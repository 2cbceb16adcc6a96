package handlers

import (
	"errors"
	"net/http"

	bookingRepo "mechserve/database/repository/booking"
	"mechserve/services/booking"
	"mechserve/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	created, violations, err := h.Service.Create(c.Request.Context(), fields)
	if err != nil {
		logger.Error("Failed to create booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to create booking",
			"error":   "internal server error",
		})
		return
	}
	if len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": violations})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Booking created successfully",
		"data":    created,
	})
}

// ListBookingsHandler handles GET /api/bookings.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.List(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch bookings",
			"error":   "internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(bookings),
		"data":    bookings,
	})
}

// GetBookingByIDHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingByIDHandler(c *gin.Context) {
	id := c.Param("id")

	bkg, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch booking", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch booking",
			"error":   "internal server error",
		})
		return
	}
	if bkg == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Booking not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": bkg})
}

// UpdateBookingStatusHandler handles PATCH /api/bookings/:id/status.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	id := c.Param("id")

	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	updated, err := h.Service.UpdateStatus(c.Request.Context(), id, body.Status)
	switch {
	case errors.Is(err, bookingRepo.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid booking status"})
		return
	case errors.Is(err, bookingRepo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Booking not found"})
		return
	case err != nil:
		utils.GetLogger().Error("Failed to update booking status", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update booking status",
			"error":   "internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking status updated",
		"data":    updated,
	})
}

// DeleteBookingHandler handles DELETE /api/bookings/:id.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	id := c.Param("id")

	err := h.Service.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, bookingRepo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Booking not found"})
		return
	case err != nil:
		utils.GetLogger().Error("Failed to delete booking", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to delete booking",
			"error":   "internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking deleted"})
}
