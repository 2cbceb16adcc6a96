package handlers

import (
	"errors"
	"net/http"

	contactRepo "mechserve/database/repository/contact"
	"mechserve/services/contact"
	"mechserve/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactHandler exposes the contact message endpoints.
type ContactHandler struct {
	Service contact.ContactService
}

func NewContactHandler(svc contact.ContactService) *ContactHandler {
	return &ContactHandler{Service: svc}
}

// CreateContactHandler handles POST /api/contacts.
func (h *ContactHandler) CreateContactHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	created, violations, err := h.Service.Create(c.Request.Context(), fields)
	if err != nil {
		logger.Error("Failed to create contact", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to submit contact message",
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
		"message": "Contact message submitted successfully",
		"data":    created,
	})
}

// ListContactsHandler handles GET /api/contacts.
func (h *ContactHandler) ListContactsHandler(c *gin.Context) {
	contacts, err := h.Service.List(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list contacts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch contact messages",
			"error":   "internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(contacts),
		"data":    contacts,
	})
}

// GetContactByIDHandler handles GET /api/contacts/:id.
func (h *ContactHandler) GetContactByIDHandler(c *gin.Context) {
	id := c.Param("id")

	msg, err := h.Service.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch contact", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch contact message",
			"error":   "internal server error",
		})
		return
	}
	if msg == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Contact message not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": msg})
}

// UpdateContactStatusHandler handles PATCH /api/contacts/:id/status.
func (h *ContactHandler) UpdateContactStatusHandler(c *gin.Context) {
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
	case errors.Is(err, contactRepo.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid contact status"})
		return
	case errors.Is(err, contactRepo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Contact message not found"})
		return
	case err != nil:
		utils.GetLogger().Error("Failed to update contact status", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update contact status",
			"error":   "internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Contact status updated",
		"data":    updated,
	})
}

// DeleteContactHandler handles DELETE /api/contacts/:id.
func (h *ContactHandler) DeleteContactHandler(c *gin.Context) {
	id := c.Param("id")

	err := h.Service.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, contactRepo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Contact message not found"})
		return
	case err != nil:
		utils.GetLogger().Error("Failed to delete contact", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to delete contact message",
			"error":   "internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Contact message deleted"})
}
