package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/callygym/service-gym/internal/application"
	"github.com/callygym/service-gym/internal/response"
)

// ContactHandler handles HTTP requests for contact-form submissions.
type ContactHandler struct {
	service *application.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(service *application.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// RegisterRoutes registers the contact routes on the given router group.
func (h *ContactHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/contact", h.SubmitContact)
}

// SubmitContact handles POST /contact.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req application.SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := h.service.SubmitContact(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"success": true, "message": "Message sent successfully!"})
}
