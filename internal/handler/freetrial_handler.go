package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/callygym/service-gym/internal/application"
	"github.com/callygym/service-gym/internal/response"
)

// FreeTrialHandler handles HTTP requests for free-trial leads.
type FreeTrialHandler struct {
	service *application.FreeTrialService
}

// NewFreeTrialHandler creates a new FreeTrialHandler.
func NewFreeTrialHandler(service *application.FreeTrialService) *FreeTrialHandler {
	return &FreeTrialHandler{service: service}
}

// RegisterRoutes registers the free-trial routes on the given router group.
func (h *FreeTrialHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/free-trial", h.SubmitFreeTrial)
}

// SubmitFreeTrial handles POST /free-trial.
func (h *FreeTrialHandler) SubmitFreeTrial(c *gin.Context) {
	var req application.SubmitFreeTrialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := h.service.SubmitFreeTrial(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{"message": "Free trial request submitted"})
}
