package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/callygym/service-gym/internal/application"
	"github.com/callygym/service-gym/internal/middleware"
	"github.com/callygym/service-gym/internal/response"
)

// PaymentHandler handles HTTP requests for payment initialization and
// membership upgrades.
type PaymentHandler struct {
	service *application.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(service *application.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// RegisterRoutes registers the payment routes. The upgrade route sits
// behind the auth middleware; checkout initialization is public.
func (h *PaymentHandler) RegisterRoutes(r *gin.RouterGroup, authMW gin.HandlerFunc) {
	r.POST("/payment/initialize", h.InitializePayment)
	r.POST("/membership/upgrade", authMW, h.UpgradeMembership)
}

// InitializePayment handles POST /payment/initialize.
func (h *PaymentHandler) InitializePayment(c *gin.Context) {
	var req application.InitializePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "missing or invalid payment details")
		return
	}

	dto, err := h.service.InitializePayment(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto)
}

// UpgradeMembership handles POST /membership/upgrade.
func (h *PaymentHandler) UpgradeMembership(c *gin.Context) {
	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	var req struct {
		Plan string `json:"plan"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	dto, err := h.service.UpgradeMembership(c.Request.Context(), memberID, req.Plan)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"authorization_url": dto.AuthorizationURL})
}
