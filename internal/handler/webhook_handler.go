package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/callygym/service-gym/internal/application"
	"github.com/callygym/service-gym/internal/domain"
	"github.com/callygym/service-gym/internal/response"
	"github.com/callygym/service-gym/internal/webhook"
)

// maxWebhookBody bounds how much of a callback body is read.
const maxWebhookBody = 1 << 20

// WebhookHandler handles payment-gateway callbacks. The body is verified
// byte-exact before anything is parsed from it.
type WebhookHandler struct {
	service *application.WebhookService
	logger  *zap.Logger
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(service *application.WebhookService, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{service: service, logger: logger}
}

// RegisterRoutes registers the webhook route on the given router group.
func (h *WebhookHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/paystack/webhook", h.HandleWebhook)
}

// HandleWebhook handles POST /paystack/webhook. A signature mismatch is
// the only non-200 outcome; after verification the provider always gets a
// 200, even when the downstream write fails, so its retry policy is never
// fed by transient local faults.
func (h *WebhookHandler) HandleWebhook(c *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		h.logger.Error("failed to read webhook body", zap.Error(err))
		c.Status(http.StatusServiceUnavailable)
		return
	}

	signature := c.GetHeader(webhook.SignatureHeader)
	if !h.service.Verify(raw, signature) {
		h.logger.Warn("webhook signature mismatch")
		response.Error(c, domain.NewSignatureError())
		return
	}

	h.service.HandleEvent(c.Request.Context(), raw)
	c.Status(http.StatusOK)
}
