package application

import (
	"context"

	"go.uber.org/zap"

	"github.com/callygym/service-gym/internal/webhook"
)

// WebhookService applies verified payment-gateway callbacks. Signature
// verification is the gate for every side effect: nothing is created or
// mutated from an unverified payload.
type WebhookService struct {
	verifier *webhook.Verifier
	bookings *BookingService
	logger   *zap.Logger
}

// NewWebhookService creates a new WebhookService.
func NewWebhookService(verifier *webhook.Verifier, bookings *BookingService, logger *zap.Logger) *WebhookService {
	return &WebhookService{
		verifier: verifier,
		bookings: bookings,
		logger:   logger,
	}
}

// Verify checks the signature header against the raw request body.
func (s *WebhookService) Verify(rawBody []byte, signature string) bool {
	return s.verifier.Verify(rawBody, signature)
}

// HandleEvent processes a verified payload. A successful charge records a
// booking; every other event type is acknowledged without persistence.
// Write failures are logged and swallowed so the provider is not driven
// into a retry storm by a transient local fault.
func (s *WebhookService) HandleEvent(ctx context.Context, rawBody []byte) {
	evt := webhook.ParseChargeEvent(rawBody)
	if evt.Event != webhook.EventChargeSuccess {
		s.logger.Debug("ignoring webhook event", zap.String("event", evt.Event))
		return
	}

	if _, err := s.bookings.CreateFromCharge(ctx, evt); err != nil {
		s.logger.Error("webhook booking save failed",
			zap.String("reference", evt.Reference),
			zap.Error(err),
		)
	}
}
