package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/callygym/service-gym/internal/domain"
)

// InitializeRequest is the gateway-facing payload for starting a hosted
// checkout. AmountKobo is in minor currency units.
type InitializeRequest struct {
	Email      string         `json:"email"`
	AmountKobo int64          `json:"amount"`
	Reference  string         `json:"reference"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// InitializeResponse carries the fields the service needs from a successful
// initialization.
type InitializeResponse struct {
	AuthorizationURL string
	AccessCode       string
	Reference        string
}

// PaystackAdapter defines the Anti-Corruption Layer interface for the
// payment gateway. This abstraction decouples the application services from
// the external Paystack API.
type PaystackAdapter interface {
	// InitializeTransaction creates a hosted-checkout transaction and
	// returns the authorization URL the customer is redirected to.
	InitializeTransaction(ctx context.Context, req InitializeRequest) (*InitializeResponse, error)
}

// initializeEnvelope mirrors Paystack's response shape.
type initializeEnvelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

// HTTPPaystackAdapter is the production implementation backed by the
// Paystack REST API.
type HTTPPaystackAdapter struct {
	client    *http.Client
	baseURL   string
	secretKey string
	logger    *zap.Logger
}

// NewHTTPPaystackAdapter creates a Paystack adapter with a bounded request
// timeout. The secret key authenticates every call.
func NewHTTPPaystackAdapter(baseURL, secretKey string, logger *zap.Logger) *HTTPPaystackAdapter {
	return &HTTPPaystackAdapter{
		client:    &http.Client{Timeout: 30 * time.Second},
		baseURL:   baseURL,
		secretKey: secretKey,
		logger:    logger,
	}
}

// InitializeTransaction calls POST /transaction/initialize. The provider's
// raw error payload is logged server-side only; callers receive a generic
// upstream error.
func (a *HTTPPaystackAdapter) InitializeTransaction(ctx context.Context, req InitializeRequest) (*InitializeResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, domain.NewUpstreamError("payment initialization failed", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return nil, domain.NewUpstreamError("payment initialization failed", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+a.secretKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(httpReq)
	if err != nil {
		a.logger.Error("paystack initialize request failed", zap.Error(err))
		return nil, domain.NewUpstreamError("payment initialization failed", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, domain.NewUpstreamError("payment initialization failed", err)
	}

	var envelope initializeEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		a.logger.Error("paystack initialize returned malformed body",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", raw),
		)
		return nil, domain.NewUpstreamError("payment initialization failed", err)
	}

	if !envelope.Status || envelope.Data.AuthorizationURL == "" {
		a.logger.Error("paystack initialize rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("provider_message", envelope.Message),
			zap.ByteString("body", raw),
		)
		return nil, domain.NewUpstreamError("payment initialization failed",
			fmt.Errorf("paystack: %s (http %d)", envelope.Message, resp.StatusCode))
	}

	return &InitializeResponse{
		AuthorizationURL: envelope.Data.AuthorizationURL,
		AccessCode:       envelope.Data.AccessCode,
		Reference:        envelope.Data.Reference,
	}, nil
}

// MockPaystackAdapter is a development implementation that simulates the
// gateway without a real Paystack account.
type MockPaystackAdapter struct {
	logger *zap.Logger
}

// NewMockPaystackAdapter creates a new mock adapter for development.
func NewMockPaystackAdapter(logger *zap.Logger) *MockPaystackAdapter {
	return &MockPaystackAdapter{logger: logger}
}

// InitializeTransaction simulates a successful initialization and returns a
// mock checkout URL.
func (m *MockPaystackAdapter) InitializeTransaction(ctx context.Context, req InitializeRequest) (*InitializeResponse, error) {
	accessCode := fmt.Sprintf("ac_mock_%s", uuid.New().String()[:8])

	m.logger.Info("[MOCK PAYSTACK] transaction initialized",
		zap.String("reference", req.Reference),
		zap.Int64("amount_kobo", req.AmountKobo),
		zap.String("email", req.Email),
	)

	return &InitializeResponse{
		AuthorizationURL: fmt.Sprintf("https://checkout.paystack.com/%s", accessCode),
		AccessCode:       accessCode,
		Reference:        req.Reference,
	}, nil
}
