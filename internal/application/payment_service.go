package application

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/callygym/service-gym/internal/adapter"
	"github.com/callygym/service-gym/internal/domain"
	memberDomain "github.com/callygym/service-gym/internal/domain/member"
)

// referencePrefix namespaces every generated payment reference.
const referencePrefix = "CallyGym"

// UserDetails carries the payer identity for checkout. Only the email is
// required; the rest defaults into the transaction metadata.
type UserDetails struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// InitializePaymentRequest is the DTO for starting a hosted checkout.
// AmountNaira is in major units; it is converted to kobo for the gateway.
type InitializePaymentRequest struct {
	PlanName    string      `json:"planName"`
	AmountNaira float64     `json:"amountNaira"`
	ClassName   string      `json:"className"`
	UserDetails UserDetails `json:"userDetails"`
}

// CheckoutDTO is the API response for a successful initialization. The
// client redirects the customer to AuthorizationURL.
type CheckoutDTO struct {
	AuthorizationURL string `json:"authorization_url"`
	Reference        string `json:"reference,omitempty"`
}

// PaymentService orchestrates payment initialization and membership
// upgrades through the gateway adapter.
type PaymentService struct {
	paystack adapter.PaystackAdapter
	members  memberDomain.Repository
	logger   *zap.Logger
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(paystack adapter.PaystackAdapter, members memberDomain.Repository, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		paystack: paystack,
		members:  members,
		logger:   logger,
	}
}

// InitializePayment validates the request, generates a unique reference,
// and asks the gateway for a checkout URL. Never retried: a retry without a
// fresh reference could create a duplicate transaction.
func (s *PaymentService) InitializePayment(ctx context.Context, req InitializePaymentRequest) (*CheckoutDTO, error) {
	email := strings.TrimSpace(req.UserDetails.Email)
	if email == "" {
		return nil, domain.NewValidationError("missing or invalid payment details")
	}
	if req.AmountNaira <= 0 {
		return nil, domain.NewValidationError("missing or invalid payment details")
	}

	txType := "membership"
	if req.ClassName != "" {
		txType = "class_booking"
	}

	name := req.UserDetails.Name
	if name == "" {
		name = "Anonymous"
	}
	plan := req.PlanName
	if plan == "" {
		plan = "Unknown"
	}
	var className any
	if req.ClassName != "" {
		className = req.ClassName
	}

	gatewayReq := adapter.InitializeRequest{
		Email:      email,
		AmountKobo: NairaToKobo(req.AmountNaira),
		Reference:  NewReference(),
		Metadata: map[string]any{
			"name":      name,
			"phone":     req.UserDetails.Phone,
			"message":   req.UserDetails.Message,
			"type":      txType,
			"plan":      plan,
			"className": className,
		},
	}

	resp, err := s.paystack.InitializeTransaction(ctx, gatewayReq)
	if err != nil {
		s.logger.Error("payment initialization failed",
			zap.String("reference", gatewayReq.Reference),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("payment initialized",
		zap.String("reference", gatewayReq.Reference),
		zap.Int64("amount_kobo", gatewayReq.AmountKobo),
		zap.String("type", txType),
	)

	// The reference the caller polls with is ours, not the one echoed
	// back by the gateway.
	return &CheckoutDTO{
		AuthorizationURL: resp.AuthorizationURL,
		Reference:        gatewayReq.Reference,
	}, nil
}

// UpgradeMembership starts a checkout for a plan upgrade on behalf of an
// authenticated member. An unknown member is a NotFoundError, never a
// crash.
func (s *PaymentService) UpgradeMembership(ctx context.Context, memberID uuid.UUID, plan string) (*CheckoutDTO, error) {
	m, err := s.members.FindByID(ctx, memberID)
	if err != nil {
		if domain.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, domain.NewPersistenceError(err)
	}

	amount := memberDomain.PlanPriceKobo(plan)
	gatewayReq := adapter.InitializeRequest{
		Email:      m.Email,
		AmountKobo: amount,
		Reference:  NewReference(),
		Metadata: map[string]any{
			"userId": m.ID.String(),
			"plan":   plan,
		},
	}

	resp, err := s.paystack.InitializeTransaction(ctx, gatewayReq)
	if err != nil {
		s.logger.Error("membership upgrade initialization failed",
			zap.String("member_id", m.ID.String()),
			zap.String("plan", plan),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("membership upgrade initialized",
		zap.String("member_id", m.ID.String()),
		zap.String("plan", plan),
		zap.Int64("amount_kobo", amount),
	)

	return &CheckoutDTO{AuthorizationURL: resp.AuthorizationURL}, nil
}

// NairaToKobo converts a major-unit amount to integral kobo, rounding
// half away from zero.
func NairaToKobo(naira float64) int64 {
	return int64(math.Round(naira * 100))
}

// NewReference generates a payment reference unique within the process
// lifetime: namespace prefix, wall-clock millis, and a random suffix.
// Uniqueness is probabilistic; it is never checked against storage.
func NewReference() string {
	return fmt.Sprintf("%s-%d-%s", referencePrefix, time.Now().UnixMilli(), uuid.New().String()[:8])
}
