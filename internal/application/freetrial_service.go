package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/callygym/service-gym/internal/domain"
	freetrialDomain "github.com/callygym/service-gym/internal/domain/freetrial"
	"github.com/callygym/service-gym/internal/mailer"
)

// SubmitFreeTrialRequest is the DTO for a free-trial request.
type SubmitFreeTrialRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// FreeTrialService orchestrates free-trial lead capture.
type FreeTrialService struct {
	repo        freetrialDomain.Repository
	mail        mailer.Mailer
	notifyEmail string
	logger      *zap.Logger
}

// NewFreeTrialService creates a new FreeTrialService.
func NewFreeTrialService(repo freetrialDomain.Repository, mail mailer.Mailer, notifyEmail string, logger *zap.Logger) *FreeTrialService {
	return &FreeTrialService{
		repo:        repo,
		mail:        mail,
		notifyEmail: notifyEmail,
		logger:      logger,
	}
}

// SubmitFreeTrial persists the lead, then notifies the operational inbox
// and waits for the send. A duplicate email fails at the storage boundary
// and is reported like any other storage failure; an email failure fails
// the request even though the lead is already durable (same accepted
// inconsistency as the contact flow).
func (s *FreeTrialService) SubmitFreeTrial(ctx context.Context, req SubmitFreeTrialRequest) error {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Phone) == "" {
		return domain.NewValidationError("name, email, and phone are required")
	}

	ft := freetrialDomain.New(req.Name, req.Email, req.Phone)
	if err := s.repo.Save(ctx, ft); err != nil {
		s.logger.Error("failed to persist free trial", zap.Error(err))
		return domain.NewPersistenceError(err)
	}

	submitted := time.Now().UTC().Format(time.RFC1123)
	text := fmt.Sprintf("New free trial request:\n\nName: %s\nEmail: %s\nPhone: %s\nSubmitted: %s",
		ft.Name, ft.Email, ft.Phone, submitted)
	html := fmt.Sprintf(`<h2>New Free Trial Request</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Submitted:</strong> %s</p>
<hr>
<p>Reply to this email to contact the lead directly.</p>`,
		ft.Name, ft.Email, ft.Phone, submitted)

	err := s.mail.Send(ctx, mailer.Message{
		To:      s.notifyEmail,
		ReplyTo: ft.Email,
		Subject: "New Free Trial Request - CallyGym",
		Text:    text,
		HTML:    html,
	})
	if err != nil {
		s.logger.Error("free trial notification email failed",
			zap.String("free_trial_id", ft.ID.String()),
			zap.Error(err),
		)
		return domain.NewUpstreamError("failed to submit request", err)
	}

	s.logger.Info("free trial submitted", zap.String("free_trial_id", ft.ID.String()))
	return nil
}
