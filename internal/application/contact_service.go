package application

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/callygym/service-gym/internal/domain"
	contactDomain "github.com/callygym/service-gym/internal/domain/contact"
	"github.com/callygym/service-gym/internal/mailer"
)

// SubmitContactRequest is the DTO for a contact-form submission.
type SubmitContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactService orchestrates contact-form submissions.
type ContactService struct {
	repo        contactDomain.Repository
	mail        mailer.Mailer
	notifyEmail string
	logger      *zap.Logger
}

// NewContactService creates a new ContactService.
func NewContactService(repo contactDomain.Repository, mail mailer.Mailer, notifyEmail string, logger *zap.Logger) *ContactService {
	return &ContactService{
		repo:        repo,
		mail:        mail,
		notifyEmail: notifyEmail,
		logger:      logger,
	}
}

// SubmitContact persists the submission, then sends the notification email
// and waits for it. An email failure fails the whole request even though
// the record is already durable; the caller is told the submission failed.
// Accepted inconsistency, kept so the business never silently misses a
// message.
func (s *ContactService) SubmitContact(ctx context.Context, req SubmitContactRequest) error {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Message) == "" {
		return domain.NewValidationError("name, email, and message are required")
	}

	c := contactDomain.New(req.Name, req.Email, req.Message)
	if err := s.repo.Save(ctx, c); err != nil {
		s.logger.Error("failed to persist contact", zap.Error(err))
		return domain.NewPersistenceError(err)
	}

	text := fmt.Sprintf("Name: %s\nEmail: %s\nMessage:\n%s", c.Name, c.Email, c.Message)
	html := fmt.Sprintf(`<h2>New Contact Message</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Message:</strong><br>%s</p>`,
		c.Name, c.Email, strings.ReplaceAll(c.Message, "\n", "<br>"))

	err := s.mail.Send(ctx, mailer.Message{
		To:      s.notifyEmail,
		ReplyTo: c.Email,
		Subject: "New Contact Message - CallyGym",
		Text:    text,
		HTML:    html,
	})
	if err != nil {
		s.logger.Error("contact notification email failed",
			zap.String("contact_id", c.ID.String()),
			zap.Error(err),
		)
		return domain.NewUpstreamError("failed to send message", err)
	}

	s.logger.Info("contact submitted", zap.String("contact_id", c.ID.String()))
	return nil
}
