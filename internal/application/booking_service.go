package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/callygym/service-gym/internal/domain"
	bookingDomain "github.com/callygym/service-gym/internal/domain/booking"
	"github.com/callygym/service-gym/internal/mailer"
	"github.com/callygym/service-gym/internal/webhook"
)

// CreateBookingRequest is the DTO for a booking-form submission.
type CreateBookingRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	PreferredDate string `json:"preferredDate"`
}

// BookingDTO is the API response DTO for a created booking.
type BookingDTO struct {
	BookingID uuid.UUID `json:"bookingId"`
}

// BookingService orchestrates booking use cases: form submissions and
// webhook-originated bookings after a verified charge.
type BookingService struct {
	repo        bookingDomain.Repository
	mail        mailer.Mailer
	notifyEmail string
	logger      *zap.Logger
}

// NewBookingService creates a new BookingService. notifyEmail receives the
// best-effort booking notifications.
func NewBookingService(repo bookingDomain.Repository, mail mailer.Mailer, notifyEmail string, logger *zap.Logger) *BookingService {
	return &BookingService{
		repo:        repo,
		mail:        mail,
		notifyEmail: notifyEmail,
		logger:      logger,
	}
}

// CreateBooking validates and persists a booking-form submission. The
// notification email is best-effort: a send failure is logged and never
// fails the request.
func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingDTO, error) {
	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Phone) == "" {
		return nil, domain.NewValidationError("name, email, and phone are required")
	}

	date := time.Now().UTC()
	if strings.TrimSpace(req.PreferredDate) != "" {
		parsed, err := parseDate(req.PreferredDate)
		if err != nil {
			return nil, domain.NewValidationError("preferredDate must be an ISO date")
		}
		date = parsed
	}

	b := bookingDomain.New(req.Name, req.Email, req.Phone, date)
	if err := s.repo.Save(ctx, b); err != nil {
		s.logger.Error("failed to persist booking", zap.Error(err))
		return nil, domain.NewPersistenceError(err)
	}

	s.logger.Info("booking created",
		zap.String("booking_id", b.ID.String()),
		zap.String("email", b.Email),
	)

	go s.notifyBooking(b, req.PreferredDate)

	return &BookingDTO{BookingID: b.ID}, nil
}

// CreateFromCharge persists a booking sourced from a verified
// charge.success webhook event. At-least-once: redelivered events create
// duplicate rows.
func (s *BookingService) CreateFromCharge(ctx context.Context, evt webhook.ChargeEvent) (*bookingDomain.Booking, error) {
	b := bookingDomain.New(evt.Name, evt.Email, evt.Phone, time.Now().UTC())
	if err := s.repo.Save(ctx, b); err != nil {
		return nil, domain.NewPersistenceError(err)
	}
	s.logger.Info("booking saved from charge event",
		zap.String("booking_id", b.ID.String()),
		zap.String("reference", evt.Reference),
	)
	return b, nil
}

// notifyBooking emails the operational inbox about a new booking. Runs
// detached from the request with its own deadline.
func (s *BookingService) notifyBooking(b *bookingDomain.Booking, preferredDate string) {
	if s.notifyEmail == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	when := preferredDate
	if when == "" {
		when = "ASAP"
	}
	text := fmt.Sprintf("New booking received:\n\nName: %s\nEmail: %s\nPhone: %s\nPreferred Date: %s\n\nBooking ID: %s\n",
		b.Name, b.Email, b.Phone, when, b.ID)
	html := fmt.Sprintf(`<h2>New Booking Request</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Preferred Date:</strong> %s</p>
<p><strong>Booking ID:</strong> %s</p>
<hr>
<p>Reply to this email to contact the customer directly.</p>`,
		b.Name, b.Email, b.Phone, when, b.ID)

	err := s.mail.Send(ctx, mailer.Message{
		To:      s.notifyEmail,
		ReplyTo: b.Email,
		Subject: "New Booking Request",
		Text:    text,
		HTML:    html,
	})
	if err != nil {
		s.logger.Warn("booking notification email failed",
			zap.String("booking_id", b.ID.String()),
			zap.Error(err),
		)
	}
}

// parseDate accepts RFC3339 timestamps and bare dates.
func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
