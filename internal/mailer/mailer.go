package mailer

import (
	"context"
	"time"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"github.com/callygym/service-gym/internal/config"
)

// Message is a templated notification email. Text is always set; HTML is
// attached as an alternative part when present.
type Message struct {
	To      string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

// Mailer is the outbound notification gateway. Sends are awaited by
// callers for error visibility even where the overall flow treats them as
// best-effort.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPMailer sends notifications over authenticated SMTP.
type SMTPMailer struct {
	client   *mail.Client
	from     string
	fromName string
	logger   *zap.Logger
}

// NewSMTPMailer creates an SMTP mailer with a bounded per-send timeout.
func NewSMTPMailer(cfg config.SMTPConfig, logger *zap.Logger) (*SMTPMailer, error) {
	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTimeout(30*time.Second),
	)
	if err != nil {
		return nil, err
	}
	return &SMTPMailer{
		client:   client,
		from:     cfg.From,
		fromName: cfg.FromName,
		logger:   logger,
	}, nil
}

// Send delivers a single message. The context bounds the whole dial/send
// exchange.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	mm := mail.NewMsg()
	if err := mm.FromFormat(m.fromName, m.from); err != nil {
		return err
	}
	if err := mm.To(msg.To); err != nil {
		return err
	}
	if msg.ReplyTo != "" {
		if err := mm.ReplyTo(msg.ReplyTo); err != nil {
			return err
		}
	}
	mm.Subject(msg.Subject)
	mm.SetBodyString(mail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		mm.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	}

	if err := m.client.DialAndSendWithContext(ctx, mm); err != nil {
		m.logger.Error("smtp send failed",
			zap.String("to", msg.To),
			zap.String("subject", msg.Subject),
			zap.Error(err),
		)
		return err
	}
	return nil
}
