package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/callygym/service-gym/internal/domain"
	"github.com/callygym/service-gym/internal/webhook"
)

func TestBookingService_CreateBooking(t *testing.T) {
	logger := zap.NewNop()

	t.Run("rejects blank required fields", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		svc := NewBookingService(repo, &fakeMailer{}, "ops@callygym.com", logger)

		cases := []CreateBookingRequest{
			{Email: "a@b.com", Phone: "0801"},
			{Name: "Ada", Phone: "0801"},
			{Name: "Ada", Email: "a@b.com"},
			{Name: "   ", Email: "a@b.com", Phone: "0801"},
		}
		for _, req := range cases {
			_, err := svc.CreateBooking(context.Background(), req)
			require.Error(t, err)
			assert.True(t, domain.Is(err, domain.ErrValidation))
		}
		assert.Empty(t, repo.all(), "nothing is persisted on invalid input")
	})

	t.Run("rejects an unparseable preferred date", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		svc := NewBookingService(repo, &fakeMailer{}, "ops@callygym.com", logger)

		_, err := svc.CreateBooking(context.Background(), CreateBookingRequest{
			Name:          "Ada",
			Email:         "ada@example.com",
			Phone:         "0801",
			PreferredDate: "next tuesday",
		})
		require.Error(t, err)
		assert.True(t, domain.Is(err, domain.ErrValidation))
		assert.Empty(t, repo.all())
	})

	t.Run("persists a valid submission with a bare date", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		mail := &fakeMailer{}
		svc := NewBookingService(repo, mail, "ops@callygym.com", logger)

		dto, err := svc.CreateBooking(context.Background(), CreateBookingRequest{
			Name:          "  Ada  ",
			Email:         "ada@example.com",
			Phone:         "0801",
			PreferredDate: "2026-09-15",
		})
		require.NoError(t, err)

		saved := repo.all()
		require.Len(t, saved, 1)
		assert.Equal(t, dto.BookingID, saved[0].ID)
		assert.Equal(t, "Ada", saved[0].Name, "fields are trimmed")
		assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), saved[0].Date)

		// The notification is sent off the request path.
		assert.Eventually(t, func() bool {
			return len(mail.messages()) == 1
		}, 2*time.Second, 10*time.Millisecond)
		msg := mail.messages()[0]
		assert.Equal(t, "ops@callygym.com", msg.To)
		assert.Equal(t, "ada@example.com", msg.ReplyTo)
	})

	t.Run("defaults the date when no preference is given", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		svc := NewBookingService(repo, &fakeMailer{}, "", logger)

		before := time.Now().UTC()
		_, err := svc.CreateBooking(context.Background(), CreateBookingRequest{
			Name:  "Ada",
			Email: "ada@example.com",
			Phone: "0801",
		})
		require.NoError(t, err)

		saved := repo.all()
		require.Len(t, saved, 1)
		assert.WithinRange(t, saved[0].Date, before, time.Now().UTC())
	})

	t.Run("succeeds even when the notification email fails", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		mail := &fakeMailer{sendErr: assert.AnError}
		svc := NewBookingService(repo, mail, "ops@callygym.com", logger)

		_, err := svc.CreateBooking(context.Background(), CreateBookingRequest{
			Name:  "Ada",
			Email: "ada@example.com",
			Phone: "0801",
		})
		require.NoError(t, err)
		assert.Len(t, repo.all(), 1)
	})

	t.Run("maps storage failure to a persistence error", func(t *testing.T) {
		repo := &fakeBookingRepo{saveErr: assert.AnError}
		svc := NewBookingService(repo, &fakeMailer{}, "", logger)

		_, err := svc.CreateBooking(context.Background(), CreateBookingRequest{
			Name:  "Ada",
			Email: "ada@example.com",
			Phone: "0801",
		})
		require.Error(t, err)
		assert.True(t, domain.Is(err, domain.ErrPersistence))
	})
}

func TestBookingService_CreateFromCharge(t *testing.T) {
	logger := zap.NewNop()

	t.Run("persists the charge fields verbatim", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		svc := NewBookingService(repo, &fakeMailer{}, "", logger)

		b, err := svc.CreateFromCharge(context.Background(), webhook.ChargeEvent{
			Event:     webhook.EventChargeSuccess,
			Reference: "CallyGym-1-abcd",
			Name:      "Unknown",
			Email:     "payer@example.com",
			Phone:     "N/A",
		})
		require.NoError(t, err)

		saved := repo.all()
		require.Len(t, saved, 1)
		assert.Equal(t, b.ID, saved[0].ID)
		assert.Equal(t, "Unknown", saved[0].Name)
		assert.Equal(t, "payer@example.com", saved[0].Email)
		assert.Equal(t, "N/A", saved[0].Phone)
	})

	t.Run("redelivery writes a second row", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		svc := NewBookingService(repo, &fakeMailer{}, "", logger)

		evt := webhook.ChargeEvent{
			Event:     webhook.EventChargeSuccess,
			Reference: "CallyGym-1-abcd",
			Name:      "Ada",
			Email:     "ada@example.com",
			Phone:     "0801",
		}
		_, err := svc.CreateFromCharge(context.Background(), evt)
		require.NoError(t, err)
		_, err = svc.CreateFromCharge(context.Background(), evt)
		require.NoError(t, err)

		assert.Len(t, repo.all(), 2)
	})
}
