package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/callygym/service-gym/internal/adapter"
	"github.com/callygym/service-gym/internal/domain"
	bookingDomain "github.com/callygym/service-gym/internal/domain/booking"
	contactDomain "github.com/callygym/service-gym/internal/domain/contact"
	freetrialDomain "github.com/callygym/service-gym/internal/domain/freetrial"
	memberDomain "github.com/callygym/service-gym/internal/domain/member"
	"github.com/callygym/service-gym/internal/mailer"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// In-memory fakes backing the services under the handlers.

type fakeBookingRepo struct {
	mu      sync.Mutex
	saved   []*bookingDomain.Booking
	saveErr error
}

func (f *fakeBookingRepo) Save(_ context.Context, b *bookingDomain.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, b)
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*bookingDomain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.saved {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, domain.NewNotFoundError("booking", id.String())
}

func (f *fakeBookingRepo) CountByEmail(_ context.Context, email string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, b := range f.saved {
		if b.Email == email {
			n++
		}
	}
	return n, nil
}

func (f *fakeBookingRepo) all() []*bookingDomain.Booking {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*bookingDomain.Booking(nil), f.saved...)
}

type fakeContactRepo struct {
	saved []*contactDomain.Contact
}

func (f *fakeContactRepo) Save(_ context.Context, c *contactDomain.Contact) error {
	f.saved = append(f.saved, c)
	return nil
}

type fakeFreeTrialRepo struct {
	saved []*freetrialDomain.FreeTrial
}

func (f *fakeFreeTrialRepo) Save(_ context.Context, ft *freetrialDomain.FreeTrial) error {
	f.saved = append(f.saved, ft)
	return nil
}

type fakeMemberRepo struct {
	members map[uuid.UUID]*memberDomain.Member
}

func newFakeMemberRepo(members ...*memberDomain.Member) *fakeMemberRepo {
	f := &fakeMemberRepo{members: make(map[uuid.UUID]*memberDomain.Member)}
	for _, m := range members {
		f.members[m.ID] = m
	}
	return f
}

func (f *fakeMemberRepo) FindByID(_ context.Context, id uuid.UUID) (*memberDomain.Member, error) {
	m, ok := f.members[id]
	if !ok {
		return nil, domain.NewNotFoundError("member", id.String())
	}
	return m, nil
}

func (f *fakeMemberRepo) Save(_ context.Context, m *memberDomain.Member) error {
	f.members[m.ID] = m
	return nil
}

type fakeMailer struct {
	mu      sync.Mutex
	sent    []mailer.Message
	sendErr error
}

func (f *fakeMailer) Send(_ context.Context, msg mailer.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, msg)
	return nil
}

type fakePaystack struct {
	requests []adapter.InitializeRequest
	err      error
}

func (f *fakePaystack) InitializeTransaction(_ context.Context, req adapter.InitializeRequest) (*adapter.InitializeResponse, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &adapter.InitializeResponse{
		AuthorizationURL: "https://checkout.paystack.com/ac_test",
		AccessCode:       "ac_test",
		Reference:        req.Reference,
	}, nil
}

// doJSON performs a JSON request against the router and returns the
// recorded response.
func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeBody unmarshals a recorded JSON response body.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
