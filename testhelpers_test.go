//go:build integration

package main_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/callygym/service-gym/internal/application"
	memberDomain "github.com/callygym/service-gym/internal/domain/member"
	"github.com/callygym/service-gym/internal/mailer"
	"github.com/callygym/service-gym/internal/repository"
	"github.com/callygym/service-gym/internal/webhook"
)

// testInfra holds shared test infrastructure.
type testInfra struct {
	DB      *gorm.DB
	Cleanup func()
}

// setupPostgres starts a PostgreSQL testcontainer and returns a connected
// GORM DB with the uuid-ossp extension enabled.
func setupPostgres(t *testing.T) *testInfra {
	t.Helper()
	ctx := context.Background()

	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "test_gym",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: pgReq,
		Started:          true,
	})
	require.NoError(t, err, "failed to start PostgreSQL container")

	pgHost, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	pgPort, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=%s port=%s user=test password=test dbname=test_gym sslmode=disable", pgHost, pgPort.Port())

	// Poll until GORM can actually connect and ping.
	var db *gorm.DB
	require.Eventually(t, func() bool {
		var err error
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return false
		}
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, 30*time.Second, 1*time.Second, "PostgreSQL not ready for connections")

	require.NoError(t, db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error)

	cleanup := func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate PostgreSQL container: %v", err)
		}
	}

	return &testInfra{DB: db, Cleanup: cleanup}
}

// seedMember inserts a member row and returns its ID.
func seedMember(t *testing.T, db *gorm.DB, plan string) uuid.UUID {
	t.Helper()
	now := time.Now().UTC()
	model := repository.MemberModel{
		ID:        uuid.New(),
		Name:      "Ada Lovelace",
		Email:     fmt.Sprintf("member-%s@example.com", uuid.New().String()[:8]),
		Plan:      plan,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, db.Create(&model).Error, "failed to seed member")
	return model.ID
}

// noopMailer satisfies the mailer port without a real SMTP server.
type noopMailer struct{}

func (noopMailer) Send(context.Context, mailer.Message) error { return nil }

// memberRepositoryForTest wires a member repository over the test DB.
func memberRepositoryForTest(db *gorm.DB) memberDomain.Repository {
	return repository.NewMemberRepository(db)
}

// newWebhookStack wires the verifier and services the webhook flow needs.
func newWebhookStack(db *gorm.DB, secret string) (*application.WebhookService, *webhook.Verifier) {
	logger := zap.NewNop()
	verifier := webhook.NewVerifier(secret)
	bookings := application.NewBookingService(repository.NewBookingRepository(db), noopMailer{}, "", logger)
	return application.NewWebhookService(verifier, bookings, logger), verifier
}
