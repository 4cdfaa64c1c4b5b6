package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DatabaseConfig holds Postgres connection settings.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN returns the GORM/pgx connection string.
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// SMTPConfig holds email transport settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	// NotifyEmail is the operational inbox that receives form
	// notifications (free-trial leads, contact messages).
	NotifyEmail string
}

// PaystackConfig holds payment-gateway settings. SecretKey doubles as the
// webhook HMAC key, matching Paystack's signing scheme.
type PaystackConfig struct {
	SecretKey string
	BaseURL   string
}

// ServiceConfig holds all configuration for the gym service.
type ServiceConfig struct {
	Port           string
	AppEnv         string
	DBConfig       DatabaseConfig
	SMTPConfig     SMTPConfig
	PaystackConfig PaystackConfig
	JWTSecret      string
	AllowedOrigins []string
}

// Load reads configuration from environment variables, with a local .env
// file honored for development. Only PAYSTACK_SECRET_KEY and the database
// settings are required at startup; email sends fail at call time if SMTP
// is unconfigured.
func Load() (*ServiceConfig, error) {
	// Missing .env is fine outside development.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "3000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("EMAIL_FROM_NAME", "CallyGym")
	v.SetDefault("PAYSTACK_BASE_URL", "https://api.paystack.co")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")

	if v.GetString("DB_NAME") == "" {
		return nil, fmt.Errorf("DB_NAME is required")
	}

	cfg := &ServiceConfig{
		Port:   ":" + strings.TrimPrefix(v.GetString("PORT"), ":"),
		AppEnv: v.GetString("APP_ENV"),
		DBConfig: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		SMTPConfig: SMTPConfig{
			Host:        v.GetString("SMTP_HOST"),
			Port:        v.GetInt("SMTP_PORT"),
			Username:    v.GetString("SMTP_USERNAME"),
			Password:    v.GetString("SMTP_PASSWORD"),
			From:        v.GetString("EMAIL_FROM"),
			FromName:    v.GetString("EMAIL_FROM_NAME"),
			NotifyEmail: v.GetString("NOTIFY_EMAIL"),
		},
		PaystackConfig: PaystackConfig{
			SecretKey: v.GetString("PAYSTACK_SECRET_KEY"),
			BaseURL:   v.GetString("PAYSTACK_BASE_URL"),
		},
		JWTSecret:      v.GetString("JWT_SECRET"),
		AllowedOrigins: splitOrigins(v.GetString("CORS_ALLOWED_ORIGINS")),
	}

	return cfg, nil
}

// splitOrigins parses the comma-separated origin allow-list. A wildcard
// entry is rejected here rather than passed through: wildcard origins with
// credentials enabled is an unsafe combination.
func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || p == "*" {
			continue
		}
		origins = append(origins, p)
	}
	return origins
}
