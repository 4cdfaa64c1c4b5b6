package repository

import (
	"context"

	"gorm.io/gorm"
)

// provisionStatements are the idempotent DDL statements behind the
// table-provisioning endpoint. Column shapes match the GORM models above;
// repeat execution is a no-op.
var provisionStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,

	`CREATE TABLE IF NOT EXISTS bookings (
		id uuid PRIMARY KEY DEFAULT uuid_generate_v4(),
		name text NOT NULL,
		email text NOT NULL,
		phone text NOT NULL,
		date timestamptz NOT NULL DEFAULT now(),
		created_at timestamptz NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS contacts (
		id uuid PRIMARY KEY DEFAULT uuid_generate_v4(),
		name text NOT NULL,
		email text NOT NULL,
		message text NOT NULL,
		created_at timestamptz NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS free_trials (
		id uuid PRIMARY KEY DEFAULT uuid_generate_v4(),
		name text NOT NULL,
		email text NOT NULL UNIQUE,
		phone text NOT NULL,
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS members (
		id uuid PRIMARY KEY DEFAULT uuid_generate_v4(),
		name text NOT NULL,
		email text NOT NULL,
		plan text NOT NULL DEFAULT 'Basic',
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now()
	)`,
}

// SchemaProvisioner bootstraps the database schema over HTTP. This is
// infrastructure setup, not runtime logic; it is safe to invoke repeatedly.
type SchemaProvisioner struct {
	db *gorm.DB
}

// NewSchemaProvisioner creates a new SchemaProvisioner.
func NewSchemaProvisioner(db *gorm.DB) *SchemaProvisioner {
	return &SchemaProvisioner{db: db}
}

// EnsureTables issues create-if-not-exists DDL for every persisted entity
// table.
func (p *SchemaProvisioner) EnsureTables(ctx context.Context) error {
	for _, stmt := range provisionStatements {
		if err := p.db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
