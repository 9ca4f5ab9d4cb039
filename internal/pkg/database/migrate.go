package database

import (
	"context"
	"fmt"
)

// schemaStatements are applied in order at startup. Every statement uses
// IF NOT EXISTS, so a restart never fails on an existing schema.
var schemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`,

	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT,
		full_name TEXT,
		role TEXT NOT NULL DEFAULT 'member' CHECK (role IN ('admin', 'member')),
		oauth_provider TEXT,
		oauth_provider_id TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		token_hash TEXT NOT NULL,
		expires_at TIMESTAMPTZ NOT NULL,
		revoked_at TIMESTAMPTZ,
		user_agent TEXT,
		ip_address TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_refresh_tokens_token_hash ON refresh_tokens(token_hash)`,

	`CREATE TABLE IF NOT EXISTS attendance (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		check_in_time TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		check_out_time TIMESTAMPTZ,
		status TEXT NOT NULL DEFAULT 'present' CHECK (status IN ('present', 'absent', 'late')),
		notes TEXT,
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_user_id ON attendance(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_attendance_check_in_time ON attendance(check_in_time)`,

	`CREATE TABLE IF NOT EXISTS leaves (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		reason TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'approved', 'rejected')),
		admin_note TEXT,
		approved_by UUID REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_leaves_user_id ON leaves(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_leaves_status ON leaves(status)`,
	`CREATE INDEX IF NOT EXISTS idx_leaves_start_date ON leaves(start_date)`,
}

// EnsureSchema creates the required tables and indexes if they do not exist.
func (db *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
