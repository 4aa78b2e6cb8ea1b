package database

import "fmt"

// migrations is the bootstrap DDL for all resource tables. Statements are
// idempotent so they can run on every startup.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS guests (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT,
		email TEXT,
		total_visits INTEGER NOT NULL DEFAULT 0,
		total_spend NUMERIC(12,2) NOT NULL DEFAULT 0,
		preferences TEXT,
		vip_status BOOLEAN NOT NULL DEFAULT FALSE,
		last_visit TEXT,
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS reservations (
		id TEXT PRIMARY KEY,
		guest_id TEXT NOT NULL,
		guest_name TEXT NOT NULL,
		service_date TEXT NOT NULL,
		time TEXT NOT NULL,
		party_size INTEGER NOT NULL,
		notes TEXT,
		status TEXT NOT NULL DEFAULT 'confirmed',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reservations_date_status
		ON reservations (service_date, status)`,
	`CREATE TABLE IF NOT EXISTS staff (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		position TEXT NOT NULL,
		hourly_rate NUMERIC(10,2) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS staff_schedules (
		id TEXT PRIMARY KEY,
		staff_id TEXT NOT NULL,
		staff_name TEXT NOT NULL,
		position TEXT NOT NULL,
		service_date TEXT NOT NULL,
		shift_start TEXT NOT NULL,
		shift_end TEXT NOT NULL,
		scheduled_hours NUMERIC(6,2) NOT NULL,
		hourly_rate NUMERIC(10,2) NOT NULL,
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_staff_schedules_date
		ON staff_schedules (service_date)`,
	`CREATE TABLE IF NOT EXISTS service_configs (
		id TEXT PRIMARY KEY,
		service_date TEXT NOT NULL UNIQUE,
		expected_walk_in_min INTEGER NOT NULL DEFAULT 0,
		expected_walk_in_max INTEGER NOT NULL DEFAULT 0,
		peak_time_start TEXT,
		peak_time_end TEXT,
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// RunMigrations applies the bootstrap schema
func RunMigrations(db DB) error {
	for _, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}
