package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Migrate creates the tables if they do not exist. The DDL differs per
// driver only in the id and timestamp column types.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	var serial, timestamp string
	switch db.DriverName() {
	case DriverPostgres:
		serial = "BIGSERIAL PRIMARY KEY"
		timestamp = "TIMESTAMPTZ"
	case DriverSQLite:
		serial = "INTEGER PRIMARY KEY AUTOINCREMENT"
		timestamp = "TIMESTAMP"
	default:
		return fmt.Errorf("unsupported database driver %q", db.DriverName())
	}

	stmts := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS users (
			id %s,
			username TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL CHECK (role IN ('admin','doctor','reception')),
			created_at %s NOT NULL
		)`, serial, timestamp),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS patients (
			id %s,
			name TEXT NOT NULL,
			phone TEXT NOT NULL DEFAULT '',
			dob TEXT NOT NULL DEFAULT '',
			created_at %s NOT NULL
		)`, serial, timestamp),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS appointments (
			id %s,
			patient_id BIGINT NOT NULL REFERENCES patients(id),
			datetime %s NOT NULL,
			reason TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'scheduled',
			created_at %s NOT NULL
		)`, serial, timestamp, timestamp),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS notes (
			id %s,
			patient_id BIGINT NOT NULL REFERENCES patients(id),
			note TEXT NOT NULL,
			created_by TEXT NOT NULL,
			created_at %s NOT NULL
		)`, serial, timestamp),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS invoices (
			id %s,
			patient_id BIGINT NOT NULL REFERENCES patients(id),
			amount DOUBLE PRECISION NOT NULL CHECK (amount >= 0),
			status TEXT NOT NULL CHECK (status IN ('unpaid','paid','partial')),
			description TEXT NOT NULL DEFAULT '',
			created_at %s NOT NULL
		)`, serial, timestamp),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS treatment_plans (
			id %s,
			patient_id BIGINT NOT NULL REFERENCES patients(id),
			diagnosis TEXT NOT NULL,
			plan TEXT NOT NULL,
			estimated_cost DOUBLE PRECISION NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'proposed',
			created_by TEXT NOT NULL,
			created_at %s NOT NULL
		)`, serial, timestamp),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS prescriptions (
			id %s,
			patient_id BIGINT NOT NULL REFERENCES patients(id),
			medication TEXT NOT NULL,
			dosage TEXT NOT NULL,
			frequency TEXT NOT NULL,
			duration TEXT NOT NULL,
			instructions TEXT NOT NULL DEFAULT '',
			prescribed_by TEXT NOT NULL,
			created_at %s NOT NULL
		)`, serial, timestamp),
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
