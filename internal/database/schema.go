package database

import "fmt"

// bookingsSchema is the full DDL for the bookings table. Every statement is
// idempotent, so EnsureSchema is safe to run on every startup and from
// concurrent processes pointed at the same database.
const bookingsSchema = `
	CREATE TABLE IF NOT EXISTS bookings (
		id             BIGSERIAL PRIMARY KEY,
		pnr            TEXT NOT NULL UNIQUE,
		bus_name       TEXT NOT NULL,
		from_location  TEXT NOT NULL,
		to_location    TEXT NOT NULL,
		journey_date   TEXT NOT NULL,
		departure_time TEXT NOT NULL,
		arrival_time   TEXT NOT NULL,
		adults         INTEGER NOT NULL DEFAULT 1,
		children       INTEGER NOT NULL DEFAULT 0,
		passenger_name TEXT NOT NULL,
		gender         TEXT NOT NULL,
		age            INTEGER NOT NULL,
		email          TEXT NOT NULL,
		mobile         TEXT NOT NULL,
		status         TEXT NOT NULL DEFAULT 'confirmed',
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

// EnsureSchema creates the bookings table if it does not exist yet.
// Called once from main before the server starts accepting requests.
func EnsureSchema(db DB) error {
	if _, err := db.Exec(bookingsSchema); err != nil {
		return fmt.Errorf("failed to ensure bookings schema: %w", err)
	}
	return nil
}
