package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, databaseType string) error {
	ddl := schemaSQLite
	if databaseType == "postgres" {
		ddl = schemaPostgres
	}

	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Config columns stay TEXT on purpose: the create payload is stored as
// received and parsed at slot-generation time.
const schemaSQLite = `
-- Events
CREATE TABLE IF NOT EXISTS event (
    id TEXT PRIMARY KEY,
    start_date TEXT NOT NULL,
    end_date TEXT NOT NULL,
    duration TEXT NOT NULL,
    weekday_start TEXT NOT NULL,
    weekday_end TEXT NOT NULL,
    holiday_start TEXT NOT NULL,
    holiday_end TEXT NOT NULL,
    exclude_enabled INTEGER NOT NULL DEFAULT 0,
    exclude_start TEXT NOT NULL DEFAULT '',
    exclude_end TEXT NOT NULL DEFAULT '',
    notify_user_id TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Responses (append-only; seq preserves submission order)
CREATE TABLE IF NOT EXISTS response (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    event_id TEXT NOT NULL REFERENCES event(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    answers TEXT NOT NULL,
    submitted_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_response_event_id ON response(event_id);
`

const schemaPostgres = `
-- Events
CREATE TABLE IF NOT EXISTS event (
    id TEXT PRIMARY KEY,
    start_date TEXT NOT NULL,
    end_date TEXT NOT NULL,
    duration TEXT NOT NULL,
    weekday_start TEXT NOT NULL,
    weekday_end TEXT NOT NULL,
    holiday_start TEXT NOT NULL,
    holiday_end TEXT NOT NULL,
    exclude_enabled BOOLEAN NOT NULL DEFAULT FALSE,
    exclude_start TEXT NOT NULL DEFAULT '',
    exclude_end TEXT NOT NULL DEFAULT '',
    notify_user_id TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

-- Responses (append-only; seq preserves submission order)
CREATE TABLE IF NOT EXISTS response (
    seq BIGSERIAL PRIMARY KEY,
    event_id TEXT NOT NULL REFERENCES event(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    answers TEXT NOT NULL,
    submitted_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_response_event_id ON response(event_id);
`
