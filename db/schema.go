// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The DDL is kept portable between SQLite and PostgreSQL.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Sessions
CREATE TABLE IF NOT EXISTS session (
    id TEXT PRIMARY KEY,
    code TEXT NOT NULL UNIQUE,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_session_code ON session(code);

-- Vote tallies: one row per (session, movie) pair
CREATE TABLE IF NOT EXISTS vote (
    session_id TEXT NOT NULL REFERENCES session(id) ON DELETE CASCADE,
    movie_id INTEGER NOT NULL,
    votes INTEGER NOT NULL CHECK (votes >= 1),
    PRIMARY KEY (session_id, movie_id)
);

CREATE INDEX IF NOT EXISTS idx_vote_session_id ON vote(session_id);
`
