// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the vote journal.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Times are stored as Unix milliseconds so sqlite and postgres agree.
const schema = `
-- Credentials
CREATE TABLE IF NOT EXISTS credential (
    token TEXT PRIMARY KEY,
    region TEXT NOT NULL CHECK (region IN ('NA', 'SA', 'EU', 'AF', 'AS', 'OC')),
    issued_at_ms BIGINT NOT NULL
);

-- Polls
CREATE TABLE IF NOT EXISTS poll (
    id TEXT PRIMARY KEY,
    ends_at_ms BIGINT NOT NULL
);

-- Votes (one per nullifier per poll)
CREATE TABLE IF NOT EXISTS vote (
    poll_id TEXT NOT NULL REFERENCES poll(id) ON DELETE CASCADE,
    nullifier TEXT NOT NULL,
    option TEXT NOT NULL CHECK (option IN ('climate', 'health', 'space', 'ai', 'freedom')),
    region TEXT NOT NULL CHECK (region IN ('NA', 'SA', 'EU', 'AF', 'AS', 'OC')),
    PRIMARY KEY (poll_id, nullifier)
);

CREATE INDEX IF NOT EXISTS idx_vote_poll_id ON vote(poll_id);
`
