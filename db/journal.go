// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/danielhkuo/zkvote/zk"
)

// Journal persists credentials, polls and votes. It implements zk.Journal.
type Journal struct {
	db *sql.DB
}

var _ zk.Journal = (*Journal)(nil)

func NewJournal(db *sql.DB) *Journal {
	return &Journal{db: db}
}

func (j *Journal) SaveCredential(ctx context.Context, cred zk.Credential) error {
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO credential (token, region, issued_at_ms)
		VALUES ($1, $2, $3)
		ON CONFLICT (token) DO NOTHING
	`, cred.Token, string(cred.Region), cred.IssuedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to save credential: %w", err)
	}
	return nil
}

func (j *Journal) SavePoll(ctx context.Context, poll zk.Poll) error {
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO poll (id, ends_at_ms)
		VALUES ($1, $2)
		ON CONFLICT (id) DO NOTHING
	`, poll.ID, poll.EndsAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to save poll: %w", err)
	}
	return nil
}

func (j *Journal) SaveVote(ctx context.Context, vote zk.Vote) error {
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO vote (poll_id, nullifier, option, region)
		VALUES ($1, $2, $3, $4)
	`, vote.PollID, vote.Nullifier, string(vote.Option), string(vote.Region))
	if err != nil {
		return fmt.Errorf("failed to save vote: %w", err)
	}
	return nil
}

// Reset deletes every journaled row.
func (j *Journal) Reset(ctx context.Context) error {
	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"vote", "poll", "credential"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return tx.Commit()
}

// Load reads the whole journal for zk.Service.Restore.
func (j *Journal) Load(ctx context.Context) (zk.State, error) {
	var st zk.State

	rows, err := j.db.QueryContext(ctx, `
		SELECT token, region, issued_at_ms FROM credential ORDER BY issued_at_ms
	`)
	if err != nil {
		return zk.State{}, fmt.Errorf("failed to query credentials: %w", err)
	}
	for rows.Next() {
		var cred zk.Credential
		var region string
		var issuedAt int64
		if err := rows.Scan(&cred.Token, &region, &issuedAt); err != nil {
			rows.Close()
			return zk.State{}, fmt.Errorf("failed to scan credential: %w", err)
		}
		cred.Region = zk.Region(region)
		cred.IssuedAt = time.UnixMilli(issuedAt)
		st.Credentials = append(st.Credentials, cred)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return zk.State{}, fmt.Errorf("failed to read credentials: %w", err)
	}

	rows, err = j.db.QueryContext(ctx, `
		SELECT id, ends_at_ms FROM poll ORDER BY ends_at_ms
	`)
	if err != nil {
		return zk.State{}, fmt.Errorf("failed to query polls: %w", err)
	}
	for rows.Next() {
		var p zk.Poll
		var endsAt int64
		if err := rows.Scan(&p.ID, &endsAt); err != nil {
			rows.Close()
			return zk.State{}, fmt.Errorf("failed to scan poll: %w", err)
		}
		p.EndsAt = time.UnixMilli(endsAt)
		st.Polls = append(st.Polls, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return zk.State{}, fmt.Errorf("failed to read polls: %w", err)
	}

	rows, err = j.db.QueryContext(ctx, `
		SELECT poll_id, nullifier, option, region FROM vote
	`)
	if err != nil {
		return zk.State{}, fmt.Errorf("failed to query votes: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var v zk.Vote
		var option, region string
		if err := rows.Scan(&v.PollID, &v.Nullifier, &option, &region); err != nil {
			return zk.State{}, fmt.Errorf("failed to scan vote: %w", err)
		}
		v.Option = zk.Option(option)
		v.Region = zk.Region(region)
		st.Votes = append(st.Votes, v)
	}
	if err := rows.Err(); err != nil {
		return zk.State{}, fmt.Errorf("failed to read votes: %w", err)
	}

	return st, nil
}
