// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db persists the vote core to SQL.

The core keeps all state in memory; this package is an optional journal so
a restarted server comes back with the same credentials, polls and tallies.
It works with sqlite (modernc.org/sqlite) and postgres (lib/pq).

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - credential: token, region, issued_at_ms
  - poll: id, ends_at_ms
  - vote: poll_id, nullifier, option, region

# Relationships

	poll 1──* vote

Tallies are not stored; they are recomputed from vote rows on restore.
The (poll_id, nullifier) primary key mirrors the one-vote-per-nullifier rule.

# Journal

	journal := db.NewJournal(conn)
	svc := zk.NewService(zk.Config{Journal: journal})

	state, err := journal.Load(ctx)
	err = svc.Restore(state)
*/
package db
