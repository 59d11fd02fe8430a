// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the ZKVote API server.

ZKVote runs a rolling global poll in which voters hold anonymous
credentials. A vote carries a proof and a nullifier instead of the
credential, so the server can reject double votes without learning
who voted for what. The proof scheme is a hash-based stand-in for a
real zero-knowledge circuit.

# Starting the Server

No configuration is required; state is kept in memory:

	go run .

To persist state across restarts, point it at a database:

	go run . -d "file:zkvote.db"
	go run . -t postgres -d "postgres://..."

A .env file in the working directory is loaded before flags are parsed.

# Configuration

  - PORT (-p): Server port (default: 3318)
  - DATABASE_URL (-d): Journal database; empty keeps state in memory
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - ADMIN_KEY_SALT (-admin-salt): Secret for the reset key; empty disables reset
  - POLL_DURATION (-poll-duration): Poll length (default: 120h)
  - PING_MESSAGE (-ping): Body of GET /ping (default: "ping")

# Architecture

  - zk: Credentials, proofs, polls and tallies
  - handlers: HTTP request handlers (credential, prove, vote, results, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, request ids, JSON helpers
  - models: Request/response types
  - auth: Token generation and admin key validation
  - db: Schema and the write-behind journal
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
