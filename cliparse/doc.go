// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Journal connection string (optional; memory only when empty)
  - DatabaseType: "sqlite" (default) or "postgres"
  - AdminKeySalt: Secret for the reset admin key (optional; reset disabled when empty)
  - PollDuration: Lifetime of each poll (default: 120h)
  - PingMessage: Body of /api/ping (default: "ping")

# CLI Flags

	-p              Server port
	-d              Database URL
	-t              Database type
	--admin-salt    Admin key salt
	--poll-duration Poll lifetime (Go duration, e.g. 72h)
	--ping          Ping message

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	ADMIN_KEY_SALT → --admin-salt
	POLL_DURATION  → --poll-duration
	PING_MESSAGE   → --ping

CLI flags take precedence over environment variables. main loads a .env
file into the environment before ParseFlags runs.

# Validation

ParseFlags returns an error for an unparsable or out-of-range port, an
unparsable or non-positive poll duration, and an unknown database type.
*/
package cliparse
