// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"

	DefaultPort         = 3318
	DefaultPollDuration = 5 * 24 * time.Hour
	DefaultPingMessage  = "ping"
)

type Config struct {
	Port         int
	DatabaseURL  string // empty keeps all state in memory
	DatabaseType string
	AdminKeySalt string // empty disables POST /admin/reset
	PollDuration time.Duration
	PingMessage  string
}

// ParseFlags validates flags and falls back to environment variables
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("zkvote", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL for the vote journal (empty: memory only)")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKeySalt, "admin-salt", "", "Admin key salt (prefer env)")

	fs.DurationVar(&cfg.PollDuration, "poll-duration", 0, "Lifetime of each poll")
	fs.StringVar(&cfg.PingMessage, "ping", "", "Message returned by /api/ping")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid port %d: must be in range 1..65535", cfg.Port)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, fmt.Errorf("invalid database type %q: must be %q or %q", cfg.DatabaseType, DatabaseSQLite, DatabasePostgres)
	}

	if cfg.AdminKeySalt == "" {
		cfg.AdminKeySalt = os.Getenv("ADMIN_KEY_SALT")
	}

	if cfg.PollDuration == 0 {
		if d := os.Getenv("POLL_DURATION"); d != "" {
			parsed, err := time.ParseDuration(d)
			if err != nil {
				return Config{}, fmt.Errorf("invalid POLL_DURATION env variable: %w", err)
			}
			cfg.PollDuration = parsed
		} else {
			cfg.PollDuration = DefaultPollDuration
		}
	}
	if cfg.PollDuration <= 0 {
		return Config{}, errors.New("poll duration must be positive")
	}

	if cfg.PingMessage == "" {
		cfg.PingMessage = os.Getenv("PING_MESSAGE")
		if cfg.PingMessage == "" {
			cfg.PingMessage = DefaultPingMessage
		}
	}

	return cfg, nil
}
