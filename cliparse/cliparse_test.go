// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
	"time"
)

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != DefaultPort {
		t.Errorf("expected port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.DatabaseURL != "" {
		t.Errorf("expected no database URL, got %q", cfg.DatabaseURL)
	}
	if cfg.DatabaseType != DatabaseSQLite {
		t.Errorf("expected sqlite, got %q", cfg.DatabaseType)
	}
	if cfg.PollDuration != 120*time.Hour {
		t.Errorf("expected 5 day polls, got %s", cfg.PollDuration)
	}
	if cfg.PingMessage != "ping" {
		t.Errorf("expected ping message 'ping', got %q", cfg.PingMessage)
	}
	if cfg.AdminKeySalt != "" {
		t.Errorf("expected empty admin salt, got %q", cfg.AdminKeySalt)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	// Set env vars
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "postgres://test")
	os.Setenv("DATABASE_TYPE", "postgres")
	os.Setenv("ADMIN_KEY_SALT", "test-salt")
	os.Setenv("POLL_DURATION", "90m")
	os.Setenv("PING_MESSAGE", "pong")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabasePostgres {
		t.Errorf("expected postgres, got %q", cfg.DatabaseType)
	}
	if cfg.AdminKeySalt != "test-salt" {
		t.Errorf("expected admin salt from env, got %q", cfg.AdminKeySalt)
	}
	if cfg.PollDuration != 90*time.Minute {
		t.Errorf("expected 90m, got %s", cfg.PollDuration)
	}
	if cfg.PingMessage != "pong" {
		t.Errorf("expected pong, got %q", cfg.PingMessage)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("POLL_DURATION", "1h")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-admin-salt", "s1", "-poll-duration", "2h"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.PollDuration != 2*time.Hour {
		t.Errorf("CLI should override env: expected 2h, got %s", cfg.PollDuration)
	}
	if cfg.DatabaseURL != "file:test.db" {
		t.Errorf("expected file:test.db, got %q", cfg.DatabaseURL)
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"bad port env", map[string]string{"PORT": "abc"}, nil},
		{"port out of range", nil, []string{"-p", "70000"}},
		{"bad duration env", map[string]string{"POLL_DURATION": "soon"}, nil},
		{"negative duration", nil, []string{"-poll-duration", "-1h"}},
		{"unknown database type", nil, []string{"-t", "mysql"}},
		{"unknown flag", nil, []string{"-x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for k, v := range tt.env {
				os.Setenv(k, v)
			}
			defer os.Clearenv()

			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
