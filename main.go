package main

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/zkvote/cliparse"
	"github.com/danielhkuo/zkvote/db"
	"github.com/danielhkuo/zkvote/middleware"
	"github.com/danielhkuo/zkvote/router"
	"github.com/danielhkuo/zkvote/zk"
)

func main() {
	var err error

	// .env is optional; real environment variables win
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	svcCfg := zk.Config{PollDuration: cfg.PollDuration}

	// Without DATABASE_URL state lives in memory only
	var journal *db.Journal
	if cfg.DatabaseURL != "" {
		dbConn, err := sql.Open(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		defer dbConn.Close()

		// Verify connection
		if err := dbConn.Ping(); err != nil {
			slog.Error("database ping failed", "error", err)
			os.Exit(1)
		}

		// Create schema (tables)
		if err := db.CreateSchema(dbConn); err != nil {
			slog.Error("schema creation failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Database schema ready", "type", cfg.DatabaseType)

		journal = db.NewJournal(dbConn)
		svcCfg.Journal = journal
	} else {
		slog.Warn("DATABASE_URL not set, state will not survive a restart")
	}

	svc := zk.NewService(svcCfg)

	if journal != nil {
		state, err := journal.Load(context.Background())
		if err != nil {
			slog.Error("failed to load journal", "error", err)
			os.Exit(1)
		}
		if err := svc.Restore(state); err != nil {
			slog.Warn("journal restored with conflicts", "error", err)
		}
		slog.Info("State restored",
			"credentials", len(state.Credentials),
			"polls", len(state.Polls),
			"votes", len(state.Votes),
		)
	}

	// Create router
	mux := router.NewRouter(svc, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "poll_duration", cfg.PollDuration)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
