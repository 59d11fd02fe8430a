// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/zkvote/cliparse"
	"github.com/danielhkuo/zkvote/handlers"
	"github.com/danielhkuo/zkvote/middleware"
	"github.com/danielhkuo/zkvote/models"
	"github.com/danielhkuo/zkvote/zk"
)

// Prefixes every API route is mounted under. The bare form serves
// deployments where a proxy strips /api.
var Prefixes = []string{"/api", ""}

func NewRouter(svc *zk.Service, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	votingHandler := handlers.NewVotingHandler(svc, cfg)
	pollHandler := handlers.NewPollHandler(svc, cfg)
	resultsHandler := handlers.NewResultsHandler(svc, cfg)
	adminHandler := handlers.NewAdminHandler(svc, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	ping := func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, models.PingResponse{Message: cfg.PingMessage})
	}

	for _, p := range Prefixes {
		mux.HandleFunc("GET "+p+"/ping", ping)

		// Polls
		mux.HandleFunc("GET "+p+"/poll", middleware.WithLogging(pollHandler.GetPoll))
		mux.HandleFunc("GET "+p+"/polls", middleware.WithLogging(pollHandler.ListPolls))

		// Credential, proof and vote (public)
		mux.HandleFunc("POST "+p+"/credential", middleware.WithLogging(votingHandler.IssueCredential))
		mux.HandleFunc("POST "+p+"/prove", middleware.WithLogging(votingHandler.Prove))
		mux.HandleFunc("POST "+p+"/vote", middleware.WithLogging(votingHandler.Vote))

		// Results
		mux.HandleFunc("GET "+p+"/results", middleware.WithLogging(resultsHandler.GetResults))

		// Admin (requires X-Admin-Key)
		mux.HandleFunc("POST "+p+"/admin/reset", middleware.WithLogging(adminHandler.Reset))
	}

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("zkvote API v1"))
	})

	return mux
}
