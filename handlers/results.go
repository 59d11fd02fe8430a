// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/zkvote/cliparse"
	"github.com/danielhkuo/zkvote/middleware"
	"github.com/danielhkuo/zkvote/zk"
)

type ResultsHandler struct {
	svc *zk.Service
	cfg cliparse.Config
}

func NewResultsHandler(svc *zk.Service, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{svc: svc, cfg: cfg}
}

// GetResults handles GET /results?pollId=
// Without pollId the current poll is reported. Every option and region
// appears in the response, zero counts included.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	pollID := r.URL.Query().Get("pollId")

	results, err := h.svc.Results(r.Context(), pollID)
	if err != nil {
		serviceError(w, r, err, "Failed to load results")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}
