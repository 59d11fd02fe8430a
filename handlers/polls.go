// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/zkvote/cliparse"
	"github.com/danielhkuo/zkvote/middleware"
	"github.com/danielhkuo/zkvote/models"
	"github.com/danielhkuo/zkvote/zk"
	"github.com/dustin/go-humanize"
)

type PollHandler struct {
	svc *zk.Service
	cfg cliparse.Config
}

func NewPollHandler(svc *zk.Service, cfg cliparse.Config) *PollHandler {
	return &PollHandler{svc: svc, cfg: cfg}
}

func pollResponse(p zk.Poll) models.PollResponse {
	return models.PollResponse{
		ID:     p.ID,
		EndsAt: p.EndsAt.UnixMilli(),
		EndsIn: humanize.Time(p.EndsAt),
	}
}

// GetPoll handles GET /poll
// Reading the current poll rolls it over once its deadline has passed.
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	poll := h.svc.CurrentPoll(r.Context())
	middleware.JSONResponse(w, http.StatusOK, pollResponse(poll))
}

// ListPolls handles GET /polls
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	polls := h.svc.Polls()

	resp := make([]models.PollResponse, 0, len(polls))
	for _, p := range polls {
		resp = append(resp, pollResponse(p))
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}
