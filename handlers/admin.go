// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/zkvote/auth"
	"github.com/danielhkuo/zkvote/cliparse"
	"github.com/danielhkuo/zkvote/middleware"
	"github.com/danielhkuo/zkvote/zk"
)

// ResetScope is the admin key scope accepted by Reset.
const ResetScope = "reset"

type AdminHandler struct {
	svc *zk.Service
	cfg cliparse.Config
}

func NewAdminHandler(svc *zk.Service, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{svc: svc, cfg: cfg}
}

// Reset handles POST /admin/reset
// Requires X-Admin-Key. Without an admin salt configured the route does not exist.
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	err := auth.ValidateAdminKey(ResetScope, r.Header.Get("X-Admin-Key"), h.cfg.AdminKeySalt)
	if errors.Is(err, auth.ErrAdminDisabled) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Admin operations are disabled")
		return
	}
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	h.svc.Reset(r.Context())

	slog.Warn("state reset",
		"ip_hash", auth.HashIP(middleware.GetClientIP(r), h.cfg.AdminKeySalt),
		"request_id", middleware.RequestID(r.Context()),
	)

	w.WriteHeader(http.StatusNoContent)
}
