// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/zkvote/middleware"
	"github.com/danielhkuo/zkvote/zk"
)

// serviceError translates a core error into an HTTP error response.
// Anything unrecognized is logged and reported as fallback with a 500.
func serviceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch {
	case errors.Is(err, zk.ErrAlreadyVoted):
		middleware.ErrorResponse(w, http.StatusConflict, "Nullifier already used")
	case errors.Is(err, zk.ErrVerificationFailed):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, zk.ErrUnknownPoll):
		middleware.ErrorResponse(w, http.StatusNotFound, "Unknown poll")
	case errors.Is(err, zk.ErrUnknownCredential):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Unknown credential")
	case errors.Is(err, zk.ErrInvalidOption):
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid option")
	case errors.Is(err, zk.ErrNoCredentialForNullifier):
		middleware.ErrorResponse(w, http.StatusBadRequest, "No credential for nullifier")
	default:
		slog.Error(fallback, "error", err, "request_id", middleware.RequestID(r.Context()))
		middleware.ErrorResponse(w, http.StatusInternalServerError, fallback)
	}
}
