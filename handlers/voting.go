// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"cmp"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/zkvote/cliparse"
	"github.com/danielhkuo/zkvote/middleware"
	"github.com/danielhkuo/zkvote/models"
	"github.com/danielhkuo/zkvote/zk"
)

type VotingHandler struct {
	svc *zk.Service
	cfg cliparse.Config
}

func NewVotingHandler(svc *zk.Service, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{svc: svc, cfg: cfg}
}

// IssueCredential handles POST /credential
// The body is optional; without a region one is picked at random.
func (h *VotingHandler) IssueCredential(w http.ResponseWriter, r *http.Request) {
	var req models.IssueCredentialRequest
	if err := middleware.ParseOptionalJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var region zk.Region
	if req.Region != "" {
		var err error
		region, err = zk.ParseRegion(req.Region)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "region must be one of: NA, SA, EU, AF, AS, OC")
			return
		}
	}

	cred := h.svc.IssueCredential(r.Context(), region)

	slog.Info("credential issued", "region", cred.Region, "request_id", middleware.RequestID(r.Context()))

	middleware.JSONResponse(w, http.StatusCreated, models.CredentialResponse{
		Token:    cred.Token,
		Region:   string(cred.Region),
		IssuedAt: cred.IssuedAt.UnixMilli(),
	})
}

// Prove handles POST /prove
func (h *VotingHandler) Prove(w http.ResponseWriter, r *http.Request) {
	var req models.ProveRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Token == "" || req.Option == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "token and option are required")
		return
	}

	proof, err := h.svc.GenerateProof(req.Token, zk.Option(req.Option))
	if err != nil {
		serviceError(w, r, err, "Proof generation failed")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, proof)
}

// Vote handles POST /vote
// An option outside the ballot is not rejected up front: it cannot match
// any proof, so verification reports it as an invalid proof.
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Proof == "" || req.Nullifier == "" || req.Option == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "proof, nullifier, option are required")
		return
	}

	proof := zk.Proof{
		Proof:     req.Proof,
		Nullifier: req.Nullifier,
		Option:    zk.Option(req.Option),
	}
	poll, err := h.svc.VerifyAndRecord(r.Context(), proof, req.PollID)
	if err != nil {
		slog.Info("vote rejected",
			"reason", err,
			"poll_id", cmp.Or(poll.ID, req.PollID),
			"request_id", middleware.RequestID(r.Context()),
		)
		serviceError(w, r, err, "Vote failed")
		return
	}

	// The request log carries the client address under the same request id,
	// so nothing identifying the choice is logged here.
	slog.Info("vote recorded",
		"poll_id", poll.ID,
		"request_id", middleware.RequestID(r.Context()),
	)

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{OK: true})
}
