// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Request types

type IssueCredentialRequest struct {
	Region string `json:"region"`
}

// PollID is accepted for compatibility with older clients; proofs do not depend on it.
type ProveRequest struct {
	Token  string `json:"token"`
	Option string `json:"option"`
	PollID string `json:"pollId"`
}

type VoteRequest struct {
	Proof     string `json:"proof"`
	Nullifier string `json:"nullifier"`
	Option    string `json:"option"`
	PollID    string `json:"pollId"`
}

// Response types

// Timestamps are milliseconds since the Unix epoch.
type CredentialResponse struct {
	Token    string `json:"token"`
	Region   string `json:"region"`
	IssuedAt int64  `json:"issuedAt"`
}

type PollResponse struct {
	ID     string `json:"id"`
	EndsAt int64  `json:"endsAt"`
	EndsIn string `json:"endsIn,omitempty"` // humanized, e.g. "4 days from now"
}

type VoteResponse struct {
	OK bool `json:"ok"`
}

type PingResponse struct {
	Message string `json:"message"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
