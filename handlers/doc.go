// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the ZKVote API.

# Handler Types

Each handler is a struct over the shared *zk.Service and the Config:

  - VotingHandler: Credential issuance, proof generation and vote submission
  - PollHandler: Current poll and poll history
  - ResultsHandler: Tallies for a poll
  - AdminHandler: Full state reset

Handlers are created via constructor functions:

	votingHandler := handlers.NewVotingHandler(svc, cfg)

# Voting Flow

A voter never sends its credential token alongside a vote:

	POST /credential → IssueCredential (returns token and region)
	POST /prove      → Prove (returns proof, nullifier, option)
	POST /vote       → Vote (records the proof in the current poll)

The nullifier is stable per credential, so a second vote from the same
credential in the same poll is rejected with 409 Conflict.

# Errors

Core errors map onto status codes in errors.go:

	ErrAlreadyVoted         → 409
	ErrVerificationFailed   → 400 (message carries the reason)
	ErrUnknownPoll          → 404
	ErrUnknownCredential    → 400
	ErrInvalidOption        → 400

# Admin

POST /admin/reset requires an X-Admin-Key header derived from the
configured salt with scope "reset". With no salt the route answers 404.
*/
package handlers
