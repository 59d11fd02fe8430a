// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

Field names follow the web client (camelCase), and timestamps are
milliseconds since the Unix epoch.

# Request Types

  - IssueCredentialRequest: region (optional)
  - ProveRequest: token, option, pollId (ignored)
  - VoteRequest: proof, nullifier, option, pollId (optional)

# Response Types

  - CredentialResponse: token, region, issuedAt
  - PollResponse: id, endsAt, endsIn
  - VoteResponse: ok
  - PingResponse: message
  - ErrorResponse: error, message

Proofs and results are written directly from zk.Proof and zk.Results.
*/
package models
