// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the ZKVote API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(svc, cfg)

# Endpoints

Every API route is served twice, under /api and bare:

	GET  /poll        - Current poll (rolls over after its deadline)
	GET  /polls       - Every retained poll, newest first
	POST /credential  - Issue an anonymous credential
	POST /prove       - Derive proof and nullifier for an option
	POST /vote        - Submit a proof
	GET  /results     - Tallies, ?pollId= selects a poll
	POST /admin/reset - Clear all state (requires X-Admin-Key)
	GET  /ping        - Liveness message from PING_MESSAGE

Health and root are only served bare:

	GET /health
	GET /

All handlers share the same *zk.Service and configuration.
*/
package router
