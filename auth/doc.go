// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides token generation and admin key utilities.

# Credential Tokens

Credential tokens are random 32-byte (256-bit) secrets, hex encoded:

	token := auth.GenerateCredentialToken()

The token is the only secret a voter holds. Its nullifier is derived from
it, so it must be unpredictable.

# Random Hex

Short random suffixes, such as the tail of a poll id:

	suffix := auth.RandomHex(3) // 6 hex characters

# Admin Keys

Admin keys use HMAC-SHA256 over a scope name:

	adminKey := auth.GenerateAdminKey("reset", salt)
	err := auth.ValidateAdminKey("reset", adminKey, salt)

Keys are deterministic, so nothing is stored. An empty salt disables admin
operations and ValidateAdminKey returns ErrAdminDisabled.

# IP Hashing

For logging without recording addresses:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
