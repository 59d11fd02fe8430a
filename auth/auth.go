// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
)

var (
	ErrInvalidAdminKey = errors.New("invalid admin key")
	ErrAdminDisabled   = errors.New("admin operations disabled")
)

// CredentialTokenBytes is the entropy of a credential token (256 bits).
const CredentialTokenBytes = 32

// RandomHex returns byteLen cryptographically random bytes, hex encoded.
// crypto/rand.Read does not fail on supported platforms.
func RandomHex(byteLen int) string {
	b := make([]byte, byteLen)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// GenerateCredentialToken creates the secret behind an anonymous credential.
// Anyone able to predict it could derive its nullifier offline.
func GenerateCredentialToken() string {
	return RandomHex(CredentialTokenBytes)
}

// GenerateAdminKey creates an HMAC-based admin key for a scope such as "reset".
// This is deterministic and verifiable
func GenerateAdminKey(scope, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(scope))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner keys
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateAdminKey checks adminKey against scope. An empty salt disables
// admin operations entirely.
func ValidateAdminKey(scope, adminKey, salt string) error {
	if salt == "" {
		return ErrAdminDisabled
	}
	expected := GenerateAdminKey(scope, salt)
	if !hmac.Equal([]byte(adminKey), []byte(expected)) {
		return ErrInvalidAdminKey
	}
	return nil
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// Return first 16 hex chars (64 bits) - enough for log correlation
	return hex.EncodeToString(sum[:8])
}
