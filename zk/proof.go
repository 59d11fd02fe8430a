// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package zk

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
)

// NullifierOf derives the nullifier for a token: hex(sha256(token)).
// The same token always yields the same nullifier.
func NullifierOf(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// proofOf computes hex(sha512(token:option:nullifier)).
func proofOf(token string, option Option, nullifier string) string {
	sum := sha512.Sum512([]byte(token + ":" + string(option) + ":" + nullifier))
	return hex.EncodeToString(sum[:])
}

// ProofEngine generates and verifies proofs against issued credentials.
// It keeps no state of its own.
type ProofEngine struct {
	creds *CredentialStore
}

func NewProofEngine(creds *CredentialStore) *ProofEngine {
	return &ProofEngine{creds: creds}
}

// Generate builds the proof that token's holder chose option.
func (e *ProofEngine) Generate(token string, option Option) (Proof, error) {
	if _, ok := e.creds.Lookup(token); !ok {
		return Proof{}, ErrUnknownCredential
	}
	if !option.Valid() {
		return Proof{}, ErrInvalidOption
	}

	nullifier := NullifierOf(token)
	return Proof{
		Proof:     proofOf(token, option, nullifier),
		Nullifier: nullifier,
		Option:    option,
	}, nil
}

// Verify recomputes the expected proof from the credential behind
// p.Nullifier and compares it with p.Proof. On success it returns that
// credential so the caller can use its region.
func (e *ProofEngine) Verify(p Proof) (Credential, error) {
	cred, ok := e.creds.FindByNullifier(p.Nullifier)
	if !ok {
		return Credential{}, ErrNullifierNotRecognized
	}

	expected := proofOf(cred.Token, p.Option, p.Nullifier)
	if !hmac.Equal([]byte(expected), []byte(p.Proof)) {
		return Credential{}, ErrInvalidProof
	}
	return cred, nil
}
