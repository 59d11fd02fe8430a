// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package zk

import "errors"

var (
	ErrUnknownCredential        = errors.New("unknown credential")
	ErrUnknownPoll              = errors.New("unknown poll")
	ErrAlreadyVoted             = errors.New("nullifier already used")
	ErrNoCredentialForNullifier = errors.New("no credential for nullifier")
	ErrInvalidOption            = errors.New("invalid option")
	ErrInvalidRegion            = errors.New("invalid region")

	// ErrVerificationFailed matches every proof verification failure.
	ErrVerificationFailed = errors.New("verification failed")

	ErrNullifierNotRecognized = &VerificationError{Reason: "Nullifier not recognized"}
	ErrInvalidProof           = &VerificationError{Reason: "Invalid proof"}
)

// VerificationError carries the human-readable reason a proof was rejected.
type VerificationError struct {
	Reason string
}

func (e *VerificationError) Error() string {
	return e.Reason
}

func (e *VerificationError) Is(target error) bool {
	return target == ErrVerificationFailed
}
