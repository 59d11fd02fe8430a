// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package zk implements the vote-integrity core of ZKVote.

The "zero knowledge" here is a mock: a proof is a deterministic hash binding a
secret credential token to a chosen option, and a nullifier is a hash of the
token alone. The package reproduces the verification and anti-replay rules of
that scheme; it does not provide cryptographic soundness.

# Components

  - CredentialStore: issued credentials keyed by token, with a nullifier index
  - ProofEngine: nullifier derivation, proof generation and verification
  - PollRegistry: the current poll and its rollover by deadline
  - TallyLedger: per-poll nullifier sets and counters
  - Service: the operations exposed to callers

# Flow

	svc := zk.NewService(zk.Config{PollDuration: 120 * time.Hour})

	cred := svc.IssueCredential(ctx, zk.RegionEU)
	proof, err := svc.GenerateProof(cred.Token, zk.OptionAI)
	poll, err := svc.VerifyAndRecord(ctx, proof, "")   // "" means the current poll
	results, err := svc.Results(ctx, poll.ID)

# Hashes

	nullifier = hex(sha256(token))
	proof     = hex(sha512(token + ":" + option + ":" + nullifier))

A verifier holding only (nullifier, option, proof) finds the credential whose
token hashes to the nullifier and recomputes the proof. A captured proof
therefore cannot be replayed for a different option, and a nullifier can be
counted at most once per poll.

# Errors

Callers branch with errors.Is:

	ErrUnknownCredential        token was never issued
	ErrNullifierNotRecognized   verification failed: no credential for nullifier
	ErrInvalidProof             verification failed: proof does not match
	ErrUnknownPoll              poll id was never created
	ErrAlreadyVoted             nullifier already counted in this poll
	ErrInvalidOption            option outside the ballot

Both verification failures also match ErrVerificationFailed.

# Persistence

State lives in memory. A Journal, when configured, receives every credential,
poll and vote after it is applied, and Restore rebuilds the service from a
previously journaled State.
*/
package zk
