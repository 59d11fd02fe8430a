// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package zk

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/raulk/clock"
)

// Journal persists state changes after the service has applied them.
type Journal interface {
	SaveCredential(ctx context.Context, cred Credential) error
	SavePoll(ctx context.Context, poll Poll) error
	SaveVote(ctx context.Context, vote Vote) error
	Reset(ctx context.Context) error
}

// State is everything a Journal holds, as needed by Restore.
type State struct {
	Credentials []Credential
	Polls       []Poll
	Votes       []Vote
}

type Config struct {
	PollDuration time.Duration
	Clock        clock.Clock // nil means wall clock
	Journal      Journal     // nil means memory only
}

// Service is the vote-integrity core as seen by the HTTP layer.
// mu is held exclusively only by Reset and Restore.
type Service struct {
	mu       sync.RWMutex
	creds    *CredentialStore
	engine   *ProofEngine
	registry *PollRegistry
	ledger   *TallyLedger
	journal  Journal
}

func NewService(cfg Config) *Service {
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	creds := NewCredentialStore(clk)
	ledger := NewTallyLedger(creds)
	s := &Service{
		creds:    creds,
		engine:   NewProofEngine(creds),
		registry: NewPollRegistry(clk, cfg.PollDuration, ledger),
		ledger:   ledger,
		journal:  cfg.Journal,
	}
	// A poll is journaled before any vote for it can be.
	s.registry.created = s.pollCreated
	return s
}

// IssueCredential never fails. An empty region is picked at random.
func (s *Service) IssueCredential(ctx context.Context, region Region) Credential {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cred := s.creds.Issue(region)
	if s.journal != nil {
		if err := s.journal.SaveCredential(ctx, cred); err != nil {
			slog.Warn("failed to journal credential", "error", err)
		}
	}
	return cred
}

// CurrentPoll never fails; it rolls over to a new poll when the current one has ended.
func (s *Service) CurrentPoll(ctx context.Context) Poll {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, _ := s.registry.currentOrCreate(ctx)
	return p
}

func (s *Service) GenerateProof(token string, option Option) (Proof, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.engine.Generate(token, option)
}

func (s *Service) VerifyProof(p Proof) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, err := s.engine.Verify(p)
	return err
}

// VerifyAndRecord verifies p and counts it in pollID (empty means current).
// The vote is tallied under the region bound to the credential at issuance.
// The returned poll is the one the vote was resolved to; it is zero when
// verification failed before a poll was chosen.
func (s *Service) VerifyAndRecord(ctx context.Context, p Proof, pollID string) (Poll, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cred, err := s.engine.Verify(p)
	if err != nil {
		return Poll{}, err
	}

	poll, _, err := s.registry.resolve(ctx, pollID)
	if err != nil {
		return Poll{}, err
	}

	if err := s.ledger.Record(poll.ID, p, cred.Region); err != nil {
		return poll, err
	}

	if s.journal != nil {
		vote := Vote{PollID: poll.ID, Nullifier: p.Nullifier, Option: p.Option, Region: cred.Region}
		if err := s.journal.SaveVote(ctx, vote); err != nil {
			slog.Warn("failed to journal vote", "error", err, "poll_id", poll.ID)
		}
	}
	return poll, nil
}

// Results snapshots pollID, or the current poll when pollID is empty.
func (s *Service) Results(ctx context.Context, pollID string) (Results, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	poll, _, err := s.registry.resolve(ctx, pollID)
	if err != nil {
		return Results{}, err
	}
	return s.ledger.Snapshot(poll.ID)
}

// Polls lists every retained poll, newest first.
func (s *Service) Polls() []Poll {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.registry.List()
}

// Reset clears all credentials, polls and tallies.
func (s *Service) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.creds.reset()
	s.ledger.reset()
	s.registry.reset()

	if s.journal != nil {
		if err := s.journal.Reset(ctx); err != nil {
			slog.Warn("failed to reset journal", "error", err)
		}
	}
}

// Restore loads previously journaled state into an empty service.
// Votes that conflict with restored state are reported together.
func (s *Service) Restore(st State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cred := range st.Credentials {
		s.creds.put(cred)
	}
	for _, p := range st.Polls {
		s.registry.adopt(p)
	}

	var errs []error
	for _, v := range st.Votes {
		if err := s.ledger.replay(v); err != nil {
			errs = append(errs, fmt.Errorf("vote %s in %s: %w", v.Nullifier, v.PollID, err))
		}
	}
	return errors.Join(errs...)
}

func (s *Service) pollCreated(ctx context.Context, p Poll) {
	slog.Info("poll created", "poll_id", p.ID, "ends", humanize.Time(p.EndsAt))

	if s.journal != nil {
		if err := s.journal.SavePoll(ctx, p); err != nil {
			slog.Warn("failed to journal poll", "error", err, "poll_id", p.ID)
		}
	}
}
