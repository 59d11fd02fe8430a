// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package zk

import "sync"

// pollTally is the ledger state of one poll. mu guards the
// check-and-insert of a nullifier together with both counter updates.
type pollTally struct {
	mu         sync.Mutex
	nullifiers map[string]struct{}
	options    map[Option]int
	regions    map[Region]map[Option]int
}

func newPollTally() *pollTally {
	return &pollTally{
		nullifiers: make(map[string]struct{}),
		options:    emptyTallies(),
		regions:    emptyRegionTallies(),
	}
}

func (t *pollTally) apply(nullifier string, option Option, region Region) {
	t.nullifiers[nullifier] = struct{}{}
	t.options[option]++
	t.regions[region][option]++
}

// TallyLedger keeps, per poll, the consumed nullifiers and the vote counts.
type TallyLedger struct {
	mu    sync.RWMutex
	creds *CredentialStore
	polls map[string]*pollTally
}

func NewTallyLedger(creds *CredentialStore) *TallyLedger {
	return &TallyLedger{
		creds: creds,
		polls: make(map[string]*pollTally),
	}
}

// Open registers empty state for pollID. Opening an existing poll is a no-op.
func (l *TallyLedger) Open(pollID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.polls[pollID]; !ok {
		l.polls[pollID] = newPollTally()
	}
}

func (l *TallyLedger) Has(pollID string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	_, ok := l.polls[pollID]
	return ok
}

func (l *TallyLedger) tally(pollID string) (*pollTally, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	t, ok := l.polls[pollID]
	if !ok {
		return nil, ErrUnknownPoll
	}
	return t, nil
}

// Record counts p in pollID under region. The proof must already have been
// verified; Record still refuses a nullifier it has seen before. An invalid
// region falls back to the region of the credential behind the nullifier.
func (l *TallyLedger) Record(pollID string, p Proof, region Region) error {
	t, err := l.tally(pollID)
	if err != nil {
		return err
	}
	if !p.Option.Valid() {
		return ErrInvalidOption
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, used := t.nullifiers[p.Nullifier]; used {
		return ErrAlreadyVoted
	}
	holder, ok := l.creds.FindByNullifier(p.Nullifier)
	if !ok {
		return ErrNoCredentialForNullifier
	}
	if !region.Valid() {
		region = holder.Region
	}

	t.apply(p.Nullifier, p.Option, region)
	return nil
}

// replay applies a journaled vote without consulting the credential store.
func (l *TallyLedger) replay(v Vote) error {
	t, err := l.tally(v.PollID)
	if err != nil {
		return err
	}
	if !v.Option.Valid() {
		return ErrInvalidOption
	}
	if !v.Region.Valid() {
		return ErrInvalidRegion
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, used := t.nullifiers[v.Nullifier]; used {
		return ErrAlreadyVoted
	}
	t.apply(v.Nullifier, v.Option, v.Region)
	return nil
}

// Snapshot copies the counters of pollID.
func (l *TallyLedger) Snapshot(pollID string) (Results, error) {
	t, err := l.tally(pollID)
	if err != nil {
		return Results{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	res := Results{
		Tallies: make(map[Option]int, len(t.options)),
		Regions: make(map[Region]map[Option]int, len(t.regions)),
	}
	for o, n := range t.options {
		res.Tallies[o] = n
		res.TotalVotes += n
	}
	for r, counts := range t.regions {
		c := make(map[Option]int, len(counts))
		for o, n := range counts {
			c[o] = n
		}
		res.Regions[r] = c
	}
	return res, nil
}

// Used reports how many nullifiers pollID has consumed.
func (l *TallyLedger) Used(pollID string) (int, error) {
	t, err := l.tally(pollID)
	if err != nil {
		return 0, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.nullifiers), nil
}

func (l *TallyLedger) reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.polls = make(map[string]*pollTally)
}
