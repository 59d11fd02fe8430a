// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package zk

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/raulk/clock"

	"github.com/danielhkuo/zkvote/auth"
)

const DefaultPollDuration = 5 * 24 * time.Hour

// PollRegistry tracks the current poll and every poll it has superseded.
// mu serializes rollover so concurrent callers never see two current polls.
type PollRegistry struct {
	mu       sync.Mutex
	clock    clock.Clock
	duration time.Duration
	ledger   *TallyLedger
	current  *Poll
	polls    map[string]Poll

	// created runs with mu held, before any other caller can see the poll.
	created func(ctx context.Context, p Poll)
}

func NewPollRegistry(clk clock.Clock, duration time.Duration, ledger *TallyLedger) *PollRegistry {
	if clk == nil {
		clk = clock.New()
	}
	if duration <= 0 {
		duration = DefaultPollDuration
	}
	return &PollRegistry{
		clock:    clk,
		duration: duration,
		ledger:   ledger,
		polls:    make(map[string]Poll),
	}
}

// Current returns the active poll, creating one if there is none or the
// active one has passed its deadline.
func (r *PollRegistry) Current() Poll {
	p, _ := r.currentOrCreate(context.Background())
	return p
}

// Resolve returns the poll named by pollID, or the current poll when pollID is empty.
func (r *PollRegistry) Resolve(pollID string) (Poll, error) {
	p, _, err := r.resolve(context.Background(), pollID)
	return p, err
}

// List returns every known poll, newest deadline first.
func (r *PollRegistry) List() []Poll {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Poll, 0, len(r.polls))
	for _, p := range r.polls {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].EndsAt.After(out[j].EndsAt)
	})
	return out
}

func (r *PollRegistry) Duration() time.Duration {
	return r.duration
}

func (r *PollRegistry) resolve(ctx context.Context, pollID string) (Poll, bool, error) {
	if pollID == "" {
		p, created := r.currentOrCreate(ctx)
		return p, created, nil
	}
	if !r.ledger.Has(pollID) {
		return Poll{}, false, ErrUnknownPoll
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.polls[pollID]
	if !ok {
		return Poll{}, false, ErrUnknownPoll
	}
	return p, false, nil
}

// currentOrCreate reports whether the returned poll was created by this call.
func (r *PollRegistry) currentOrCreate(ctx context.Context) (Poll, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	if r.current != nil && !now.After(r.current.EndsAt) {
		return *r.current, false
	}

	p := Poll{ID: r.newID(now), EndsAt: now.Add(r.duration)}
	r.ledger.Open(p.ID)
	r.polls[p.ID] = p
	r.current = &p
	if r.created != nil {
		r.created(ctx, p)
	}
	return p, true
}

// newID returns poll-<base36 unix ms>-<6 hex>, unique among known polls.
func (r *PollRegistry) newID(now time.Time) string {
	for {
		id := "poll-" + strconv.FormatInt(now.UnixMilli(), 36) + "-" + auth.RandomHex(3)
		if _, taken := r.polls[id]; !taken {
			return id
		}
	}
}

// adopt registers a poll restored from the journal. The poll with the
// latest deadline becomes current.
func (r *PollRegistry) adopt(p Poll) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ledger.Open(p.ID)
	r.polls[p.ID] = p
	if r.current == nil || p.EndsAt.After(r.current.EndsAt) {
		cp := p
		r.current = &cp
	}
}

func (r *PollRegistry) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.current = nil
	r.polls = make(map[string]Poll)
}
