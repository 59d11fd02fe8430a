// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package zk

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

type ledgerFixture struct {
	creds  *CredentialStore
	engine *ProofEngine
	ledger *TallyLedger
}

func newLedgerFixture(pollIDs ...string) *ledgerFixture {
	creds := NewCredentialStore(nil)
	f := &ledgerFixture{
		creds:  creds,
		engine: NewProofEngine(creds),
		ledger: NewTallyLedger(creds),
	}
	for _, id := range pollIDs {
		f.ledger.Open(id)
	}
	return f
}

func (f *ledgerFixture) proof(t *testing.T, region Region, option Option) Proof {
	t.Helper()
	cred := f.creds.Issue(region)
	p, err := f.engine.Generate(cred.Token, option)
	require.NoError(t, err)
	return p
}

func TestRecordRejectsReplay(t *testing.T) {
	f := newLedgerFixture("p1")
	p := f.proof(t, RegionNA, OptionHealth)

	require.NoError(t, f.ledger.Record("p1", p, RegionNA))
	err := f.ledger.Record("p1", p, RegionNA)
	require.ErrorIs(t, err, ErrAlreadyVoted)

	res, err := f.ledger.Snapshot("p1")
	require.NoError(t, err)
	require.Equal(t, 1, res.TotalVotes)
	require.Equal(t, 1, res.Tallies[OptionHealth])
}

func TestRecordUnknownPoll(t *testing.T) {
	f := newLedgerFixture()
	p := f.proof(t, RegionNA, OptionHealth)

	require.ErrorIs(t, f.ledger.Record("nope", p, RegionNA), ErrUnknownPoll)
	_, err := f.ledger.Snapshot("nope")
	require.ErrorIs(t, err, ErrUnknownPoll)
}

func TestRecordWithoutCredential(t *testing.T) {
	f := newLedgerFixture("p1")
	p := Proof{Proof: "x", Nullifier: NullifierOf("ghost"), Option: OptionAI}

	require.ErrorIs(t, f.ledger.Record("p1", p, RegionEU), ErrNoCredentialForNullifier)

	used, err := f.ledger.Used("p1")
	require.NoError(t, err)
	require.Zero(t, used)
}

func TestRecordInvalidOption(t *testing.T) {
	f := newLedgerFixture("p1")
	p := f.proof(t, RegionNA, OptionHealth)
	p.Option = "pizza"

	require.ErrorIs(t, f.ledger.Record("p1", p, RegionNA), ErrInvalidOption)
}

func TestRecordFallsBackToCredentialRegion(t *testing.T) {
	f := newLedgerFixture("p1")
	p := f.proof(t, RegionOC, OptionClimate)

	require.NoError(t, f.ledger.Record("p1", p, ""))

	res, err := f.ledger.Snapshot("p1")
	require.NoError(t, err)
	require.Equal(t, 1, res.Regions[RegionOC][OptionClimate])
}

func TestTallyConsistency(t *testing.T) {
	f := newLedgerFixture("p1")

	const n = 60
	for i := 0; i < n; i++ {
		region := Regions[i%len(Regions)]
		option := Options[(i*7)%len(Options)]
		require.NoError(t, f.ledger.Record("p1", f.proof(t, region, option), region))
	}

	res, err := f.ledger.Snapshot("p1")
	require.NoError(t, err)

	optionSum := 0
	for _, c := range res.Tallies {
		optionSum += c
	}
	regionSum := 0
	for _, counts := range res.Regions {
		for _, c := range counts {
			regionSum += c
		}
	}
	used, err := f.ledger.Used("p1")
	require.NoError(t, err)

	require.Equal(t, n, res.TotalVotes)
	require.Equal(t, n, optionSum)
	require.Equal(t, n, regionSum)
	require.Equal(t, n, used)
}

func TestSnapshotHasEveryCell(t *testing.T) {
	f := newLedgerFixture("p1")

	res, err := f.ledger.Snapshot("p1")
	require.NoError(t, err)
	require.Len(t, res.Tallies, len(Options))
	require.Len(t, res.Regions, len(Regions))
	for _, r := range Regions {
		require.Len(t, res.Regions[r], len(Options))
		for _, o := range Options {
			require.Zero(t, res.Regions[r][o])
		}
	}
	require.Zero(t, res.TotalVotes)
}

func TestSnapshotIsIndependent(t *testing.T) {
	f := newLedgerFixture("p1")
	require.NoError(t, f.ledger.Record("p1", f.proof(t, RegionEU, OptionAI), RegionEU))

	res, err := f.ledger.Snapshot("p1")
	require.NoError(t, err)

	res.Tallies[OptionAI] = 99
	res.Regions[RegionEU][OptionAI] = 99
	require.NoError(t, f.ledger.Record("p1", f.proof(t, RegionEU, OptionSpace), RegionEU))

	again, err := f.ledger.Snapshot("p1")
	require.NoError(t, err)
	require.Equal(t, 1, again.Tallies[OptionAI])
	require.Equal(t, 1, again.Regions[RegionEU][OptionAI])
	require.Equal(t, 2, again.TotalVotes)
	require.Equal(t, 99, res.Tallies[OptionAI])
}

func TestConcurrentReplayCountsOnce(t *testing.T) {
	f := newLedgerFixture("p1")
	p := f.proof(t, RegionAF, OptionFreedom)

	const attempts = 50
	var ok, dup atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			switch err := f.ledger.Record("p1", p, RegionAF); err {
			case nil:
				ok.Add(1)
			case ErrAlreadyVoted:
				dup.Add(1)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int32(1), ok.Load())
	require.Equal(t, int32(attempts-1), dup.Load())

	res, err := f.ledger.Snapshot("p1")
	require.NoError(t, err)
	require.Equal(t, 1, res.TotalVotes)
}

func TestPollsAreIsolated(t *testing.T) {
	f := newLedgerFixture("a", "b")
	p := f.proof(t, RegionSA, OptionClimate)

	require.NoError(t, f.ledger.Record("a", p, RegionSA))
	// The same nullifier is fresh in another poll.
	require.NoError(t, f.ledger.Record("b", p, RegionSA))
	require.NoError(t, f.ledger.Record("a", f.proof(t, RegionSA, OptionAI), RegionSA))

	a, err := f.ledger.Snapshot("a")
	require.NoError(t, err)
	b, err := f.ledger.Snapshot("b")
	require.NoError(t, err)

	require.Equal(t, 2, a.TotalVotes)
	require.Equal(t, 1, b.TotalVotes)
	require.Zero(t, b.Tallies[OptionAI])
}
