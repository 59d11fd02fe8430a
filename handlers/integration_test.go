// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/zkvote/db"
	"github.com/danielhkuo/zkvote/models"
	"github.com/danielhkuo/zkvote/testutil"
	"github.com/danielhkuo/zkvote/zk"
)

// TestFullVotingWorkflow walks a voter from credential to results over the
// handlers, with every step journaled, then restores a fresh service from
// the journal and checks nothing was lost.
func TestFullVotingWorkflow(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	journal := db.NewJournal(conn)

	cfg := testutil.GetTestConfig()
	svc := zk.NewService(zk.Config{PollDuration: cfg.PollDuration, Journal: journal})

	votingHandler := NewVotingHandler(svc, cfg)
	pollHandler := NewPollHandler(svc, cfg)
	resultsHandler := NewResultsHandler(svc, cfg)

	// Step 1: Current poll
	req := httptest.NewRequest("GET", "/poll", nil)
	w := httptest.NewRecorder()
	pollHandler.GetPoll(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var poll models.PollResponse
	testutil.AssertJSON(t, w, &poll)

	// Step 2: Credential
	req = testutil.MakeRequest("POST", "/credential", models.IssueCredentialRequest{Region: "AS"}, nil)
	w = httptest.NewRecorder()
	votingHandler.IssueCredential(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var cred models.CredentialResponse
	testutil.AssertJSON(t, w, &cred)

	// Step 3: Proof
	req = testutil.MakeRequest("POST", "/prove", models.ProveRequest{Token: cred.Token, Option: "ai"}, nil)
	w = httptest.NewRecorder()
	votingHandler.Prove(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var proof zk.Proof
	testutil.AssertJSON(t, w, &proof)

	// Step 4: Vote in the poll from step 1
	vote := models.VoteRequest{
		Proof:     proof.Proof,
		Nullifier: proof.Nullifier,
		Option:    string(proof.Option),
		PollID:    poll.ID,
	}
	req = testutil.MakeRequest("POST", "/vote", vote, nil)
	w = httptest.NewRecorder()
	votingHandler.Vote(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	// Step 5: Replay is rejected
	req = testutil.MakeRequest("POST", "/vote", vote, nil)
	w = httptest.NewRecorder()
	votingHandler.Vote(w, req)
	testutil.AssertStatus(t, w, http.StatusConflict)

	// Step 6: Results
	req = httptest.NewRequest("GET", "/results?pollId="+poll.ID, nil)
	w = httptest.NewRecorder()
	resultsHandler.GetResults(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var results zk.Results
	testutil.AssertJSON(t, w, &results)
	if results.TotalVotes != 1 || results.Regions[zk.RegionAS][zk.OptionAI] != 1 {
		t.Fatalf("Expected one AS/ai vote, got %+v", results)
	}

	// Step 7: Restore into a new service
	state, err := journal.Load(context.Background())
	if err != nil {
		t.Fatalf("Failed to load journal: %v", err)
	}
	restored := zk.NewService(zk.Config{PollDuration: cfg.PollDuration})
	if err := restored.Restore(state); err != nil {
		t.Fatalf("Failed to restore: %v", err)
	}

	again, err := restored.Results(context.Background(), poll.ID)
	if err != nil {
		t.Fatalf("Failed to read restored results: %v", err)
	}
	if again.TotalVotes != 1 || again.Regions[zk.RegionAS][zk.OptionAI] != 1 {
		t.Errorf("Restored results differ: %+v", again)
	}

	// The restored credential still cannot vote twice
	restoredHandler := NewVotingHandler(restored, cfg)
	req = testutil.MakeRequest("POST", "/vote", vote, nil)
	w = httptest.NewRecorder()
	restoredHandler.Vote(w, req)
	testutil.AssertStatus(t, w, http.StatusConflict)
}

// TestCredentialUsableAcrossPolls checks that a nullifier spent in one poll
// is still fresh in another
func TestCredentialUsableAcrossPolls(t *testing.T) {
	svc := testutil.NewTestService(t)
	cfg := testutil.GetTestConfig()

	first := svc.CurrentPoll(context.Background())
	_, proof := testutil.IssueTestCredential(t, svc, zk.RegionNA, zk.OptionFreedom)
	if _, err := svc.VerifyAndRecord(context.Background(), proof, first.ID); err != nil {
		t.Fatalf("Failed to vote: %v", err)
	}

	// A poll from another service run, adopted through restore
	other := zk.Poll{ID: "poll-other", EndsAt: first.EndsAt.Add(-1)}
	if err := svc.Restore(zk.State{Polls: []zk.Poll{other}}); err != nil {
		t.Fatalf("Failed to adopt poll: %v", err)
	}

	handler := NewVotingHandler(svc, cfg)
	req := testutil.MakeRequest("POST", "/vote", models.VoteRequest{
		Proof:     proof.Proof,
		Nullifier: proof.Nullifier,
		Option:    string(proof.Option),
		PollID:    other.ID,
	}, nil)
	w := httptest.NewRecorder()
	handler.Vote(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
}
