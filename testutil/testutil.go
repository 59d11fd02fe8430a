// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/zkvote/auth"
	"github.com/danielhkuo/zkvote/cliparse"
	"github.com/danielhkuo/zkvote/zk"
)

// TestAdminSalt is the admin salt used by GetTestConfig
const TestAdminSalt = "test-admin-salt"

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseType: cliparse.DatabaseSQLite,
		AdminKeySalt: TestAdminSalt,
		PollDuration: time.Hour,
		PingMessage:  "ping",
	}
}

// TestAdminKey returns the reset key matching GetTestConfig
func TestAdminKey() string {
	return auth.GenerateAdminKey("reset", TestAdminSalt)
}

// NewTestService creates an in-memory service with the test poll duration
func NewTestService(t *testing.T) *zk.Service {
	t.Helper()
	return zk.NewService(zk.Config{PollDuration: GetTestConfig().PollDuration})
}

// SetupTestDB opens a private in-memory sqlite database, closed when the test ends
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", "file:"+strings.ReplaceAll(t.Name(), "/", "_")+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A shared-cache memory database lives as long as one connection does.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	return db
}

// IssueTestCredential issues a credential and returns a proof for option
func IssueTestCredential(t *testing.T, svc *zk.Service, region zk.Region, option zk.Option) (zk.Credential, zk.Proof) {
	t.Helper()

	cred := svc.IssueCredential(context.Background(), region)
	proof, err := svc.GenerateProof(cred.Token, option)
	if err != nil {
		t.Fatalf("Failed to generate proof: %v", err)
	}
	return cred, proof
}

// CastTestVote issues a credential and records a vote for option in pollID
func CastTestVote(t *testing.T, svc *zk.Service, pollID string, region zk.Region, option zk.Option) zk.Proof {
	t.Helper()

	_, proof := IssueTestCredential(t, svc, region, option)
	if _, err := svc.VerifyAndRecord(context.Background(), proof, pollID); err != nil {
		t.Fatalf("Failed to record vote: %v", err)
	}
	return proof
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
