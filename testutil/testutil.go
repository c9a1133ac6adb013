// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/ballotbox/auth"
	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/db"
	"github.com/danielhkuo/ballotbox/election"
	"github.com/danielhkuo/ballotbox/registry"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// The in-memory database lives in a single connection
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3419,
		DatabaseURL:   ":memory:",
		DatabaseType:  "sqlite",
		AdminKeySalt:  "test-admin-salt",
		ShareSlugSalt: "test-slug-salt",
	}
}

// VoterIDs returns n sequential roster IDs in the VOTER001 format
func VoterIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("VOTER%03d", i+1)
	}
	return ids
}

// CreateTestElection builds an open election with the given roster size and
// the stock three candidates, persists it, and registers it in-memory.
// Returns the election ID, admin key, and share slug.
func CreateTestElection(t *testing.T, conn *sql.DB, cfg cliparse.Config, reg *registry.Registry, voters int) (electionID, adminKey, shareSlug string) {
	t.Helper()

	ids := make([]election.VoterID, voters)
	for i, v := range VoterIDs(voters) {
		ids[i] = election.VoterID(v)
	}
	roster, err := election.NewRoster(ids)
	if err != nil {
		t.Fatalf("Failed to build roster: %v", err)
	}

	ballot, err := election.NewBallot([]election.Candidate{
		{ID: "C01", Name: "Alice Kumar"},
		{ID: "C02", Name: "Bob Singh"},
		{ID: "C03", Name: "Charlie Patel"},
	})
	if err != nil {
		t.Fatalf("Failed to build ballot: %v", err)
	}

	el, err := election.New("Test Election", roster, ballot)
	if err != nil {
		t.Fatalf("Failed to build election: %v", err)
	}

	electionID, _ = auth.GenerateID(16)
	adminKey = auth.GenerateAdminKey(electionID, cfg.AdminKeySalt)
	shareSlug = auth.GenerateShareSlug(electionID, cfg.ShareSlugSalt)
	createdAt := time.Now()

	_, err = conn.Exec(`
		INSERT INTO election (id, name, status, share_slug, created_at)
		VALUES ($1, 'Test Election', 'open', $2, $3)
	`, electionID, shareSlug, createdAt)
	if err != nil {
		t.Fatalf("Failed to insert test election: %v", err)
	}
	for _, v := range roster.IDs() {
		if _, err := conn.Exec(`
			INSERT INTO voter (election_id, voter_id, status) VALUES ($1, $2, 'Registered')
		`, electionID, string(v)); err != nil {
			t.Fatalf("Failed to insert test voter: %v", err)
		}
	}
	for pos, c := range ballot.Candidates() {
		if _, err := conn.Exec(`
			INSERT INTO candidate (election_id, id, name, position) VALUES ($1, $2, $3, $4)
		`, electionID, string(c.ID), c.Name, pos); err != nil {
			t.Fatalf("Failed to insert test candidate: %v", err)
		}
	}

	reg.Add(&registry.Entry{
		ID:        electionID,
		Name:      "Test Election",
		ShareSlug: shareSlug,
		CreatedAt: createdAt,
		Election:  el,
	})

	return electionID, adminKey, shareSlug
}

// CastTestVote records an accepted vote directly on the in-memory election
// and in the session log, mirroring the voting handler's write path.
func CastTestVote(t *testing.T, conn *sql.DB, reg *registry.Registry, electionID, voterID, candidateID string) {
	t.Helper()

	entry, ok := reg.ByID(electionID)
	if !ok {
		t.Fatalf("Election %s not registered", electionID)
	}
	if err := entry.Election.CastVote(election.VoterID(voterID), election.CandidateID(candidateID)); err != nil {
		t.Fatalf("Failed to cast test vote: %v", err)
	}
	if _, err := conn.Exec(`
		INSERT INTO vote (election_id, voter_id, candidate_id, cast_at) VALUES ($1, $2, $3, $4)
	`, electionID, voterID, candidateID, time.Now()); err != nil {
		t.Fatalf("Failed to persist test vote: %v", err)
	}
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
