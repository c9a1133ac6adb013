// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/registry"
	"github.com/danielhkuo/ballotbox/testutil"
)

func TestCreateElection(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	reg := registry.New()
	handler := NewElectionHandler(conn, cfg, reg)

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		checkResponse  func(t *testing.T, resp *models.CreateElectionResponse)
	}{
		{
			name: "valid election",
			requestBody: models.CreateElectionRequest{
				Name:       "Student Council President",
				Voters:     testutil.VoterIDs(5),
				Candidates: []string{"Alice Kumar", "Bob Singh", "Charlie Patel"},
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, resp *models.CreateElectionResponse) {
				if resp.ElectionID == "" || resp.AdminKey == "" || resp.ShareSlug == "" {
					t.Errorf("Incomplete response: %+v", resp)
				}

				// Registered in memory
				entry, ok := reg.BySlug(resp.ShareSlug)
				if !ok {
					t.Fatal("Election not registered under its slug")
				}
				if entry.Election.Roster().Size() != 5 {
					t.Errorf("Expected roster size 5, got %d", entry.Election.Roster().Size())
				}

				// Persisted roster and ballot
				var voters, candidates int
				if err := conn.QueryRow(`SELECT COUNT(*) FROM voter WHERE election_id = $1`, resp.ElectionID).Scan(&voters); err != nil {
					t.Fatalf("Failed to count voters: %v", err)
				}
				if err := conn.QueryRow(`SELECT COUNT(*) FROM candidate WHERE election_id = $1`, resp.ElectionID).Scan(&candidates); err != nil {
					t.Fatalf("Failed to count candidates: %v", err)
				}
				if voters != 5 || candidates != 3 {
					t.Errorf("Expected 5 voters and 3 candidates, got %d and %d", voters, candidates)
				}
			},
		},
		{
			name: "single candidate is allowed",
			requestBody: models.CreateElectionRequest{
				Name:       "Referendum",
				Voters:     []string{"V1", "V2"},
				Candidates: []string{"Yes"},
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "missing name",
			requestBody: models.CreateElectionRequest{
				Voters:     []string{"V1"},
				Candidates: []string{"Alice"},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "empty roster",
			requestBody: models.CreateElectionRequest{
				Name:       "No Voters",
				Candidates: []string{"Alice"},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "empty ballot",
			requestBody: models.CreateElectionRequest{
				Name:   "No Candidates",
				Voters: []string{"V1"},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate voter IDs",
			requestBody: models.CreateElectionRequest{
				Name:       "Dupes",
				Voters:     []string{"V1", "V1"},
				Candidates: []string{"Alice"},
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/elections", tc.requestBody, nil)
			w := httptest.NewRecorder()
			handler.CreateElection(w, req)

			testutil.AssertStatus(t, w, tc.expectedStatus)
			if tc.checkResponse != nil {
				var resp models.CreateElectionResponse
				testutil.AssertJSON(t, w, &resp)
				tc.checkResponse(t, &resp)
			}
		})
	}
}

func TestGetElectionAdmin(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	reg := registry.New()
	handler := NewElectionHandler(conn, cfg, reg)

	electionID, adminKey, _ := testutil.CreateTestElection(t, conn, cfg, reg, 10)
	testutil.CastTestVote(t, conn, reg, electionID, "VOTER001", "C01")

	entry, _ := reg.ByID(electionID)
	entry.RecordRejection("duplicate_vote")

	// Wrong key
	req := testutil.MakeRequest("GET", "/elections/"+electionID+"/admin", nil,
		map[string]string{"X-Admin-Key": "wrong"})
	req.SetPathValue("id", electionID)
	w := httptest.NewRecorder()
	handler.GetElectionAdmin(w, req)
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	// Right key
	req = testutil.MakeRequest("GET", "/elections/"+electionID+"/admin", nil,
		map[string]string{"X-Admin-Key": adminKey})
	req.SetPathValue("id", electionID)
	w = httptest.NewRecorder()
	handler.GetElectionAdmin(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var view models.AdminElectionView
	testutil.AssertJSON(t, w, &view)
	if view.VotesCast != 1 {
		t.Errorf("Expected 1 vote cast, got %d", view.VotesCast)
	}
	if view.InvalidAttempts != 1 {
		t.Errorf("Expected 1 invalid attempt, got %d", view.InvalidAttempts)
	}
	if view.Rejections["duplicate_vote"] != 1 {
		t.Errorf("Unexpected rejection counters: %v", view.Rejections)
	}
	if view.Status != models.StatusOpen {
		t.Errorf("Expected open status, got %q", view.Status)
	}
}

func TestCloseElection(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	reg := registry.New()
	handler := NewElectionHandler(conn, cfg, reg)

	electionID, adminKey, _ := testutil.CreateTestElection(t, conn, cfg, reg, 10)
	testutil.CastTestVote(t, conn, reg, electionID, "VOTER001", "C01")
	testutil.CastTestVote(t, conn, reg, electionID, "VOTER002", "C01")
	testutil.CastTestVote(t, conn, reg, electionID, "VOTER003", "C02")

	closeElection := func(key string) *httptest.ResponseRecorder {
		req := testutil.MakeRequest("POST", "/elections/"+electionID+"/close", nil,
			map[string]string{"X-Admin-Key": key})
		req.SetPathValue("id", electionID)
		w := httptest.NewRecorder()
		handler.CloseElection(w, req)
		return w
	}

	// Requires the admin key
	testutil.AssertStatus(t, closeElection("wrong"), http.StatusUnauthorized)

	w := closeElection(adminKey)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.CloseElectionResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Snapshot.VotesCast != 3 {
		t.Errorf("Expected 3 votes in snapshot, got %d", resp.Snapshot.VotesCast)
	}
	if resp.Snapshot.Winner == nil || resp.Snapshot.Winner.Name != "Alice Kumar" {
		t.Errorf("Expected Alice Kumar as winner, got %+v", resp.Snapshot.Winner)
	}
	if resp.Snapshot.Abstentions != 7 {
		t.Errorf("Expected 7 abstentions, got %d", resp.Snapshot.Abstentions)
	}

	// Snapshot persisted
	var snapshots int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM result_snapshot WHERE election_id = $1`, electionID).Scan(&snapshots); err != nil {
		t.Fatalf("Failed to count snapshots: %v", err)
	}
	if snapshots != 1 {
		t.Errorf("Expected 1 result snapshot, got %d", snapshots)
	}

	var status string
	if err := conn.QueryRow(`SELECT status FROM election WHERE id = $1`, electionID).Scan(&status); err != nil {
		t.Fatalf("Failed to query status: %v", err)
	}
	if status != models.StatusClosed {
		t.Errorf("Expected closed status in db, got %q", status)
	}

	// Double close surfaces as a conflict
	testutil.AssertStatus(t, closeElection(adminKey), http.StatusConflict)
}
