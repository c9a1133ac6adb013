package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/registry"
	"github.com/danielhkuo/ballotbox/testutil"
)

func TestCastVote(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	reg := registry.New()
	handler := NewVotingHandler(conn, cfg, reg)

	electionID, _, shareSlug := testutil.CreateTestElection(t, conn, cfg, reg, 10)

	cast := func(slug string, body interface{}) *httptest.ResponseRecorder {
		req := testutil.MakeRequest("POST", "/elections/"+slug+"/votes", body, nil)
		req.SetPathValue("slug", slug)
		w := httptest.NewRecorder()
		handler.CastVote(w, req)
		return w
	}

	tests := []struct {
		name           string
		slug           string
		requestBody    interface{}
		expectedStatus int
		expectedReason string
	}{
		{
			name:           "accepted vote",
			slug:           shareSlug,
			requestBody:    models.CastVoteRequest{VoterID: "VOTER001", CandidateID: "C01"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "duplicate voter",
			slug:           shareSlug,
			requestBody:    models.CastVoteRequest{VoterID: "VOTER001", CandidateID: "C02"},
			expectedStatus: http.StatusConflict,
			expectedReason: "duplicate_vote",
		},
		{
			name:           "unregistered voter",
			slug:           shareSlug,
			requestBody:    models.CastVoteRequest{VoterID: "V9999", CandidateID: "C01"},
			expectedStatus: http.StatusForbidden,
			expectedReason: "unregistered_voter",
		},
		{
			name:           "invalid candidate",
			slug:           shareSlug,
			requestBody:    models.CastVoteRequest{VoterID: "VOTER002", CandidateID: "C99"},
			expectedStatus: http.StatusBadRequest,
			expectedReason: "invalid_candidate",
		},
		{
			name:           "missing voter_id",
			slug:           shareSlug,
			requestBody:    models.CastVoteRequest{CandidateID: "C01"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing candidate_id",
			slug:           shareSlug,
			requestBody:    models.CastVoteRequest{VoterID: "VOTER003"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown election",
			slug:           "nope",
			requestBody:    models.CastVoteRequest{VoterID: "VOTER003", CandidateID: "C01"},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := cast(tc.slug, tc.requestBody)
			testutil.AssertStatus(t, w, tc.expectedStatus)

			if tc.expectedReason != "" {
				var resp models.CastVoteResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Status != models.VoteRejected {
					t.Errorf("Expected rejected status, got %q", resp.Status)
				}
				if resp.Reason != tc.expectedReason {
					t.Errorf("Expected reason %q, got %q", tc.expectedReason, resp.Reason)
				}
			}
		})
	}

	// The accepted vote landed in the session log, the rejections did not
	var voteCount int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM vote WHERE election_id = $1`, electionID).Scan(&voteCount); err != nil {
		t.Fatalf("Failed to count votes: %v", err)
	}
	if voteCount != 1 {
		t.Errorf("Expected 1 persisted vote, got %d", voteCount)
	}

	// Rejections were counted for the admin view
	entry, _ := reg.ByID(electionID)
	if got := entry.InvalidAttempts(); got != 3 {
		t.Errorf("Expected 3 invalid attempts, got %d", got)
	}
}

func TestCastVoteAfterClose(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	reg := registry.New()
	handler := NewVotingHandler(conn, cfg, reg)

	electionID, _, shareSlug := testutil.CreateTestElection(t, conn, cfg, reg, 10)

	entry, _ := reg.ByID(electionID)
	if err := entry.Election.Close(); err != nil {
		t.Fatalf("Failed to close election: %v", err)
	}

	req := testutil.MakeRequest("POST", "/elections/"+shareSlug+"/votes",
		models.CastVoteRequest{VoterID: "VOTER001", CandidateID: "C01"}, nil)
	req.SetPathValue("slug", shareSlug)
	w := httptest.NewRecorder()
	handler.CastVote(w, req)

	testutil.AssertStatus(t, w, http.StatusConflict)

	var resp models.CastVoteResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Reason != "election_closed" {
		t.Errorf("Expected election_closed, got %q", resp.Reason)
	}

	if got := entry.Election.VotesCast(); got != 0 {
		t.Errorf("Closed election accepted a vote; votes cast = %d", got)
	}
}

func TestCastVoteInvalidJSON(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	reg := registry.New()
	handler := NewVotingHandler(conn, cfg, reg)

	_, _, shareSlug := testutil.CreateTestElection(t, conn, cfg, reg, 5)

	req := httptest.NewRequest("POST", "/elections/"+shareSlug+"/votes", nil)
	req.SetPathValue("slug", shareSlug)
	w := httptest.NewRecorder()
	handler.CastVote(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}
