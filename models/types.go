package models

import (
	"time"

	"github.com/danielhkuo/ballotbox/tally"
)

// Election status constants
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

// Vote outcome constants
const (
	VoteAccepted = "accepted"
	VoteRejected = "rejected"
)

// Request types

type CreateElectionRequest struct {
	Name       string   `json:"name"`
	Voters     []string `json:"voters"`
	Candidates []string `json:"candidates"`
}

type CastVoteRequest struct {
	VoterID     string `json:"voter_id"`
	CandidateID string `json:"candidate_id"`
}

// Response types

type CreateElectionResponse struct {
	ElectionID string `json:"election_id"`
	AdminKey   string `json:"admin_key"`
	ShareSlug  string `json:"share_slug"`
}

type CastVoteResponse struct {
	Status  string `json:"status"`           // "accepted" or "rejected"
	Reason  string `json:"reason,omitempty"` // rejection reason tag
	Message string `json:"message"`
}

type CloseElectionResponse struct {
	ClosedAt time.Time      `json:"closed_at"`
	Snapshot ResultSnapshot `json:"snapshot"`
}

// Domain types

type CandidateInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ElectionInfo struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Status        string          `json:"status"`
	ShareSlug     string          `json:"share_slug"`
	Candidates    []CandidateInfo `json:"candidates"`
	TotalEligible int             `json:"total_eligible"`
	CreatedAt     time.Time       `json:"created_at"`
	ClosedAt      *time.Time      `json:"closed_at,omitempty"`
}

// AdminElectionView adds the integrity counters voters never see.
type AdminElectionView struct {
	ElectionInfo
	VotesCast       int            `json:"votes_cast"`
	InvalidAttempts int            `json:"invalid_attempts"`
	Rejections      map[string]int `json:"rejections"`
}

// ResultsResponse is the public tally projection: per-candidate rows,
// turnout, abstentions and the (provisional) winner.
type ResultsResponse struct {
	Election      string                  `json:"election"`
	Status        string                  `json:"status"`
	Results       []tally.CandidateResult `json:"results"`
	VotesCast     int                     `json:"votes_cast"`
	TotalEligible int                     `json:"total_eligible"`
	Turnout       float64                 `json:"turnout"`
	Abstentions   int                     `json:"abstentions"`
	Winner        *tally.CandidateResult  `json:"winner,omitempty"`
}

// ResultSnapshot is the immutable final tally persisted at close.
type ResultSnapshot struct {
	ID          string                  `json:"id"`
	ElectionID  string                  `json:"election_id"`
	ComputedAt  time.Time               `json:"computed_at"`
	Results     []tally.CandidateResult `json:"results"`
	VotesCast   int                     `json:"votes_cast"`
	Turnout     float64                 `json:"turnout"`
	Abstentions int                     `json:"abstentions"`
	Winner      *tally.CandidateResult  `json:"winner,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
