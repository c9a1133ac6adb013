// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"fmt"
	"sync"
)

// Election is the vote-integrity state machine. It accepts vote events,
// validates each against the roster, the ballot, and prior-vote history,
// and accumulates per-candidate counts.
//
// All mutable state lives behind one mutex, so an Election is safe for
// concurrent use: the check-then-write inside CastVote is a single
// critical section, and Snapshot reads under the same lock.
type Election struct {
	name   string
	roster *Roster
	ballot *Ballot

	mu      sync.Mutex
	records map[VoterID]CandidateID
	counts  map[CandidateID]int
	closed  bool
}

// New constructs an open election over a frozen roster and ballot.
func New(name string, roster *Roster, ballot *Ballot) (*Election, error) {
	if roster == nil || roster.Size() == 0 {
		return nil, fmt.Errorf("election %q: %w", name, ErrEmptyRoster)
	}
	if ballot == nil || ballot.Len() == 0 {
		return nil, fmt.Errorf("election %q: %w", name, ErrEmptyBallot)
	}

	return &Election{
		name:    name,
		roster:  roster,
		ballot:  ballot,
		records: make(map[VoterID]CandidateID, roster.Size()),
		counts:  make(map[CandidateID]int, ballot.Len()),
	}, nil
}

// Name returns the election's display name.
func (e *Election) Name() string { return e.name }

// Roster returns the election's roster (read-only by construction).
func (e *Election) Roster() *Roster { return e.roster }

// Ballot returns the election's ballot (read-only by construction).
func (e *Election) Ballot() *Ballot { return e.ballot }

// CastVote validates and records one vote event. A nil return means the
// vote was accepted; otherwise the error is a *RejectionError and no
// state changed. Checks run in a fixed order so the reported reason is
// deterministic:
//
//  1. election must still be open
//  2. voter must be on the roster
//  3. voter must not have voted before
//  4. candidate must be on the ballot
//
// The whole check-then-write runs under one lock, so a voter can never be
// double-counted even when the same voter ID arrives concurrently.
func (e *Election) CastVote(voter VoterID, candidate CandidateID) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return &RejectionError{Reason: ReasonElectionClosed, VoterID: voter, CandidateID: candidate}
	}
	if !e.roster.Contains(voter) {
		return &RejectionError{Reason: ReasonUnregisteredVoter, VoterID: voter, CandidateID: candidate}
	}
	if _, voted := e.records[voter]; voted {
		return &RejectionError{Reason: ReasonDuplicateVote, VoterID: voter, CandidateID: candidate}
	}
	if !e.ballot.Contains(candidate) {
		return &RejectionError{Reason: ReasonInvalidCandidate, VoterID: voter, CandidateID: candidate}
	}

	e.records[voter] = candidate
	e.counts[candidate]++
	return nil
}

// Close transitions the election from open to closed. Votes submitted
// after Close are rejected with ReasonElectionClosed. Closing twice is a
// programming error and returns ErrAlreadyClosed.
func (e *Election) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrAlreadyClosed
	}
	e.closed = true
	return nil
}

// Closed reports whether the election has been closed.
func (e *Election) Closed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.closed
}

// VotesCast returns the number of accepted votes so far.
func (e *Election) VotesCast() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.records)
}

// Snapshot is a consistent point-in-time copy of an election's state,
// suitable for reporting while voting may still be in progress.
type Snapshot struct {
	Name          string
	Closed        bool
	TotalEligible int
	VotesCast     int
	Candidates    []Candidate
	Counts        map[CandidateID]int
}

// Snapshot copies the counts under the same lock CastVote holds, so the
// sum of Counts always equals VotesCast.
func (e *Election) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	counts := make(map[CandidateID]int, len(e.counts))
	for id, n := range e.counts {
		counts[id] = n
	}

	return Snapshot{
		Name:          e.name,
		Closed:        e.closed,
		TotalEligible: e.roster.Size(),
		VotesCast:     len(e.records),
		Candidates:    e.ballot.Candidates(),
		Counts:        counts,
	}
}
