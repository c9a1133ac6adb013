// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"errors"
	"fmt"
)

// RejectionReason tags why a vote attempt was refused. Rejections are
// expected outcomes of CastVote, not failures: the election state is
// unchanged and processing continues with the next vote event.
type RejectionReason string

const (
	ReasonUnregisteredVoter RejectionReason = "unregistered_voter"
	ReasonDuplicateVote     RejectionReason = "duplicate_vote"
	ReasonInvalidCandidate  RejectionReason = "invalid_candidate"
	ReasonElectionClosed    RejectionReason = "election_closed"
)

// RejectionError reports a refused vote attempt. It carries the voter and
// candidate so callers can log or count invalid attempts.
type RejectionError struct {
	Reason      RejectionReason
	VoterID     VoterID
	CandidateID CandidateID
}

func (e *RejectionError) Error() string {
	switch e.Reason {
	case ReasonUnregisteredVoter:
		return fmt.Sprintf("vote rejected: voter %q is not on the roster", e.VoterID)
	case ReasonDuplicateVote:
		return fmt.Sprintf("vote rejected: voter %q has already cast a vote", e.VoterID)
	case ReasonInvalidCandidate:
		return fmt.Sprintf("vote rejected: candidate %q is not on the ballot", e.CandidateID)
	case ReasonElectionClosed:
		return fmt.Sprintf("vote rejected: election is closed (voter %q)", e.VoterID)
	}
	return fmt.Sprintf("vote rejected: %s", e.Reason)
}

// AsRejection unwraps a voter-facing rejection from an error. Precondition
// violations (empty roster, double close) are not rejections and return
// false.
func AsRejection(err error) (*RejectionError, bool) {
	var rej *RejectionError
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}

// Precondition violations indicate collaborator misuse rather than voter
// behavior.
var (
	ErrEmptyRoster   = errors.New("roster must not be empty")
	ErrEmptyBallot   = errors.New("ballot must not be empty")
	ErrAlreadyClosed = errors.New("election already closed")
)
