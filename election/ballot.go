// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "fmt"

// CandidateID identifies a candidate standing in the election.
type CandidateID string

// Candidate pairs a candidate ID with its display name.
type Candidate struct {
	ID   CandidateID `json:"id"`
	Name string      `json:"name"`
}

// Ballot is the fixed, ordered list of candidates. Order is display order
// only, but it doubles as the deterministic tie-break for reporting.
// Immutable once constructed.
type Ballot struct {
	candidates []Candidate
	position   map[CandidateID]int
}

// NewBallot builds a ballot from candidates. The ballot must be non-empty
// and candidate IDs must be unique.
func NewBallot(candidates []Candidate) (*Ballot, error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("ballot: %w", ErrEmptyBallot)
	}

	b := &Ballot{
		candidates: make([]Candidate, len(candidates)),
		position:   make(map[CandidateID]int, len(candidates)),
	}
	for i, c := range candidates {
		if c.ID == "" {
			return nil, fmt.Errorf("ballot: empty candidate ID at position %d", i)
		}
		if _, dup := b.position[c.ID]; dup {
			return nil, fmt.Errorf("ballot: duplicate candidate ID %q", c.ID)
		}
		b.candidates[i] = c
		b.position[c.ID] = i
	}
	return b, nil
}

// Contains reports whether the candidate is on the ballot.
func (b *Ballot) Contains(id CandidateID) bool {
	_, ok := b.position[id]
	return ok
}

// Position returns the display position of a candidate (0-indexed).
func (b *Ballot) Position(id CandidateID) (int, bool) {
	pos, ok := b.position[id]
	return pos, ok
}

// Candidates returns the candidates in display order. The slice is a copy.
func (b *Ballot) Candidates() []Candidate {
	out := make([]Candidate, len(b.candidates))
	copy(out, b.candidates)
	return out
}

// Len returns the number of candidates on the ballot.
func (b *Ballot) Len() int {
	return len(b.candidates)
}
