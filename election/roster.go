// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import "fmt"

// VoterID identifies a single eligible voter on a roster.
type VoterID string

// Roster is the fixed set of voters permitted to cast a vote.
// It is immutable once constructed.
type Roster struct {
	ids   map[VoterID]struct{}
	order []VoterID
}

// NewRoster builds a roster from voter IDs. The roster must be non-empty
// and free of duplicates; violating either is a caller bug, not voter input.
func NewRoster(ids []VoterID) (*Roster, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("roster: %w", ErrEmptyRoster)
	}

	r := &Roster{
		ids:   make(map[VoterID]struct{}, len(ids)),
		order: make([]VoterID, 0, len(ids)),
	}
	for _, id := range ids {
		if id == "" {
			return nil, fmt.Errorf("roster: empty voter ID")
		}
		if _, dup := r.ids[id]; dup {
			return nil, fmt.Errorf("roster: duplicate voter ID %q", id)
		}
		r.ids[id] = struct{}{}
		r.order = append(r.order, id)
	}
	return r, nil
}

// Contains reports whether the voter is on the roster.
func (r *Roster) Contains(id VoterID) bool {
	_, ok := r.ids[id]
	return ok
}

// Size returns the number of eligible voters.
func (r *Roster) Size() int {
	return len(r.ids)
}

// IDs returns the voter IDs in registration order. The slice is a copy.
func (r *Roster) IDs() []VoterID {
	out := make([]VoterID, len(r.order))
	copy(out, r.order)
	return out
}
