// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election implements the single-election state machine.

# Model

An Election is built once from a frozen Roster (the set of eligible
voter IDs) and a frozen Ballot (the ordered candidate list), and is then
mutated only through CastVote:

	roster, _ := election.NewRoster(voterIDs)
	ballot, _ := election.NewBallot(candidates)
	el, _ := election.New("Student Council President", roster, ballot)

	err := el.CastVote("VOTER001", "C01")

# Integrity Rules

CastVote enforces, in order: the election is open, the voter is
registered, the voter has not voted before, and the candidate is
standing. A refused attempt returns a *RejectionError carrying the
reason; the election state is untouched. Accepted votes are final -
there is no retraction.

Rejections are expected, recoverable outcomes. Use AsRejection to tell
them apart from precondition violations (empty roster, double close),
which indicate caller bugs.

# Concurrency

All checks and the record+count write execute inside one critical
section, so the uniqueness invariant holds even when vote events for the
same voter arrive concurrently. Snapshot copies the counts under the
same lock, giving reporters a consistent view of a still-open election.

# Lifecycle

Open -> Closed via Close. Votes after Close reject with
ReasonElectionClosed; a second Close returns ErrAlreadyClosed.
*/
package election
