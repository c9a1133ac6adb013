// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Ballotbox API.

# Handler Types

Each handler is a struct with database, config and registry dependencies:

  - ElectionHandler: Election lifecycle (create, admin view, close)
  - VotingHandler: Vote casting
  - ResultsHandler: Election info and results retrieval

Handlers are created via constructor functions:

	electionHandler := handlers.NewElectionHandler(db, cfg, reg)

# Election Lifecycle

Elections progress through two states: open → closed

	POST /elections              → CreateElection (returns admin_key, share_slug)
	GET  /elections/{id}/admin   → GetElectionAdmin (rejection counters)
	POST /elections/{id}/close   → CloseElection (seals the final tally)

Admin operations require the X-Admin-Key header.

# Voting Flow

Voters interact via the share slug:

	POST /elections/{slug}/votes → CastVote

A vote carries a roster voter_id and a ballot candidate_id. The
in-memory election validates and records it atomically; the outcome is
always reported, with rejection reasons mapped to HTTP statuses:

	unregistered_voter → 403
	duplicate_vote     → 409
	invalid_candidate  → 400
	election_closed    → 409

# Results

	GET /elections/{slug}         → GetElection (metadata + ballot)
	GET /elections/{slug}/results → GetResults (live or final tally)

Results are computed by the tally package from a consistent snapshot, so
reading them while voting continues is safe.
*/
package handlers
