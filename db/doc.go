// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and registry rehydration.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - election: election metadata and lifecycle state
  - voter: roster rows per election
  - candidate: ballot rows per election, ordered by position
  - vote: accepted votes; PRIMARY KEY (election_id, voter_id) mirrors
    the one-vote-per-voter invariant
  - result_snapshot: immutable final tallies (JSON payload)

# Relationships

	election 1──* voter
	election 1──* candidate
	election 1──* vote
	election 1──* result_snapshot

All foreign keys use ON DELETE CASCADE.

# Restore

The database is a write-behind session log; the in-memory Election is
authoritative while the process runs. RestoreElections replays the log
into a fresh registry on startup:

	n, err := db.RestoreElections(conn, reg)
*/
package db
