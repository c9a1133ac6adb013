// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateElectionRequest: name, voters, candidates
  - CastVoteRequest: voter_id, candidate_id

# Response Types

Types for JSON responses:

  - CreateElectionResponse: election_id, admin_key, share_slug
  - CastVoteResponse: status, reason, message
  - CloseElectionResponse: closed_at, snapshot
  - ResultsResponse: tally rows, turnout, abstentions, winner
  - ErrorResponse: error, message

# Domain Types

  - CandidateInfo: candidate id + display name
  - ElectionInfo: public election metadata
  - AdminElectionView: ElectionInfo plus rejection counters
  - ResultSnapshot: immutable final tally record

# Constants

Status values:

	StatusOpen   = "open"
	StatusClosed = "closed"

Vote outcomes:

	VoteAccepted = "accepted"
	VoteRejected = "rejected"
*/
package models
