// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/danielhkuo/ballotbox/election"
	"github.com/danielhkuo/ballotbox/registry"
)

// RestoreElections rebuilds the in-memory registry from persisted state
// after a restart. Rosters, ballots and accepted votes are replayed into
// fresh Election instances; closed elections are re-closed. Returns the
// number of elections restored.
//
// Replayed votes were all accepted once, so a rejection during replay
// means the stored data violates an invariant and is reported as an
// error rather than skipped.
func RestoreElections(conn *sql.DB, reg *registry.Registry) (int, error) {
	rows, err := conn.Query(`
		SELECT id, name, status, share_slug, created_at, closed_at FROM election
	`)
	if err != nil {
		return 0, fmt.Errorf("query elections: %w", err)
	}
	defer rows.Close()

	type meta struct {
		id, name, status string
		shareSlug        sql.NullString
		createdAt        time.Time
		closedAt         sql.NullTime
	}
	var elections []meta
	for rows.Next() {
		var m meta
		if err := rows.Scan(&m.id, &m.name, &m.status, &m.shareSlug, &m.createdAt, &m.closedAt); err != nil {
			return 0, fmt.Errorf("scan election: %w", err)
		}
		elections = append(elections, m)
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}

	for _, m := range elections {
		roster, err := loadRoster(conn, m.id)
		if err != nil {
			return 0, fmt.Errorf("election %s: %w", m.id, err)
		}
		ballot, err := loadBallot(conn, m.id)
		if err != nil {
			return 0, fmt.Errorf("election %s: %w", m.id, err)
		}

		el, err := election.New(m.name, roster, ballot)
		if err != nil {
			return 0, fmt.Errorf("election %s: %w", m.id, err)
		}

		if err := replayVotes(conn, m.id, el); err != nil {
			return 0, fmt.Errorf("election %s: %w", m.id, err)
		}

		entry := &registry.Entry{
			ID:        m.id,
			Name:      m.name,
			ShareSlug: m.shareSlug.String,
			CreatedAt: m.createdAt,
			Election:  el,
		}

		if m.status == "closed" {
			if err := el.Close(); err != nil {
				return 0, fmt.Errorf("election %s: %w", m.id, err)
			}
			if m.closedAt.Valid {
				entry.MarkClosed(m.closedAt.Time)
			}
		}

		reg.Add(entry)
	}

	return len(elections), nil
}

func loadRoster(conn *sql.DB, electionID string) (*election.Roster, error) {
	rows, err := conn.Query(`
		SELECT voter_id FROM voter
		WHERE election_id = $1 AND status = 'Registered'
	`, electionID)
	if err != nil {
		return nil, fmt.Errorf("query voters: %w", err)
	}
	defer rows.Close()

	var ids []election.VoterID
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan voter: %w", err)
		}
		ids = append(ids, election.VoterID(id))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return election.NewRoster(ids)
}

func loadBallot(conn *sql.DB, electionID string) (*election.Ballot, error) {
	rows, err := conn.Query(`
		SELECT id, name FROM candidate
		WHERE election_id = $1
		ORDER BY position
	`, electionID)
	if err != nil {
		return nil, fmt.Errorf("query candidates: %w", err)
	}
	defer rows.Close()

	var candidates []election.Candidate
	for rows.Next() {
		var c election.Candidate
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return election.NewBallot(candidates)
}

func replayVotes(conn *sql.DB, electionID string, el *election.Election) error {
	rows, err := conn.Query(`
		SELECT voter_id, candidate_id FROM vote WHERE election_id = $1
	`, electionID)
	if err != nil {
		return fmt.Errorf("query votes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var voter, candidate string
		if err := rows.Scan(&voter, &candidate); err != nil {
			return fmt.Errorf("scan vote: %w", err)
		}
		if err := el.CastVote(election.VoterID(voter), election.CandidateID(candidate)); err != nil {
			return fmt.Errorf("replay vote for %s: %w", voter, err)
		}
	}
	return rows.Err()
}
