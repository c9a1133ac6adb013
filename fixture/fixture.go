// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package fixture

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/danielhkuo/ballotbox/election"
)

// DefaultCandidates is the stock candidate list for demo elections.
var DefaultCandidates = []string{"Alice Kumar", "Bob Singh", "Charlie Patel"}

// WriteVoters writes a roster CSV with a Voter_ID,Status header and IDs
// VOTER001..VOTERnnn, all marked Registered.
func WriteVoters(path string, total int) error {
	if total <= 0 {
		return fmt.Errorf("fixture: voter total must be positive, got %d", total)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("fixture: create voters file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Voter_ID", "Status"}); err != nil {
		return fmt.Errorf("fixture: write voters header: %w", err)
	}
	for i := 1; i <= total; i++ {
		if err := w.Write([]string{fmt.Sprintf("VOTER%03d", i), "Registered"}); err != nil {
			return fmt.Errorf("fixture: write voter row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// WriteCandidates writes one candidate display name per line.
func WriteCandidates(path string, names []string) error {
	if len(names) == 0 {
		return fmt.Errorf("fixture: candidate list must not be empty")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("fixture: create candidates file: %w", err)
	}
	defer f.Close()

	for _, name := range names {
		if _, err := fmt.Fprintln(f, name); err != nil {
			return fmt.Errorf("fixture: write candidate: %w", err)
		}
	}
	return nil
}

// LoadRoster reads a voters CSV (Voter_ID,Status header) into a roster.
// Rows whose status is not Registered are skipped and do not count
// toward eligibility.
func LoadRoster(path string) (*election.Roster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: open voters file: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("fixture: parse voters file: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("fixture: voters file %s has no data rows", path)
	}

	var ids []election.VoterID
	for _, row := range rows[1:] { // skip header
		if len(row) < 2 {
			return nil, fmt.Errorf("fixture: malformed voter row %v", row)
		}
		if row[1] != "Registered" {
			continue
		}
		ids = append(ids, election.VoterID(row[0]))
	}

	roster, err := election.NewRoster(ids)
	if err != nil {
		return nil, fmt.Errorf("fixture: load roster: %w", err)
	}
	return roster, nil
}

// LoadBallot reads a candidates file (one display name per line) into a
// ballot with deterministic IDs C01, C02, ... in file order.
func LoadBallot(path string) (*election.Ballot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: open candidates file: %w", err)
	}
	defer f.Close()

	var candidates []election.Candidate
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}
		candidates = append(candidates, election.Candidate{
			ID:   election.CandidateID(fmt.Sprintf("C%02d", len(candidates)+1)),
			Name: name,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("fixture: read candidates file: %w", err)
	}

	ballot, err := election.NewBallot(candidates)
	if err != nil {
		return nil, fmt.Errorf("fixture: load ballot: %w", err)
	}
	return ballot, nil
}

// VoteEvent is one casting attempt from the synthetic vote source.
type VoteEvent struct {
	Voter     election.VoterID
	Candidate election.CandidateID
}

// Stream expands per-candidate target counts into a shuffled event
// sequence, pairing candidates with voters in roster order. The shuffle
// only mimics arrival order; the election's results never depend on it.
func Stream(voters []election.VoterID, targets map[election.CandidateID]int, rng *rand.Rand) []VoteEvent {
	var choices []election.CandidateID
	for candidate, count := range targets {
		for i := 0; i < count; i++ {
			choices = append(choices, candidate)
		}
	}
	rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	n := len(choices)
	if len(voters) < n {
		n = len(voters)
	}

	events := make([]VoteEvent, n)
	for i := 0; i < n; i++ {
		events[i] = VoteEvent{Voter: voters[i], Candidate: choices[i]}
	}
	return events
}
