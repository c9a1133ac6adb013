// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"sort"

	"github.com/danielhkuo/ballotbox/election"
)

// CandidateResult is one row of the final tally.
type CandidateResult struct {
	ID         election.CandidateID `json:"candidate_id"`
	Name       string               `json:"name"`
	Votes      int                  `json:"votes"`
	Percentage float64              `json:"percentage"` // of votes cast
}

// Report is the read-only projection of an election snapshot.
type Report struct {
	Election      string            `json:"election"`
	Closed        bool              `json:"closed"`
	Results       []CandidateResult `json:"results"`
	VotesCast     int               `json:"votes_cast"`
	TotalEligible int               `json:"total_eligible"`
	Turnout       float64           `json:"turnout"` // percent of eligible voters
	Abstentions   int               `json:"abstentions"`

	// Winner points at the leading entry of Results, nil when no votes
	// were cast. Ties break by ballot display order.
	Winner *CandidateResult `json:"winner,omitempty"`
}

// Compute derives the full tally from a snapshot. It is pure: calling it
// twice on the same snapshot yields identical reports, and the snapshot
// is not modified.
func Compute(snap election.Snapshot) Report {
	results := make([]CandidateResult, 0, len(snap.Candidates))
	for _, c := range snap.Candidates {
		votes := snap.Counts[c.ID]
		var pct float64
		if snap.VotesCast > 0 {
			pct = float64(votes) / float64(snap.VotesCast) * 100
		}
		results = append(results, CandidateResult{
			ID:         c.ID,
			Name:       c.Name,
			Votes:      votes,
			Percentage: pct,
		})
	}

	// Results start in ballot order, so a stable sort on votes leaves
	// equal counts in display order - the documented tie-break.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Votes > results[j].Votes
	})

	report := Report{
		Election:      snap.Name,
		Closed:        snap.Closed,
		Results:       results,
		VotesCast:     snap.VotesCast,
		TotalEligible: snap.TotalEligible,
		Turnout:       turnout(snap.VotesCast, snap.TotalEligible),
		Abstentions:   snap.TotalEligible - snap.VotesCast,
	}
	if snap.VotesCast > 0 {
		report.Winner = &results[0]
	}
	return report
}

func turnout(votesCast, totalEligible int) float64 {
	if totalEligible == 0 {
		return 0
	}
	return float64(votesCast) / float64(totalEligible) * 100
}
