// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package fixture generates and loads demo election data.

It is the "vote source" collaborator: nothing in here touches election
state directly. WriteVoters/WriteCandidates produce the demo input files
(voters.csv with a Voter_ID,Status header, candidates.txt with one name
per line), LoadRoster/LoadBallot read them back into core types, and
Stream synthesizes a shuffled sequence of vote events with a chosen
per-candidate distribution:

	events := fixture.Stream(roster.IDs(), map[election.CandidateID]int{
		"C01": 200, "C02": 150, "C03": 100,
	}, rng)

The shuffle models arbitrary arrival order only; replaying the same
multiset of events in any permutation produces the same tally.
*/
package fixture
