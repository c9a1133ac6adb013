// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tally turns an election snapshot into a result report.

Compute is a pure projection: per-candidate counts and percentages
(relative to votes cast), turnout (relative to the roster), abstentions
and the winner. Results sort by votes descending; candidates with equal
counts keep their ballot display order, which makes the winner
deterministic and repeat calls identical.

	rep := tally.Compute(el.Snapshot())
	fmt.Println(rep.Winner.Name, rep.Turnout)

A report computed from a still-open election is a consistent live view,
because Snapshot copies the counts under the election's lock.
*/
package tally
