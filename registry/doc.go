// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package registry indexes the live elections held in memory.

The in-memory election is the authoritative state for a run; the
database is a write-behind session log used to rehydrate the registry
after a restart (see db.RestoreElections). Each Entry also carries
per-reason rejection counters so the admin view and the console report
can say how many invalid vote attempts the guardrails refused.
*/
package registry
