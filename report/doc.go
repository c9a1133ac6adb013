// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package report renders a tally.Report for the console.

Render prints the voting-status block, a markdown results table and the
metrics block (turnout, winner, invalid attempts, abstentions).
TerminalOptions switches on decorated section banners when stdout is a
terminal. The renderer is a pure consumer of the tally - it cannot
reach, let alone mutate, election state.
*/
package report
