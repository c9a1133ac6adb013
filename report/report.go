// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/danielhkuo/ballotbox/tally"
)

// Options controls rendering. Decorated output adds section banners for
// interactive terminals; plain output is stable for pipes and logs.
type Options struct {
	Decorated       bool
	InvalidAttempts int
}

// TerminalOptions picks decorated output when the writer is a terminal.
func TerminalOptions(f *os.File, invalidAttempts int) Options {
	return Options{
		Decorated:       isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()),
		InvalidAttempts: invalidAttempts,
	}
}

// Render writes the full election report: status block, results table,
// and metrics block. It only consumes the tally; it never touches
// election state.
func Render(w io.Writer, rep tally.Report, opts Options) error {
	var b strings.Builder

	section(&b, opts, "VOTING STATUS")
	fmt.Fprintf(&b, "Election: %s\n", rep.Election)
	fmt.Fprintf(&b, "Total Eligible Voters: %s\n", humanize.Comma(int64(rep.TotalEligible)))
	fmt.Fprintf(&b, "Votes Cast: %s (%.1f%% participation)\n",
		humanize.Comma(int64(rep.VotesCast)), rep.Turnout)
	if rep.Closed {
		fmt.Fprintf(&b, "Voting Period: Closed\n")
	} else {
		fmt.Fprintf(&b, "Voting Period: Active\n")
	}

	section(&b, opts, "RESULTS TABLE")
	b.WriteString(Table(rep))

	section(&b, opts, "ELECTION METRICS")
	fmt.Fprintf(&b, "Voter Turnout: %.1f%%\n", rep.Turnout)
	if rep.Winner != nil {
		label := "PROVISIONAL WINNER"
		if rep.Closed {
			label = "WINNER"
		}
		fmt.Fprintf(&b, "%s: %s with %.1f%% of votes.\n", label, rep.Winner.Name, rep.Winner.Percentage)
	} else {
		fmt.Fprintf(&b, "WINNER: N/A (no votes cast)\n")
	}
	fmt.Fprintf(&b, "INVALID VOTE ATTEMPTS: %s\n", humanize.Comma(int64(opts.InvalidAttempts)))
	fmt.Fprintf(&b, "ABSTENTIONS: %s\n", humanize.Comma(int64(rep.Abstentions)))

	_, err := io.WriteString(w, b.String())
	return err
}

// Table renders the per-candidate results as a markdown table with
// one-decimal percentages.
func Table(rep tally.Report) string {
	nameWidth := len("Candidate")
	for _, r := range rep.Results {
		if len(r.Name) > nameWidth {
			nameWidth = len(r.Name)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "| %-*s | %7s | %10s |\n", nameWidth, "Candidate", "Votes", "Percentage")
	fmt.Fprintf(&b, "|%s|%s|%s|\n",
		strings.Repeat("-", nameWidth+2), strings.Repeat("-", 9), strings.Repeat("-", 12))
	for _, r := range rep.Results {
		fmt.Fprintf(&b, "| %-*s | %7s | %9.1f%% |\n",
			nameWidth, r.Name, humanize.Comma(int64(r.Votes)), r.Percentage)
	}
	return b.String()
}

func section(b *strings.Builder, opts Options, title string) {
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	if opts.Decorated {
		fmt.Fprintf(b, "--- %s ---\n", title)
	} else {
		fmt.Fprintf(b, "%s\n", title)
	}
}
