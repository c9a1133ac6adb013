// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/ballotbox/election"
)

func TestAddAndLookup(t *testing.T) {
	reg := New()
	entry := &Entry{ID: "e1", Name: "Test", ShareSlug: "abc123", CreatedAt: time.Now()}
	reg.Add(entry)

	got, ok := reg.ByID("e1")
	require.True(t, ok)
	require.Same(t, entry, got)

	got, ok = reg.BySlug("abc123")
	require.True(t, ok)
	require.Same(t, entry, got)

	_, ok = reg.ByID("missing")
	require.False(t, ok)
	_, ok = reg.BySlug("missing")
	require.False(t, ok)

	require.Equal(t, 1, reg.Len())
}

func TestRejectionCounters(t *testing.T) {
	entry := &Entry{ID: "e1"}

	entry.RecordRejection(election.ReasonDuplicateVote)
	entry.RecordRejection(election.ReasonDuplicateVote)
	entry.RecordRejection(election.ReasonUnregisteredVoter)

	require.Equal(t, 3, entry.InvalidAttempts())
	counts := entry.Rejections()
	require.Equal(t, 2, counts[election.ReasonDuplicateVote])
	require.Equal(t, 1, counts[election.ReasonUnregisteredVoter])

	// Returned map is a copy.
	counts[election.ReasonDuplicateVote] = 99
	require.Equal(t, 2, entry.Rejections()[election.ReasonDuplicateVote])
}

func TestRejectionCountersConcurrent(t *testing.T) {
	entry := &Entry{ID: "e1"}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			entry.RecordRejection(election.ReasonInvalidCandidate)
		}()
	}
	wg.Wait()

	require.Equal(t, 50, entry.InvalidAttempts())
}
