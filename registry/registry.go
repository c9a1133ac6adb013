// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"sync"
	"time"

	"github.com/danielhkuo/ballotbox/election"
)

// Entry holds one live election plus the service-level metadata the core
// deliberately knows nothing about.
type Entry struct {
	ID        string
	Name      string
	ShareSlug string
	CreatedAt time.Time
	Election  *election.Election

	mu         sync.Mutex
	closedAt   *time.Time
	rejections map[election.RejectionReason]int
}

// RecordRejection counts a refused vote attempt for reporting.
func (e *Entry) RecordRejection(reason election.RejectionReason) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.rejections == nil {
		e.rejections = make(map[election.RejectionReason]int)
	}
	e.rejections[reason]++
}

// Rejections returns a copy of the per-reason rejection counters.
func (e *Entry) Rejections() map[election.RejectionReason]int {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[election.RejectionReason]int, len(e.rejections))
	for reason, n := range e.rejections {
		out[reason] = n
	}
	return out
}

// InvalidAttempts returns the total number of rejected vote attempts.
func (e *Entry) InvalidAttempts() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	total := 0
	for _, n := range e.rejections {
		total += n
	}
	return total
}

// MarkClosed records when the election was closed.
func (e *Entry) MarkClosed(at time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closedAt = &at
}

// ClosedAt returns the close timestamp, nil while the election is open.
func (e *Entry) ClosedAt() *time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.closedAt
}

// Registry is the in-memory index of live elections, addressable by ID
// (admin operations) and by share slug (public operations).
type Registry struct {
	mu     sync.Mutex
	byID   map[string]*Entry
	bySlug map[string]*Entry
}

func New() *Registry {
	return &Registry{
		byID:   make(map[string]*Entry),
		bySlug: make(map[string]*Entry),
	}
}

// Add registers an entry under its ID and share slug.
func (r *Registry) Add(e *Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[e.ID] = e
	if e.ShareSlug != "" {
		r.bySlug[e.ShareSlug] = e
	}
}

// ByID looks up an entry by election ID.
func (r *Registry) ByID(id string) (*Entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.byID[id]
	return e, ok
}

// BySlug looks up an entry by public share slug.
func (r *Registry) BySlug(slug string) (*Entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.bySlug[slug]
	return e, ok
}

// Len returns the number of registered elections.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byID)
}
