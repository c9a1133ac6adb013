// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Ballotbox API server.

Ballotbox models a single-election voting session: a fixed roster of
eligible voters, a fixed candidate ballot, integrity-checked vote
casting, and a final tally with turnout, abstentions and winner.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=file:ballotbox.db go run main.go

Or with flags:

	go run main.go -p 3419 -d "postgres://..." -t postgres

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string
  - ADMIN_KEY_SALT (--admin-salt): Secret for admin key HMAC
  - SHARE_SLUG_SALT (--slug-salt): Secret for share slug generation

Optional settings:

  - PORT (-p): Server port (default: 3419)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"

# Demo Mode

go run main.go -demo simulates the reference election (500 generated
voters, three candidates, a shuffled biased vote stream) and prints the
console report instead of serving.

# Architecture

The core is the election state machine; everything else consumes its
outputs or supplies its inputs:

  - election: roster, ballot, vote-integrity state machine
  - tally: read-only results projection
  - fixture: demo data generation and the synthetic vote source
  - report: console rendering of a tally
  - registry: in-memory index of live elections
  - handlers: HTTP request handlers (elections, voting, results)
  - router: route definitions using Go 1.22+ routing
  - middleware: logging, JSON helpers, CORS
  - models: request/response types
  - auth: admin keys, share slugs, ID generation
  - db: schema creation and registry rehydration
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
