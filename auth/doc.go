// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides key generation and validation for the API.

# Admin Keys

Admin keys are HMAC-SHA256 over the election ID with a server-side salt,
so they are verifiable without storage:

	key := auth.GenerateAdminKey(electionID, cfg.AdminKeySalt)
	err := auth.ValidateAdminKey(electionID, key, cfg.AdminKeySalt)

Creating an election returns its admin key; closing it or reading the
admin view requires the X-Admin-Key header.

# Share Slugs

GenerateShareSlug derives a short base62 slug from the election ID and a
separate salt. The slug addresses the public endpoints (voting,
results) without exposing the raw election ID.

# IDs and IP Hashes

GenerateID returns crypto/rand hex IDs. HashIP stores a salted 64-bit
hash of a voter's address on the vote row instead of the address.
*/
package auth
