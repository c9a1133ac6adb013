// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment.

Flags take precedence over environment variables:

	-p / PORT                   server port (default 3419)
	-d / DATABASE_URL           database connection string
	-t / DATABASE_TYPE          "sqlite" (default) or "postgres"
	-admin-salt / ADMIN_KEY_SALT   secret for admin key HMAC (required)
	-slug-salt / SHARE_SLUG_SALT   secret for share slug HMAC (required)

Demo mode skips all server configuration:

	-demo          run the reference simulation and exit
	-demo-voters   roster size for the demo election (default 500)
*/
package cliparse
