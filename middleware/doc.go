// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

  - WithLogging: slog request/completion logging with duration
  - JSONResponse / ErrorResponse: JSON encoding with consistent error shape
  - ParseJSONBody: request body decoding
  - CORS: cross-origin support for result dashboards
  - GetClientIP: X-Forwarded-For / X-Real-IP aware client address, used
    to record salted IP hashes on accepted votes
*/
package middleware
