// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table.

NewRouter wires all handlers onto a standard ServeMux using Go 1.22+
method-and-pattern routing. Admin routes address elections by ID and
require the X-Admin-Key header; public routes address them by share
slug. Every route is wrapped with request logging.
*/
package router
