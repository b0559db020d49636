// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Consignly API server.

Consignly is the backend for an art-consignment submission workflow:
collectors submit artwork details, administrators review and transition
submissions through a lifecycle (draft → submitted → approved/rejected),
and lifecycle notifications fire on each transition.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... JWT_SECRET=... go run main.go

Or with flags:

	go run main.go -p 3418 -d "postgres://..." -t postgres -jwt-secret "..."

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string or sqlite path
  - JWT_SECRET (-jwt-secret): shared secret for signed-token validation

Optional settings:

  - PORT (-p): server port (default: 3418)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DIRECTORY_URL: external artist/user/partner directory
  - NOTIFY_URL: notification webhook (log-only dispatch when unset)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers and the submission update service
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Domain, request, and response types
  - auth: Principal resolution and the authorization gate
  - notify: Lifecycle notification dispatch
  - directory: External directory client
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
