// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the consignment API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - SubmissionHandler: public create/get/update for collectors
  - AdminHandler: listing, counts, admin creation, enriched detail view
  - SearchHandler: artist/user match-by-term proxy to the directory

Handlers are created via constructor functions:

	subHandler := handlers.NewSubmissionHandler(db, cfg, dispatcher)

# Submission Lifecycle

Submissions progress draft → submitted → approved/rejected:

	POST /submissions            → Create (draft, or submitted on request)
	GET  /submissions/{id}       → Get (owner or admin)
	PUT  /submissions/{id}       → Update (gate + transition service)
	GET  /admin/submissions      → List (state filter, pagination, counts)
	POST /admin/submissions      → Create (lands directly in submitted)
	GET  /admin/submissions/{id} → Get (partner-enriched detail)

The {id} segment accepts either the internal numeric id or the external
UUID; both resolve the identical record under identical rules.

# Update Service

ApplyUpdate in update.go is the single mutation path: authorization gate,
field validation, partial merge, one atomic UPDATE, then the lifecycle
notification if the state actually changed. Authorization failures come
back as the uniform "Submission Not Found", so callers can never
distinguish a missing submission from someone else's.

# Credentials

Requests authenticate with a Bearer JWT (admin or user role) and/or an
opaque session token via X-Session-ID or the session_id body field.
Invalid tokens degrade to anonymous.
*/
package handlers
