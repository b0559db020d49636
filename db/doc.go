// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

Two dialects are supported, selected by the DATABASE_TYPE config value:
PostgreSQL for production (lib/pq) and SQLite for development and tests
(modernc.org/sqlite, cgo-free).

Queries elsewhere in the codebase use $1-style placeholders in ascending
order without reuse, which both drivers accept.

Tables:

  - submission: consignment records with lifecycle state, ownership
    markers (user_id or session_id), and descriptive artwork fields
  - partner_submission: routings of a submission to partner galleries,
    with a notified_at marker once the partner was told

The schema is created on startup with IF NOT EXISTS; there is no
migration tooling.
*/
package db
