// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment
variables. CLI flags take precedence over environment variables.

Required settings:

  - DATABASE_URL (-d): connection string (postgres://... or a sqlite path)
  - JWT_SECRET (-jwt-secret): shared secret for signed-token validation

Optional settings:

  - PORT (-p): server port (default: 3418)
  - DATABASE_TYPE (-t): "sqlite" or "postgres" (default: sqlite)
  - DIRECTORY_URL (-directory-url): external artist/user/partner directory
  - DIRECTORY_TOKEN (-directory-token): directory access token
  - NOTIFY_URL (-notify-url): lifecycle notification webhook; when unset,
    notifications are logged instead of delivered

The signing secret is passed explicitly into the identity resolver rather
than read from ambient global state.
*/
package cliparse
