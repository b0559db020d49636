// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP cross-cutting helpers.

# Logging

WithLogging wraps a handler and logs request start/completion with timing
via log/slog.

# JSON Helpers

  - JSONResponse: encode a value with the right headers and status
  - ErrorResponse: the uniform error envelope (models.ErrorResponse)
  - FieldErrorResponse: field-scoped validation errors
  - ParseJSONBody: decode a request body

# Credentials

BearerToken pulls the raw token out of an Authorization header without
validating it; validation belongs to the auth package.

# CORS

CORS handles preflight requests and reflects the Origin header for browser
clients.
*/
package middleware
