// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines all HTTP routes using Go 1.22+ pattern routing.

Routes are split into the public submission workflow (/submissions) and
the admin review surface (/admin/...). Every route is wrapped with request
logging. The router also wires the optional external collaborators: the
directory client (DIRECTORY_URL) and the notification dispatcher
(NOTIFY_URL, falling back to log-only dispatch).
*/
package router
