// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package directory is the client for the external directory service.

The directory answers three read-only questions:

	artists, err := client.Artists(ctx, term)   // search by term
	users, err := client.Users(ctx, term)       // search by term
	partners, err := client.Partners(ctx, ids)  // batch detail lookup

Every call is bounded by a 5 second client timeout. Failures are expected
to degrade the caller's view (a warning on the admin detail page, a 502 on
the search proxy) and must never block or abort the primary submission
workflow.
*/
package directory
