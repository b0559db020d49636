// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth resolves request credentials into principals and decides what
each principal may do.

# Principals

Every request acts as exactly one of three principal kinds:

	Anonymous(sessionToken)  no valid signed token; may carry a session token
	User(userID)             valid signed token with the "user" role
	Admin(userID)            valid signed token with the "admin" role

Resolution happens once per request:

	p := auth.ResolvePrincipal(secret, bearerToken, sessionToken)

A malformed or badly-signed bearer token degrades silently to Anonymous.
This is deliberate: signature failures must be indistinguishable from "not
signed in".

# Signed Tokens

Tokens are HS256 JWTs with claims {aud, sub, roles} validated against a
shared secret:

	token, err := auth.GenerateToken(secret, "userid", "user")
	claims, err := auth.ParseToken(secret, token)

The roles claim is a comma-separated string; HasRole checks membership.

# Authorization

Authorize is the single gate for submission mutations. It is a pure
function over (principal, submission):

	err := auth.Authorize(p, sub) // nil or ErrSubmissionNotFound

Admins may edit anything. Owners (matching user id, or exact session-token
match for anonymous submitters) may edit only drafts. Every denial is the
uniform ErrSubmissionNotFound so existence is never confirmed to
non-owners.

# Session Tokens

Anonymous submitters are identified by an opaque 192-bit random token:

	token, err := auth.GenerateSessionToken()
*/
package auth
