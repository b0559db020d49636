// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

// Kind is the closed set of principal variants. Keeping this a tagged enum
// (rather than open-ended role strings) lets the authorization gate switch
// exhaustively over it.
type Kind int

const (
	KindAnonymous Kind = iota
	KindUser
	KindAdmin
)

// Principal is the resolved identity making a request. Derived per-request
// from credentials, never persisted.
//
// UserID is set for KindUser and KindAdmin. SessionToken is set for
// KindAnonymous when the caller supplied one; an anonymous principal with
// an empty token can never own or mutate any submission.
type Principal struct {
	Kind         Kind
	UserID       string
	SessionToken string
}

func Anonymous(sessionToken string) Principal {
	return Principal{Kind: KindAnonymous, SessionToken: sessionToken}
}

func User(userID string) Principal {
	return Principal{Kind: KindUser, UserID: userID}
}

func Admin(userID string) Principal {
	return Principal{Kind: KindAdmin, UserID: userID}
}

// ResolvePrincipal derives the acting principal from request credentials.
//
// An invalid or unparseable bearer token degrades to anonymous rather than
// erroring: "bad signature" must be indistinguishable from "not signed in"
// so signature failures never leak as distinct behavior to the caller.
func ResolvePrincipal(secret, bearerToken, sessionToken string) Principal {
	if bearerToken != "" {
		claims, err := ParseToken(secret, bearerToken)
		if err == nil {
			switch {
			case claims.HasRole("admin"):
				return Admin(claims.Subject)
			case claims.HasRole("user"):
				return User(claims.Subject)
			}
		}
	}
	return Anonymous(sessionToken)
}
