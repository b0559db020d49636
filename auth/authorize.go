// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"

	"github.com/danielhkuo/consignly/models"
)

// ErrSubmissionNotFound is the uniform denial. It deliberately reads as
// "not found" rather than "forbidden": a caller must not be able to tell
// whether a submission does not exist or exists but is owned by someone
// else.
var ErrSubmissionNotFound = errors.New("Submission Not Found")

// Authorize decides whether p may mutate sub. Pure and deterministic:
// no I/O, identical inputs always yield the identical decision.
//
// Rules, first match wins:
//  1. Admins may edit any submission in any state, including terminal ones.
//  2. The owning user or the owning anonymous session (exact token match)
//     may edit only while the submission is still a draft.
//  3. Everything else is denied as ErrSubmissionNotFound.
func Authorize(p Principal, sub *models.Submission) error {
	switch p.Kind {
	case KindAdmin:
		return nil
	case KindUser:
		if sub.UserID != nil && *sub.UserID == p.UserID && sub.State == models.StateDraft {
			return nil
		}
	case KindAnonymous:
		if p.SessionToken != "" && sub.SessionID != nil && *sub.SessionID == p.SessionToken && sub.State == models.StateDraft {
			return nil
		}
	}
	return ErrSubmissionNotFound
}

// CanView reports whether p may read sub. Ownership alone is enough here:
// owners keep read access after their submission leaves draft.
func CanView(p Principal, sub *models.Submission) bool {
	switch p.Kind {
	case KindAdmin:
		return true
	case KindUser:
		return sub.UserID != nil && *sub.UserID == p.UserID
	case KindAnonymous:
		return p.SessionToken != "" && sub.SessionID != nil && *sub.SessionID == p.SessionToken
	}
	return false
}
