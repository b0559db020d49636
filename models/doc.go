// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - Submission: an artwork-consignment record progressing through a lifecycle
  - PartnerSubmission: a routing of a submission to a partner gallery

# Lifecycle

Submissions move through four states:

	StateDraft     = "draft"
	StateSubmitted = "submitted"
	StateApproved  = "approved"
	StateRejected  = "rejected"

Approved and rejected are terminal for everyone but admins. A rejection
carries an optional reason:

	RejectionFake   = "fake"
	RejectionNsvBsv = "nsv_bsv"
	RejectionOther  = "other"

# Partial Updates

UpdateSubmissionRequest wraps every mutable field in Opt[T] so handlers can
tell "leave this field alone" (key absent) apart from "clear this field"
(key explicitly null):

	var req UpdateSubmissionRequest
	json.Unmarshal(body, &req)
	req.LocationPostalCode.Apply(&sub.LocationPostalCode)

# Ownership

A submission is owned either by an authenticated user (UserID) or by an
anonymous session token (SessionID) captured at creation time. Exactly one
is set, and neither changes afterwards. SessionID is never serialized.
*/
package models
