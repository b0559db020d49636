// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package notify dispatches lifecycle notifications.

When a submission's state actually changes, the update service asks
TemplateFor for the matching template key and hands a Notification to a
Dispatcher:

	submitted → submission_receipt
	approved  → submission_approved
	rejected  → artist_submission_rejected, or the fake / nsv_bsv / other
	            variant keyed by rejection reason

Two dispatchers exist: WebhookDispatcher posts the notification to the
mailer service, LogDispatcher just logs it (development, or when no
NOTIFY_URL is configured). Dispatch is fire-and-forget: a delivery
failure is logged and never rolls back the persisted state change.
Template content and actual email delivery belong to the mailer service.
*/
package notify
