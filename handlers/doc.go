/*
Package handlers implements the HTTP handlers: the poll lifecycle
(create, answer-form view, submit, result) and the LINE webhook.

The lifecycle handler composes the store, the schedule core, and the
notifier. Slot sequences are regenerated from the stored config on every
request; answers bind to slots by position, so submissions are validated
against the slot count both when submitted and again when tallied.
Notification delivery is best-effort and never affects the primary
operation's outcome.
*/
package handlers
