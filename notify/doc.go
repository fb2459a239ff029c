// Package notify wraps the LINE Messaging API behind a small interface so
// handlers stay testable and notification failures stay contained at this
// boundary. A Nop implementation covers deployments without LINE
// credentials.
package notify
