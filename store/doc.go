/*
Package store is the event store: poll definitions and their collected
responses, looked up solely by event id.

Events are created atomically with their config and an empty response list.
Config is immutable after creation. Responses are append-only; submission
order is preserved by a sequence column so a result view always folds
responses in the order they arrived.
*/
package store
