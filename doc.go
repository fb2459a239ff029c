/*
Package main provides the entry point for the availpoll server.

Availpoll is a date-range availability poll service: an organizer creates a
poll over a span of calendar days, shares the participant link, collects
three-way answers (available / maybe / unavailable) per generated time slot,
and views an aggregated tally. Organizers on LINE receive push notifications
when a poll is created and when someone answers.

# Starting the Server

The server reads a .env file if present, then environment variables or CLI
flags:

	BASE_URL=https://polls.example.com go run .

Or with flags:

	go run . -p 5001 -d availpoll.db -base-url https://polls.example.com

# Configuration

Required settings:

  - BASE_URL (-base-url): public base URL used to build participant links

Optional settings:

  - PORT (-p): server port (default: 5001)
  - DATABASE_URL (-d): sqlite path or postgres connection string (default: availpoll.db)
  - DATABASE_TYPE (-t): "sqlite" or "postgres" (default: sqlite)
  - LINE_CHANNEL_SECRET, LINE_CHANNEL_TOKEN: LINE Messaging API credentials;
    when unset the webhook and push notifications are disabled

# Architecture

The server uses a handler-based architecture with dependency injection:

  - schedule: pure slot generation, response validation, and tallying
  - store: event persistence (create / get / append response)
  - handlers: HTTP request handlers (events, LINE webhook)
  - notify: LINE push/reply client behind a small interface
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: request/response and domain types
  - db: schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
