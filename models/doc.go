/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - EventConfig: raw organizer configuration (dates, slot duration, per-day
    hour bounds, optional excluded hour range)
  - Event: config plus append-only responses and the notification subscriber
  - Response: one participant's positional answer list
  - Slot: a derived (date, start, end, label) interval, never stored
  - AnswerCounts: per-slot tally triple

# Wire Types

  - CreateEventRequest / CreateEventResponse
  - SubmitResponseRequest
  - EventPageResponse: config plus generated slot labels for the answer form
  - ResultResponse / NoResponsesResponse
  - ErrorResponse

# Constants

Recognized answer symbols:

	AnswerAvailable   = "available"
	AnswerMaybe       = "maybe"
	AnswerUnavailable = "unavailable"
*/
package models
