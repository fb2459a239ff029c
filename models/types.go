package models

import "time"

// Answer symbols recognized by the tally. Anything else in a submitted
// answer list is ignored when counting.
const (
	AnswerAvailable   = "available"
	AnswerMaybe       = "maybe"
	AnswerUnavailable = "unavailable"
)

// EventConfig is the organizer-supplied poll configuration. Fields are kept
// as the raw strings from the create payload; they are parsed when slots are
// generated, so a malformed config surfaces as a generation failure rather
// than a storage failure.
type EventConfig struct {
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	Duration         string `json:"duration"`
	WeekdayStart     string `json:"weekdayStart"`
	WeekdayEnd       string `json:"weekdayEnd"`
	HolidayStart     string `json:"holidayStart"`
	HolidayEnd       string `json:"holidayEnd"`
	IsExcludeEnabled bool   `json:"isExcludeEnabled"`
	ExcludeStart     string `json:"excludeStart"`
	ExcludeEnd       string `json:"excludeEnd"`
}

// Response is one participant's answer set, positionally aligned with the
// slot sequence in force when it was submitted.
type Response struct {
	Name    string   `json:"name"`
	Answers []string `json:"answers"`
}

// Event is one poll: immutable config plus append-only responses.
// NotifyUserID is the LINE user who receives push notifications for this
// event (empty when the poll was created outside LINE).
type Event struct {
	ID           string      `json:"id"`
	Config       EventConfig `json:"config"`
	Responses    []Response  `json:"responses"`
	NotifyUserID string      `json:"-"`
	CreatedAt    time.Time   `json:"created_at"`
}

// Slot is one candidate time interval on a specific date. Slots are derived
// from the config on demand and identified by position in the generated
// sequence; they are never stored.
type Slot struct {
	Date      time.Time `json:"-"`
	StartHour int       `json:"start_hour"`
	EndHour   int       `json:"end_hour"`
	Label     string    `json:"label"`
}

// AnswerCounts is the tally for one slot position.
type AnswerCounts struct {
	Available   int `json:"available"`
	Maybe       int `json:"maybe"`
	Unavailable int `json:"unavailable"`
}

// Request types

type CreateEventRequest struct {
	EventConfig
	NotifyUserID string `json:"notifyUserId"`
}

type SubmitResponseRequest struct {
	Name    string   `json:"name"`
	Answers []string `json:"answers"`
}

// Response types

type CreateEventResponse struct {
	Status  string `json:"status"`
	EventID string `json:"event_id"`
	URL     string `json:"url"`
}

type EventPageResponse struct {
	EventID string      `json:"event_id"`
	Config  EventConfig `json:"config"`
	Slots   []string    `json:"slots"`
}

type ResultResponse struct {
	EventID          string         `json:"event_id"`
	Config           EventConfig    `json:"config"`
	Slots            []string       `json:"slots"`
	Counts           []AnswerCounts `json:"counts"`
	ParticipantCount int            `json:"participant_count"`
}

type NoResponsesResponse struct {
	EventID string `json:"event_id"`
	Message string `json:"message"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
