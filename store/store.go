package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"availpoll/models"
)

// ErrNotFound is returned when no event exists for the requested id.
var ErrNotFound = errors.New("event not found")

// Store holds poll definitions and collected responses, keyed by event id.
// Config is write-once: there is no update or delete surface. Concurrent
// appends are safe because each append is a single INSERT.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Create allocates a fresh event id and stores the config with no responses.
func (s *Store) Create(cfg models.EventConfig, notifyUserID string) (string, error) {
	id := uuid.NewString()

	_, err := s.db.Exec(`
		INSERT INTO event (id, start_date, end_date, duration,
		                   weekday_start, weekday_end, holiday_start, holiday_end,
		                   exclude_enabled, exclude_start, exclude_end,
		                   notify_user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, id, cfg.StartDate, cfg.EndDate, cfg.Duration,
		cfg.WeekdayStart, cfg.WeekdayEnd, cfg.HolidayStart, cfg.HolidayEnd,
		cfg.IsExcludeEnabled, cfg.ExcludeStart, cfg.ExcludeEnd,
		notifyUserID, time.Now())
	if err != nil {
		return "", fmt.Errorf("failed to insert event: %w", err)
	}

	return id, nil
}

// Get returns the event with its responses in submission order, or
// ErrNotFound.
func (s *Store) Get(id string) (*models.Event, error) {
	var ev models.Event
	err := s.db.QueryRow(`
		SELECT id, start_date, end_date, duration,
		       weekday_start, weekday_end, holiday_start, holiday_end,
		       exclude_enabled, exclude_start, exclude_end,
		       notify_user_id, created_at
		FROM event
		WHERE id = $1
	`, id).Scan(
		&ev.ID, &ev.Config.StartDate, &ev.Config.EndDate, &ev.Config.Duration,
		&ev.Config.WeekdayStart, &ev.Config.WeekdayEnd,
		&ev.Config.HolidayStart, &ev.Config.HolidayEnd,
		&ev.Config.IsExcludeEnabled, &ev.Config.ExcludeStart, &ev.Config.ExcludeEnd,
		&ev.NotifyUserID, &ev.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query event: %w", err)
	}

	rows, err := s.db.Query(`
		SELECT name, answers
		FROM response
		WHERE event_id = $1
		ORDER BY seq
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query responses: %w", err)
	}
	defer rows.Close()

	ev.Responses = []models.Response{}
	for rows.Next() {
		var resp models.Response
		var answersJSON string
		if err := rows.Scan(&resp.Name, &answersJSON); err != nil {
			return nil, fmt.Errorf("failed to scan response: %w", err)
		}
		if err := json.Unmarshal([]byte(answersJSON), &resp.Answers); err != nil {
			// A corrupt row should not take down the whole result view
			slog.Warn("skipping response with unreadable answers", "event_id", id, "name", resp.Name, "error", err)
			continue
		}
		ev.Responses = append(ev.Responses, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read responses: %w", err)
	}

	return &ev, nil
}

// AppendResponse appends one response to the event, or returns ErrNotFound.
func (s *Store) AppendResponse(id string, resp models.Response) error {
	var exists bool
	err := s.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM event WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check event: %w", err)
	}
	if !exists {
		return ErrNotFound
	}

	answersJSON, err := json.Marshal(resp.Answers)
	if err != nil {
		return fmt.Errorf("failed to encode answers: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO response (event_id, name, answers, submitted_at)
		VALUES ($1, $2, $3, $4)
	`, id, resp.Name, string(answersJSON), time.Now())
	if err != nil {
		return fmt.Errorf("failed to insert response: %w", err)
	}

	return nil
}
