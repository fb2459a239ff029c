package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	_ "modernc.org/sqlite"

	"availpoll/cliparse"
	"availpoll/db"
	"availpoll/models"
	"availpoll/store"
)

// SetupTestDB opens a throwaway sqlite database in a per-test temp dir and
// creates the full schema. A single pooled connection keeps concurrent
// writes from hitting SQLITE_BUSY, same as the server does.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "availpoll_test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn, "sqlite"); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:              5001,
		DatabaseURL:       "availpoll_test.db",
		DatabaseType:      "sqlite",
		BaseURL:           "https://polls.test",
		LineChannelSecret: "test-channel-secret",
		LineChannelToken:  "test-channel-token",
	}
}

// MondayConfig is a one-day weekday poll: Monday 2024-06-03, hours 9-13 in
// 2-hour slots, which generates exactly [9-11, 11-13].
func MondayConfig() models.EventConfig {
	return models.EventConfig{
		StartDate:    "2024-06-03",
		EndDate:      "2024-06-03",
		Duration:     "2",
		WeekdayStart: "9",
		WeekdayEnd:   "13",
		HolidayStart: "10",
		HolidayEnd:   "18",
	}
}

// CreateTestEvent stores an event and returns its id
func CreateTestEvent(t *testing.T, st *store.Store, cfg models.EventConfig, notifyUserID string) string {
	t.Helper()

	eventID, err := st.Create(cfg, notifyUserID)
	if err != nil {
		t.Fatalf("Failed to create test event: %v", err)
	}
	return eventID
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// FakeNotifier records pushes and replies instead of calling LINE.
// Safe for concurrent use.
type FakeNotifier struct {
	mu      sync.Mutex
	Pushes  []FakeMessage
	Replies []FakeMessage
	Err     error
}

type FakeMessage struct {
	To   string
	Text string
}

func (f *FakeNotifier) Push(userID, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.Pushes = append(f.Pushes, FakeMessage{To: userID, Text: text})
	return nil
}

func (f *FakeNotifier) Reply(replyToken, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.Replies = append(f.Replies, FakeMessage{To: replyToken, Text: text})
	return nil
}

// PushCount returns the number of recorded pushes
func (f *FakeNotifier) PushCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Pushes)
}
