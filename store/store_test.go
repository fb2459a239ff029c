package store_test

import (
	"errors"
	"sync"
	"testing"

	"availpoll/models"
	"availpoll/store"
	"availpoll/testutil"
)

func TestCreateAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	st := store.New(db)

	cfg := testutil.MondayConfig()
	id, err := st.Create(cfg, "U-organizer")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if id == "" {
		t.Fatal("Create returned an empty id")
	}

	event, err := st.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if event.ID != id {
		t.Errorf("Expected id %q, got %q", id, event.ID)
	}
	if event.Config != cfg {
		t.Errorf("Config did not round-trip: want %+v, got %+v", cfg, event.Config)
	}
	if event.NotifyUserID != "U-organizer" {
		t.Errorf("Expected subscriber U-organizer, got %q", event.NotifyUserID)
	}
	if len(event.Responses) != 0 {
		t.Errorf("New event should have no responses, got %d", len(event.Responses))
	}
}

func TestCreateGeneratesUniqueIDs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	st := store.New(db)

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		id, err := st.Create(testutil.MondayConfig(), "")
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if seen[id] {
			t.Fatalf("Duplicate event id %q", id)
		}
		seen[id] = true
	}
}

func TestGetNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	st := store.New(db)

	_, err := st.Get("no-such-event")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestAppendResponsePreservesOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	st := store.New(db)
	id := testutil.CreateTestEvent(t, st, testutil.MondayConfig(), "")

	first := models.Response{Name: "Aoi", Answers: []string{"available", "maybe"}}
	second := models.Response{Name: "Ren", Answers: []string{"unavailable", "available"}}

	if err := st.AppendResponse(id, first); err != nil {
		t.Fatalf("AppendResponse failed: %v", err)
	}
	if err := st.AppendResponse(id, second); err != nil {
		t.Fatalf("AppendResponse failed: %v", err)
	}

	event, err := st.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(event.Responses) != 2 {
		t.Fatalf("Expected 2 responses, got %d", len(event.Responses))
	}
	if event.Responses[0].Name != "Aoi" || event.Responses[1].Name != "Ren" {
		t.Errorf("Responses out of submission order: %+v", event.Responses)
	}
	if event.Responses[1].Answers[0] != "unavailable" {
		t.Errorf("Answers did not round-trip: %+v", event.Responses[1])
	}
}

func TestAppendResponseNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	st := store.New(db)

	err := st.AppendResponse("no-such-event", models.Response{Name: "Aoi"})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

// TestConcurrentAppends verifies that N simultaneous appends against one
// event id lose nothing
func TestConcurrentAppends(t *testing.T) {
	db := testutil.SetupTestDB(t)
	st := store.New(db)
	id := testutil.CreateTestEvent(t, st, testutil.MondayConfig(), "")

	numWriters := 20
	var wg sync.WaitGroup
	errs := make(chan error, numWriters)

	for i := 0; i < numWriters; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			errs <- st.AppendResponse(id, models.Response{
				Name:    "Writer" + string(rune('A'+n)),
				Answers: []string{"available", "maybe"},
			})
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Errorf("Concurrent append failed: %v", err)
		}
	}

	event, err := st.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(event.Responses) != numWriters {
		t.Errorf("Expected %d responses, got %d (lost appends)", numWriters, len(event.Responses))
	}

	// Readers must never see a torn response
	for _, resp := range event.Responses {
		if resp.Name == "" || len(resp.Answers) != 2 {
			t.Errorf("Partially written response observed: %+v", resp)
		}
	}
}
