package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"availpoll/cliparse"
	"availpoll/middleware"
	"availpoll/models"
	"availpoll/notify"
	"availpoll/schedule"
	"availpoll/store"
)

type EventHandler struct {
	store    *store.Store
	cfg      cliparse.Config
	notifier notify.Notifier
}

func NewEventHandler(st *store.Store, cfg cliparse.Config, notifier notify.Notifier) *EventHandler {
	return &EventHandler{store: st, cfg: cfg, notifier: notifier}
}

// notifyPush sends a best-effort push message. Failures are logged and never
// reach the caller of the primary operation.
func (h *EventHandler) notifyPush(userID, text string) {
	if userID == "" {
		slog.Info("no notification subscriber for event, skipping push")
		return
	}
	if err := h.notifier.Push(userID, text); err != nil {
		slog.Warn("push notification failed", "user_id", userID, "error", err)
		return
	}
	slog.Info("push notification sent", "user_id", userID)
}

// CreateEvent handles POST /create
//
// The config is stored as received; structural problems (unparseable dates,
// non-numeric hours) surface later as slot-generation failures, matching
// the lenient create contract.
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEventRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	eventID, err := h.store.Create(req.EventConfig, req.NotifyUserID)
	if err != nil {
		slog.Error("failed to create event", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create event")
		return
	}

	memberURL := h.cfg.BaseURL + "/event/" + eventID

	slog.Info("event created", "event_id", eventID)

	h.notifyPush(req.NotifyUserID, "📅 新しい日程調整が作成されました！\n\n回答はこちら\n"+memberURL)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateEventResponse{
		Status:  "success",
		EventID: eventID,
		URL:     memberURL,
	})
}

// GetEvent handles GET /event/{id}
// Returns the event config plus the generated slot labels so a client can
// render the answer form.
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("id")
	if eventID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "event_id is required")
		return
	}

	event, err := h.store.Get(eventID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Event not found")
		return
	}
	if err != nil {
		slog.Error("failed to load event", "event_id", eventID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slots, err := schedule.Generate(event.Config)
	if err != nil {
		slog.Error("slot generation failed", "event_id", eventID, "error", err)
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "Could not parse event data")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.EventPageResponse{
		EventID: event.ID,
		Config:  event.Config,
		Slots:   schedule.Labels(slots),
	})
}

// SubmitResponse handles POST /submit/{id}
// The answer list must line up one-to-one with the slots in force right
// now; a stale or malformed submission is rejected before it is stored.
func (h *EventHandler) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("id")
	if eventID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "event_id is required")
		return
	}

	event, err := h.store.Get(eventID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Event not found")
		return
	}
	if err != nil {
		slog.Error("failed to load event", "event_id", eventID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var req models.SubmitResponseRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	slots, err := schedule.Generate(event.Config)
	if err != nil {
		slog.Error("slot generation failed", "event_id", eventID, "error", err)
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "Could not parse event data")
		return
	}

	if err := schedule.ValidateAnswers(req.Answers, len(slots)); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	err = h.store.AppendResponse(eventID, models.Response{
		Name:    req.Name,
		Answers: req.Answers,
	})
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Event not found")
		return
	}
	if err != nil {
		slog.Error("failed to append response", "event_id", eventID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save response")
		return
	}

	slog.Info("response submitted", "event_id", eventID, "name", req.Name)

	resultURL := h.cfg.BaseURL + "/result/" + eventID
	h.notifyPush(event.NotifyUserID, "✅ "+req.Name+" さんが日程を提出しました！\n\n集計ページはこちら\n"+resultURL)

	http.Redirect(w, r, "/result/"+eventID, http.StatusSeeOther)
}

// GetResult handles GET /result/{id}
// Regenerates the slot sequence from the stored config and folds every
// response into per-slot counts.
func (h *EventHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("id")
	if eventID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "event_id is required")
		return
	}

	event, err := h.store.Get(eventID)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Event not found")
		return
	}
	if err != nil {
		slog.Error("failed to load event", "event_id", eventID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if len(event.Responses) == 0 {
		middleware.JSONResponse(w, http.StatusOK, models.NoResponsesResponse{
			EventID: event.ID,
			Message: "まだ誰も回答していません。",
		})
		return
	}

	slots, err := schedule.Generate(event.Config)
	if err != nil {
		slog.Error("slot generation failed", "event_id", eventID, "error", err)
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "Could not parse event data")
		return
	}

	tally := schedule.Tally(len(slots), event.Responses)
	for _, rej := range tally.Rejected {
		slog.Warn("response excluded from tally",
			"event_id", eventID,
			"name", rej.Name,
			"answer_count", rej.AnswerCount,
			"slot_count", rej.SlotCount,
		)
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultResponse{
		EventID:          event.ID,
		Config:           event.Config,
		Slots:            schedule.Labels(slots),
		Counts:           tally.Counts,
		ParticipantCount: tally.Accepted,
	})
}
