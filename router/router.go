package router

import (
	"net/http"

	"availpoll/cliparse"
	"availpoll/handlers"
	"availpoll/middleware"
	"availpoll/notify"
	"availpoll/store"
)

func NewRouter(st *store.Store, cfg cliparse.Config, notifier notify.Notifier) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	eventHandler := handlers.NewEventHandler(st, cfg, notifier)
	webhookHandler := handlers.NewWebhookHandler(cfg, notifier)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Poll lifecycle
	mux.HandleFunc("POST /create", middleware.WithLogging(eventHandler.CreateEvent))
	mux.HandleFunc("GET /event/{id}", middleware.WithLogging(eventHandler.GetEvent))
	mux.HandleFunc("POST /submit/{id}", middleware.WithLogging(eventHandler.SubmitResponse))
	mux.HandleFunc("GET /result/{id}", middleware.WithLogging(eventHandler.GetResult))

	// LINE webhook
	mux.HandleFunc("POST /callback", middleware.WithLogging(webhookHandler.Callback))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("availpoll API v1"))
	})

	return mux
}
