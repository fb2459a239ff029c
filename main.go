package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"availpoll/cliparse"
	"availpoll/db"
	"availpoll/middleware"
	"availpoll/notify"
	"availpoll/router"
	"availpoll/store"
)

func main() {
	// Load .env if present; real deployments use actual env vars
	_ = godotenv.Load()

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	driver := "sqlite"
	if cfg.DatabaseType == "postgres" {
		driver = "postgres"
	}

	dbConn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	if driver == "sqlite" {
		// modernc sqlite returns SQLITE_BUSY under concurrent writers;
		// a single pooled connection serializes all statements instead
		dbConn.SetMaxOpenConns(1)
	}

	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	if err := db.CreateSchema(dbConn, cfg.DatabaseType); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	var notifier notify.Notifier
	if cfg.LineChannelSecret != "" && cfg.LineChannelToken != "" {
		notifier, err = notify.NewLineNotifier(cfg.LineChannelSecret, cfg.LineChannelToken)
		if err != nil {
			slog.Error("LINE client initialization failed", "error", err)
			os.Exit(1)
		}
	} else {
		slog.Warn("LINE credentials not set, notifications disabled")
		notifier = notify.Nop{}
	}

	events := store.New(dbConn)
	mux := router.NewRouter(events, cfg, notifier)

	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		server.Close()
	}()

	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
