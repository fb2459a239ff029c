package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port              int
	DatabaseURL       string
	DatabaseType      string
	BaseURL           string
	LineChannelSecret string
	LineChannelToken  string
}

// ParseFlags validates flags and fills in environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("availpoll", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or sqlite path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.BaseURL, "base-url", "", "Public base URL for participant links")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.LineChannelSecret, "line-secret", "", "LINE channel secret (prefer env)")
	fs.StringVar(&cfg.LineChannelToken, "line-token", "", "LINE channel access token (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 5001 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "availpoll.db"
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = os.Getenv("BASE_URL")
	}
	if cfg.BaseURL == "" {
		return Config{}, errors.New("base URL required (use -base-url or BASE_URL env)")
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	// LINE credentials are optional; without them the webhook and push
	// notifications are disabled
	if cfg.LineChannelSecret == "" {
		cfg.LineChannelSecret = os.Getenv("LINE_CHANNEL_SECRET")
	}
	if cfg.LineChannelToken == "" {
		cfg.LineChannelToken = os.Getenv("LINE_CHANNEL_TOKEN")
	}

	return cfg, nil
}
