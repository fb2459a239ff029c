package cliparse

import (
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "file:env.db")
	t.Setenv("BASE_URL", "https://polls.example.com")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "file:env.db" {
		t.Errorf("expected env database URL, got %q", cfg.DatabaseURL)
	}
	if cfg.BaseURL != "https://polls.example.com" {
		t.Errorf("expected env base URL, got %q", cfg.BaseURL)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("BASE_URL", "https://env.example.com")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-base-url", "https://cli.example.com"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.BaseURL != "https://cli.example.com" {
		t.Errorf("CLI should override env: got %q", cfg.BaseURL)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	cfg, err := ParseFlags([]string{"-base-url", "https://polls.example.com"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 5001 {
		t.Errorf("expected default port 5001, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default database type sqlite, got %q", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "availpoll.db" {
		t.Errorf("expected default database path, got %q", cfg.DatabaseURL)
	}
	if cfg.LineChannelSecret != "" || cfg.LineChannelToken != "" {
		t.Error("LINE credentials should default to empty")
	}
}

func TestParseFlags_BaseURLRequired(t *testing.T) {
	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("expected an error without BASE_URL")
	}
}

func TestParseFlags_BaseURLTrailingSlashTrimmed(t *testing.T) {
	cfg, err := ParseFlags([]string{"-base-url", "https://polls.example.com/"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BaseURL != "https://polls.example.com" {
		t.Errorf("expected trailing slash trimmed, got %q", cfg.BaseURL)
	}
}

func TestParseFlags_InvalidDatabaseType(t *testing.T) {
	_, err := ParseFlags([]string{"-base-url", "https://x.test", "-t", "mysql"})
	if err == nil {
		t.Error("expected an error for unsupported database type")
	}
}

func TestParseFlags_InvalidPortEnv(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("BASE_URL", "https://x.test")

	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("expected an error for invalid PORT")
	}
}
