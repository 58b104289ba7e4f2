package config

import (
	"os"
	"testing"
	"time"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("CHAT_ID", "42")

	cfg, err := New()
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	if cfg.TelegramBot.ChatID != 42 {
		t.Errorf("ChatID = %d, want 42", cfg.TelegramBot.ChatID)
	}
	if cfg.Source.Kind != "postgres" {
		t.Errorf("Source.Kind = %q, want postgres", cfg.Source.Kind)
	}
	if cfg.Engine.SearchNodeBudget != 65536 {
		t.Errorf("SearchNodeBudget = %d, want 65536", cfg.Engine.SearchNodeBudget)
	}
	if cfg.Engine.CacheTTL != 10*time.Minute {
		t.Errorf("CacheTTL = %v, want 10m", cfg.Engine.CacheTTL)
	}
	if cfg.Scheduler.ReportCron != "30 7 * * 2" {
		t.Errorf("ReportCron = %q, want \"30 7 * * 2\"", cfg.Scheduler.ReportCron)
	}
	if cfg.Scheduler.FirstMatchday != 1 {
		t.Errorf("FirstMatchday = %d, want 1", cfg.Scheduler.FirstMatchday)
	}
}

func TestNew_Overrides(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "token")
	t.Setenv("CHAT_ID", "42")
	t.Setenv("ROSTER_SOURCE", "feed")
	t.Setenv("FEED_BASE_URL", "https://feed.example.com")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("ENGINE_SEARCH_NODE_BUDGET", "1000")

	cfg, err := New()
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	if cfg.Source.Kind != "feed" || cfg.Source.FeedBaseURL != "https://feed.example.com" {
		t.Errorf("Source = %+v, want feed at https://feed.example.com", cfg.Source)
	}
	if cfg.Engine.CacheTTL != 90*time.Second {
		t.Errorf("CacheTTL = %v, want 90s", cfg.Engine.CacheTTL)
	}
	if cfg.Engine.SearchNodeBudget != 1000 {
		t.Errorf("SearchNodeBudget = %d, want 1000", cfg.Engine.SearchNodeBudget)
	}
}

func TestNew_MissingToken(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")
	os.Unsetenv("TELEGRAM_TOKEN")
	t.Setenv("CHAT_ID", "42")

	if _, err := New(); err == nil {
		t.Error("New should fail without TELEGRAM_TOKEN")
	}
}
