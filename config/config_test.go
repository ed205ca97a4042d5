package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Signals.Source != SourceDatabase {
		t.Errorf("expected default source %q, got %q", SourceDatabase, cfg.Signals.Source)
	}
	if cfg.Signals.DueWindowDays != 7 {
		t.Errorf("expected due window 7, got %d", cfg.Signals.DueWindowDays)
	}
	if cfg.Signals.TrendBaselineMonths != 3 {
		t.Errorf("expected baseline 3, got %d", cfg.Signals.TrendBaselineMonths)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SIGNALS_SOURCE", SourceUpstream)
	t.Setenv("SIGNALS_UPSTREAM_TIMEOUT", "3s")
	t.Setenv("SIGNALS_DUE_WINDOW_DAYS", "10")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("SERVER_PORT", "not-a-number")

	cfg := Load()

	if cfg.Signals.Source != SourceUpstream {
		t.Errorf("expected source %q, got %q", SourceUpstream, cfg.Signals.Source)
	}
	if cfg.Signals.UpstreamTimeout != 3*time.Second {
		t.Errorf("expected timeout 3s, got %v", cfg.Signals.UpstreamTimeout)
	}
	if cfg.Signals.DueWindowDays != 10 {
		t.Errorf("expected due window 10, got %d", cfg.Signals.DueWindowDays)
	}
	if cfg.Redis.Enabled {
		t.Error("expected redis to be disabled")
	}
	// Invalid values fall back to the default.
	if cfg.Server.Port != 8080 {
		t.Errorf("expected fallback port 8080, got %d", cfg.Server.Port)
	}
}
