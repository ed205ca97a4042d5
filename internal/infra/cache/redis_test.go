package cache

import (
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/finance-tracker/signals/config"
)

func TestNewRedisConnection(t *testing.T) {
	mr := miniredis.RunT(t)

	conn, err := NewRedisConnection(&config.RedisConfig{Addr: mr.Addr()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !conn.HealthCheck() {
		t.Error("expected healthy connection")
	}

	mr.Close()
	if conn.HealthCheck() {
		t.Error("expected unhealthy connection after server shutdown")
	}
	if err := conn.Close(); err != nil {
		t.Errorf("unexpected close error: %v", err)
	}
}

func TestNewRedisConnection_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	if _, err := NewRedisConnection(&config.RedisConfig{Addr: addr}); err == nil {
		t.Fatal("expected error for unreachable redis")
	}
}
