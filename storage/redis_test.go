package storage

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// newTestRedis connects using REDIS_URL, skipping when it is not set
func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set, skipping integration test")
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		t.Fatalf("Failed to parse REDIS_URL: %v", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Fatalf("Failed to ping redis: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	client := newTestRedis(t)

	s := NewRedisStore(client, "copilot-test:", time.Minute)
	t.Cleanup(func() {
		client.Del(ctx, "copilot-test:plc-session-id")
	})

	t.Run("round trips values", func(t *testing.T) {
		if err := s.Set(ctx, "plc-session-id", "abc"); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		value, ok, err := s.Get(ctx, "plc-session-id")
		if err != nil || !ok || value != "abc" {
			t.Errorf("got (%q, %v, %v), want the stored value", value, ok, err)
		}
	})

	t.Run("absent key is a clean miss", func(t *testing.T) {
		_, ok, err := s.Get(ctx, "absent")
		if err != nil || ok {
			t.Errorf("got (ok=%v, err=%v), want a clean miss", ok, err)
		}
	})

	t.Run("delete removes the key", func(t *testing.T) {
		s.Set(ctx, "plc-session-id", "doomed")
		if err := s.Delete(ctx, "plc-session-id"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, ok, _ := s.Get(ctx, "plc-session-id"); ok {
			t.Error("key survived Delete")
		}
	})
}
