package storage

import (
	"context"
	"errors"
	"testing"
)

// failingStore always errors, simulating an unavailable tier
type failingStore struct{}

var errTierDown = errors.New("tier down")

func (failingStore) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, errTierDown
}
func (failingStore) Set(ctx context.Context, key, value string) error { return errTierDown }
func (failingStore) Delete(ctx context.Context, key string) error     { return errTierDown }

func TestTiered(t *testing.T) {
	ctx := context.Background()

	t.Run("read prefers the first tier with the key", func(t *testing.T) {
		first := NewMemory()
		second := NewMemory()
		first.Set(ctx, "k", "from-first")
		second.Set(ctx, "k", "from-second")

		tiered := NewTiered(first, second)
		value, ok, err := tiered.Get(ctx, "k")
		if err != nil || !ok || value != "from-first" {
			t.Errorf("got (%q, %v, %v), want the first tier's value", value, ok, err)
		}
	})

	t.Run("read falls through empty tiers", func(t *testing.T) {
		first := NewMemory()
		second := NewMemory()
		second.Set(ctx, "k", "fallback")

		tiered := NewTiered(first, second)
		value, ok, _ := tiered.Get(ctx, "k")
		if !ok || value != "fallback" {
			t.Errorf("got (%q, %v), want the second tier's value", value, ok)
		}
	})

	t.Run("read skips failing tiers", func(t *testing.T) {
		healthy := NewMemory()
		healthy.Set(ctx, "k", "v")

		tiered := NewTiered(failingStore{}, healthy)
		value, ok, err := tiered.Get(ctx, "k")
		if err != nil || !ok || value != "v" {
			t.Errorf("got (%q, %v, %v), want the healthy tier to answer", value, ok, err)
		}
	})

	t.Run("miss everywhere is not an error", func(t *testing.T) {
		tiered := NewTiered(NewMemory(), NewMemory())
		_, ok, err := tiered.Get(ctx, "absent")
		if ok || err != nil {
			t.Errorf("got (ok=%v, err=%v), want a clean miss", ok, err)
		}
	})

	t.Run("write goes to every tier", func(t *testing.T) {
		first := NewMemory()
		second := NewMemory()

		tiered := NewTiered(first, second)
		if err := tiered.Set(ctx, "k", "v"); err != nil {
			t.Fatalf("Set failed: %v", err)
		}

		for i, tier := range []Store{first, second} {
			value, ok, _ := tier.Get(ctx, "k")
			if !ok || value != "v" {
				t.Errorf("tier %d has (%q, %v), want the written value", i, value, ok)
			}
		}
	})

	t.Run("write reports failures but reaches later tiers", func(t *testing.T) {
		healthy := NewMemory()
		tiered := NewTiered(failingStore{}, healthy)

		err := tiered.Set(ctx, "k", "v")
		if !errors.Is(err, errTierDown) {
			t.Errorf("got %v, want the tier failure surfaced", err)
		}
		if value, ok, _ := healthy.Get(ctx, "k"); !ok || value != "v" {
			t.Error("healthy tier missed the write")
		}
	})

	t.Run("delete clears every tier", func(t *testing.T) {
		first := NewMemory()
		second := NewMemory()
		tiered := NewTiered(first, second)
		tiered.Set(ctx, "k", "v")

		if err := tiered.Delete(ctx, "k"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		for i, tier := range []Store{first, second} {
			if _, ok, _ := tier.Get(ctx, "k"); ok {
				t.Errorf("tier %d still has the key", i)
			}
		}
	})
}

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if _, ok, _ := m.Get(ctx, "k"); ok {
		t.Error("empty store reported a hit")
	}
	if err := m.Set(ctx, "k", "v"); err != nil {
		t.Fatal(err)
	}
	if value, ok, _ := m.Get(ctx, "k"); !ok || value != "v" {
		t.Errorf("got (%q, %v), want (v, true)", value, ok)
	}
	if err := m.Delete(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := m.Get(ctx, "k"); ok {
		t.Error("key survived Delete")
	}
}
