package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"github.com/chirpnet/chirp/pkg/config"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Hour)

	token, err := store.Create(ctx, "alice")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if token == "" {
		t.Fatal("Create() returned empty token")
	}

	username, err := store.Get(ctx, token)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if username != "alice" {
		t.Errorf("Get() = %q, want %q", username, "alice")
	}

	// Unknown token resolves to empty
	username, err = store.Get(ctx, "no-such-token")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if username != "" {
		t.Errorf("Get() for unknown token = %q, want empty", username)
	}

	if err := store.Delete(ctx, token); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	username, _ = store.Get(ctx, token)
	if username != "" {
		t.Errorf("Get() after Delete() = %q, want empty", username)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(-time.Second) // already expired

	token, err := store.Create(ctx, "bob")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	username, err := store.Get(ctx, token)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if username != "" {
		t.Errorf("Get() for expired token = %q, want empty", username)
	}
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)

	store, err := NewRedisStore(&config.RedisConfig{URL: "redis://" + mr.Addr()}, time.Hour)
	if err != nil {
		t.Fatalf("NewRedisStore() error: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	token, err := store.Create(ctx, "alice")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	// Keys are namespaced
	if !mr.Exists(keyPrefix + token) {
		t.Errorf("Expected key %q in redis", keyPrefix+token)
	}

	username, err := store.Get(ctx, token)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if username != "alice" {
		t.Errorf("Get() = %q, want %q", username, "alice")
	}

	// Expired token resolves to empty
	mr.FastForward(2 * time.Hour)
	username, err = store.Get(ctx, token)
	if err != nil {
		t.Fatalf("Get() after expiry error: %v", err)
	}
	if username != "" {
		t.Errorf("Get() after expiry = %q, want empty", username)
	}

	// Delete is a no-op for unknown tokens
	if err := store.Delete(ctx, "no-such-token"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
}
