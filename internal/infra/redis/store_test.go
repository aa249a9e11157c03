package redis

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client), mr
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	if _, found, err := store.Get(ctx, "users"); found || err != nil {
		t.Fatalf("missing key: found=%v err=%v", found, err)
	}

	if err := store.Set(ctx, "users", []byte(`[{"id":"u1"}]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !mr.Exists("quizdeck:users") {
		t.Fatalf("expected prefixed redis key to be set")
	}

	raw, found, err := store.Get(ctx, "users")
	if err != nil || !found {
		t.Fatalf("get: found=%v err=%v", found, err)
	}
	if string(raw) != `[{"id":"u1"}]` {
		t.Fatalf("value mismatch: %s", raw)
	}

	if err := store.Delete(ctx, "users"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if mr.Exists("quizdeck:users") {
		t.Fatalf("expected redis key to be removed")
	}
}

func TestSetOverwrites(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	_ = store.Set(ctx, "currentUser", []byte(`{"id":"u1"}`))
	_ = store.Set(ctx, "currentUser", []byte(`{"id":"u2"}`))

	raw, _, _ := store.Get(ctx, "currentUser")
	if string(raw) != `{"id":"u2"}` {
		t.Fatalf("expected latest value, got %s", raw)
	}
}
