package memory

import (
	"context"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	if _, found, _ := s.Get(ctx, "users"); found {
		t.Fatalf("unexpected value for missing key")
	}

	if err := s.Set(ctx, "users", []byte(`[{"id":"u1"}]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	raw, found, err := s.Get(ctx, "users")
	if err != nil || !found {
		t.Fatalf("get: found=%v err=%v", found, err)
	}
	if string(raw) != `[{"id":"u1"}]` {
		t.Fatalf("value mismatch: %s", raw)
	}

	if err := s.Delete(ctx, "users"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, found, _ := s.Get(ctx, "users"); found {
		t.Fatalf("value survived delete")
	}
}

func TestGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	_ = s.Set(ctx, "quizzes", []byte(`[]`))

	raw, _, _ := s.Get(ctx, "quizzes")
	raw[0] = 'x'

	again, _, _ := s.Get(ctx, "quizzes")
	if string(again) != `[]` {
		t.Fatalf("caller mutation leaked into the store: %s", again)
	}
}
