package app

import "context"

// Record keys in the backing store. Each key holds one JSON-encoded value.
const (
	KeyUsers       = "users"
	KeyCurrentUser = "currentUser"
	KeyQuizzes     = "quizzes"
)

// Store abstracts the local key-value blob store (in-memory, Redis, SQLite).
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
