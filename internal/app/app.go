package app

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"quizdeck/internal/domain"
)

// App is the application context handed to hosts (the CLI, tests). It owns the
// in-memory session and quiz state and keeps the backing store in lockstep:
// every mutation persists the affected record before the call returns.
type App struct {
	store Store
	now   func() time.Time
	newID func() string

	mu      sync.RWMutex
	user    *domain.User
	quizzes []domain.Quiz
}

// New hydrates an App from the store. Unreadable or corrupt records degrade to
// empty state; only store I/O failures abort construction.
func New(ctx context.Context, store Store) (*App, error) {
	return newApp(ctx, store, time.Now)
}

// NewWithClock is for deterministic timestamps in tests.
func NewWithClock(ctx context.Context, store Store, now func() time.Time) (*App, error) {
	return newApp(ctx, store, now)
}

func newApp(ctx context.Context, store Store, now func() time.Time) (*App, error) {
	a := &App{
		store: store,
		now:   now,
		newID: uuid.NewString,
	}
	if err := a.hydrate(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

// hydrate loads the persisted session and quiz list. A record that fails to
// decode reads as absent, never as an error.
func (a *App) hydrate(ctx context.Context) error {
	var (
		user    *domain.User
		quizzes []domain.Quiz
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		raw, ok, err := a.store.Get(gctx, KeyCurrentUser)
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}
		if !ok {
			return nil
		}
		var u domain.User
		if json.Unmarshal(raw, &u) == nil {
			user = &u
		}
		return nil
	})
	g.Go(func() error {
		raw, ok, err := a.store.Get(gctx, KeyQuizzes)
		if err != nil {
			return fmt.Errorf("load quizzes: %w", err)
		}
		if !ok {
			return nil
		}
		var qs []domain.Quiz
		if json.Unmarshal(raw, &qs) == nil {
			quizzes = qs
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	a.mu.Lock()
	a.user = user
	a.quizzes = quizzes
	a.mu.Unlock()
	return nil
}

// persist JSON-encodes v and writes it under key.
func (a *App) persist(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := a.store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}
