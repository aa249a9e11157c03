package app

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"quizdeck/internal/domain"
)

// Register creates an account and signs it in. It returns false when the email
// is already registered (exact, case-sensitive match); the stored credential
// list is left untouched in that case.
func (a *App) Register(ctx context.Context, name, email, password string) (bool, error) {
	creds, err := a.loadCredentials(ctx)
	if err != nil {
		return false, err
	}
	for _, c := range creds {
		if c.Email == email {
			return false, nil
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:        a.newID(),
		Name:      name,
		Email:     email,
		CreatedAt: a.now().UTC().Format(time.RFC3339),
	}
	creds = append(creds, domain.Credential{User: user, Password: string(hash)})

	if err := a.persist(ctx, KeyUsers, creds); err != nil {
		return false, err
	}
	return true, a.setSession(ctx, user)
}

// Login matches a stored credential and starts a session. A failed match
// returns false and leaves the current session unchanged.
func (a *App) Login(ctx context.Context, email, password string) (bool, error) {
	creds, err := a.loadCredentials(ctx)
	if err != nil {
		return false, err
	}
	for _, c := range creds {
		if c.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(c.Password), []byte(password)) != nil {
			continue
		}
		if err := a.setSession(ctx, c.User); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

// Logout clears the session in memory and in the store. Calling it while
// signed out is a no-op.
func (a *App) Logout(ctx context.Context) error {
	a.mu.Lock()
	a.user = nil
	a.mu.Unlock()
	if err := a.store.Delete(ctx, KeyCurrentUser); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// CurrentUser returns a copy of the signed-in user, or nil.
func (a *App) CurrentUser() *domain.User {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.user == nil {
		return nil
	}
	u := *a.user
	return &u
}

// IsAuthenticated reports whether a session is active.
func (a *App) IsAuthenticated() bool {
	return a.CurrentUser() != nil
}

// loadCredentials reads the stored credential list. Corrupt data degrades to
// an empty list.
func (a *App) loadCredentials(ctx context.Context) ([]domain.Credential, error) {
	raw, ok, err := a.store.Get(ctx, KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("load credentials: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var creds []domain.Credential
	if err := json.Unmarshal(raw, &creds); err != nil {
		return nil, nil
	}
	return creds, nil
}

// setSession persists the session record and then swaps the in-memory user.
// The persisted user carries no password material.
func (a *App) setSession(ctx context.Context, user domain.User) error {
	if err := a.persist(ctx, KeyCurrentUser, user); err != nil {
		return err
	}
	a.mu.Lock()
	a.user = &user
	a.mu.Unlock()
	return nil
}
