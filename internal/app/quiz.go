package app

import (
	"context"
	"time"

	"quizdeck/internal/domain"
)

// CreateQuiz stamps a new quiz with an id, author and creation time, appends
// it and persists the full list. Without an active session the call is a
// silent no-op.
func (a *App) CreateQuiz(ctx context.Context, title, description string, questions []domain.Question) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.user == nil {
		return nil
	}

	quiz := domain.Quiz{
		ID:          a.newID(),
		Title:       title,
		Description: description,
		Questions:   questions,
		CreatedBy:   a.user.ID,
		CreatedAt:   a.now().UTC().Format(time.RFC3339),
	}

	updated := append(append([]domain.Quiz(nil), a.quizzes...), quiz)
	if err := a.persist(ctx, KeyQuizzes, updated); err != nil {
		return err
	}
	a.quizzes = updated
	return nil
}

// Quizzes returns every stored quiz from every author, in insertion order.
func (a *App) Quizzes() []domain.Quiz {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]domain.Quiz(nil), a.quizzes...)
}

// UserQuizzes returns the quizzes authored by the current user, oldest first.
// It is empty while signed out.
func (a *App) UserQuizzes() []domain.Quiz {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.user == nil {
		return nil
	}
	var out []domain.Quiz
	for _, q := range a.quizzes {
		if q.CreatedBy == a.user.ID {
			out = append(out, q)
		}
	}
	return out
}

// QuizByID looks up a quiz for taking.
func (a *App) QuizByID(id string) (domain.Quiz, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, q := range a.quizzes {
		if q.ID == id {
			return q, true
		}
	}
	return domain.Quiz{}, false
}
