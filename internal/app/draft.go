package app

import (
	"context"
	"strings"

	"quizdeck/internal/domain"
)

// Draft accumulates a quiz while it is being authored. Questions are only
// appended once they pass validation, so a Draft never holds a malformed
// question.
type Draft struct {
	Title       string
	Description string

	newID     func() string
	questions []domain.Question
}

// NewDraft starts an empty draft.
func (a *App) NewDraft(title, description string) *Draft {
	return &Draft{
		Title:       title,
		Description: description,
		newID:       a.newID,
	}
}

// AddQuestion validates one question and appends it. Option slots that are
// blank after trimming are dropped; the correct-answer index refers to the
// surviving options. A rejected question leaves the draft unchanged.
func (d *Draft) AddQuestion(text string, options []string, correctAnswer int) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.ErrEmptyQuestion
	}
	if len(options) > 4 {
		return domain.ErrTooManyOptions
	}
	filled := make([]string, 0, len(options))
	for _, opt := range options {
		if trimmed := strings.TrimSpace(opt); trimmed != "" {
			filled = append(filled, trimmed)
		}
	}
	if len(filled) < 2 {
		return domain.ErrTooFewOptions
	}
	if correctAnswer < 0 || correctAnswer >= len(filled) {
		return domain.ErrCorrectAnswerRange
	}

	d.questions = append(d.questions, domain.Question{
		ID:            d.newID(),
		Question:      text,
		Options:       filled,
		CorrectAnswer: correctAnswer,
	})
	return nil
}

// RemoveQuestion drops a draft question by id. Unknown ids are ignored.
func (d *Draft) RemoveQuestion(id string) {
	for i, q := range d.questions {
		if q.ID == id {
			d.questions = append(d.questions[:i], d.questions[i+1:]...)
			return
		}
	}
}

// Questions returns a copy of the accepted questions so far.
func (d *Draft) Questions() []domain.Question {
	return append([]domain.Question(nil), d.questions...)
}

// SaveDraft validates the draft as a whole and stores it as a quiz. The quiz
// itself is only created while a session is active.
func (a *App) SaveDraft(ctx context.Context, d *Draft) error {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return domain.ErrEmptyTitle
	}
	if len(d.questions) == 0 {
		return domain.ErrNoQuestions
	}
	return a.CreateQuiz(ctx, title, strings.TrimSpace(d.Description), d.Questions())
}
