package app

import (
	"math"
	"time"

	"quizdeck/internal/domain"
)

// Attempt tracks one pass through a quiz: the selected option per question and
// the wall-clock start time. Attempts live only in memory.
type Attempt struct {
	quiz      domain.Quiz
	answers   []int
	startedAt time.Time
	now       func() time.Time
}

// NewAttempt starts an attempt with every question unanswered (-1).
func NewAttempt(quiz domain.Quiz) *Attempt {
	return newAttemptWithClock(quiz, time.Now)
}

// NewAttemptWithClock allows deterministic timing in tests.
func NewAttemptWithClock(quiz domain.Quiz, now func() time.Time) *Attempt {
	return newAttemptWithClock(quiz, now)
}

func newAttemptWithClock(quiz domain.Quiz, now func() time.Time) *Attempt {
	answers := make([]int, len(quiz.Questions))
	for i := range answers {
		answers[i] = -1
	}
	return &Attempt{
		quiz:      quiz,
		answers:   answers,
		startedAt: now(),
		now:       now,
	}
}

// Select records the chosen option for a question. Out-of-range question
// indices are ignored.
func (t *Attempt) Select(question, option int) {
	if question < 0 || question >= len(t.answers) {
		return
	}
	t.answers[question] = option
}

// Answered counts the questions with a selection.
func (t *Attempt) Answered() int {
	n := 0
	for _, answer := range t.answers {
		if answer != -1 {
			n++
		}
	}
	return n
}

// Answers returns a copy of the answer sheet.
func (t *Attempt) Answers() []int {
	return append([]int(nil), t.answers...)
}

// Finish scores the attempt. Unanswered questions (-1) never match. TimeTaken
// is the elapsed wall-clock time in seconds, rounded to the nearest second.
func (t *Attempt) Finish() domain.QuizResult {
	score := 0
	for i, q := range t.quiz.Questions {
		if t.answers[i] == q.CorrectAnswer {
			score++
		}
	}
	elapsed := t.now().Sub(t.startedAt)
	return domain.QuizResult{
		Quiz:           t.quiz,
		Answers:        t.Answers(),
		Score:          score,
		TotalQuestions: len(t.quiz.Questions),
		TimeTaken:      int(math.Round(elapsed.Seconds())),
	}
}
