package domain

import "errors"

var (
	// ErrEmptyQuestion is returned when a question has no text after trimming.
	ErrEmptyQuestion = errors.New("question text is empty")
	// ErrTooFewOptions is returned when fewer than 2 option slots are filled.
	ErrTooFewOptions = errors.New("question needs at least 2 options")
	// ErrTooManyOptions is returned when more than 4 option slots are given.
	ErrTooManyOptions = errors.New("question allows at most 4 options")
	// ErrCorrectAnswerRange is returned when the correct-answer index does not
	// point into the filled options.
	ErrCorrectAnswerRange = errors.New("correct answer is out of range")
	// ErrEmptyTitle is returned when a quiz draft has no title after trimming.
	ErrEmptyTitle = errors.New("quiz title is empty")
	// ErrNoQuestions is returned when a quiz draft holds no accepted questions.
	ErrNoQuestions = errors.New("quiz has no questions")
	// ErrQuizNotFound indicates the requested quiz does not exist.
	ErrQuizNotFound = errors.New("quiz not found")
)
