package app_test

import (
	"context"
	"errors"
	"testing"

	"quizdeck/internal/domain"
	"quizdeck/internal/infra/memory"
)

func TestAddQuestionRejectsInvalidInput(t *testing.T) {
	a := newTestApp(t, memory.NewStore())
	d := a.NewDraft("Math", "")

	cases := []struct {
		name    string
		text    string
		options []string
		correct int
		wantErr error
	}{
		{"empty text", "   ", []string{"3", "4"}, 0, domain.ErrEmptyQuestion},
		{"blank options", "2+2?", []string{" ", "", "4"}, 0, domain.ErrTooFewOptions},
		{"too many options", "2+2?", []string{"1", "2", "3", "4", "5"}, 0, domain.ErrTooManyOptions},
		{"correct past filtered range", "2+2?", []string{"3", "4"}, 2, domain.ErrCorrectAnswerRange},
		{"negative correct", "2+2?", []string{"3", "4"}, -1, domain.ErrCorrectAnswerRange},
	}
	for _, tc := range cases {
		if err := d.AddQuestion(tc.text, tc.options, tc.correct); !errors.Is(err, tc.wantErr) {
			t.Fatalf("%s: got %v, want %v", tc.name, err, tc.wantErr)
		}
	}
	if len(d.Questions()) != 0 {
		t.Fatalf("rejected questions must not mutate the draft, got %d", len(d.Questions()))
	}
}

func TestAddQuestionTrimsAndFilters(t *testing.T) {
	a := newTestApp(t, memory.NewStore())
	d := a.NewDraft("Math", "")

	if err := d.AddQuestion("  2+2?  ", []string{"3", "  ", "4", ""}, 1); err != nil {
		t.Fatalf("add question: %v", err)
	}
	qs := d.Questions()
	if len(qs) != 1 {
		t.Fatalf("expected 1 question, got %d", len(qs))
	}
	q := qs[0]
	if q.Question != "2+2?" {
		t.Fatalf("question text not trimmed: %q", q.Question)
	}
	if len(q.Options) != 2 || q.Options[0] != "3" || q.Options[1] != "4" {
		t.Fatalf("blank options not filtered: %+v", q.Options)
	}
	if q.CorrectAnswer != 1 {
		t.Fatalf("correct answer shifted: %d", q.CorrectAnswer)
	}
	if q.ID == "" {
		t.Fatalf("question id not assigned")
	}
}

func TestRemoveQuestion(t *testing.T) {
	a := newTestApp(t, memory.NewStore())
	d := a.NewDraft("Math", "")

	if err := d.AddQuestion("first?", []string{"a", "b"}, 0); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := d.AddQuestion("second?", []string{"a", "b"}, 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	d.RemoveQuestion(d.Questions()[0].ID)
	qs := d.Questions()
	if len(qs) != 1 || qs[0].Question != "second?" {
		t.Fatalf("remove left %+v", qs)
	}

	d.RemoveQuestion("unknown")
	if len(d.Questions()) != 1 {
		t.Fatalf("removing an unknown id must be a no-op")
	}
}

func TestSaveDraftValidatesWholeQuiz(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(t, memory.NewStore())
	if ok, _ := a.Register(ctx, "Ada", "ada@x.com", "pw1"); !ok {
		t.Fatalf("register failed")
	}

	empty := a.NewDraft("  ", "")
	if err := empty.AddQuestion("2+2?", []string{"3", "4"}, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := a.SaveDraft(ctx, empty); !errors.Is(err, domain.ErrEmptyTitle) {
		t.Fatalf("blank title: got %v", err)
	}

	noQuestions := a.NewDraft("Math", "")
	if err := a.SaveDraft(ctx, noQuestions); !errors.Is(err, domain.ErrNoQuestions) {
		t.Fatalf("no questions: got %v", err)
	}

	valid := a.NewDraft("  Math  ", " arithmetic ")
	if err := valid.AddQuestion("2+2?", []string{"3", "4"}, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := a.SaveDraft(ctx, valid); err != nil {
		t.Fatalf("save: %v", err)
	}

	quizzes := a.UserQuizzes()
	if len(quizzes) != 1 || quizzes[0].Title != "Math" || quizzes[0].Description != "arithmetic" {
		t.Fatalf("saved quiz mismatch: %+v", quizzes)
	}
}

func TestSaveDraftWithoutSessionIsSkipped(t *testing.T) {
	ctx := context.Background()
	a := newTestApp(t, memory.NewStore())

	d := a.NewDraft("Math", "")
	if err := d.AddQuestion("2+2?", []string{"3", "4"}, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := a.SaveDraft(ctx, d); err != nil {
		t.Fatalf("save without session must be silent, got %v", err)
	}
	if len(a.Quizzes()) != 0 {
		t.Fatalf("quiz stored without a session")
	}
}
