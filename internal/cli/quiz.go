package cli

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"quizdeck/internal/app"
	"quizdeck/internal/domain"
)

// draftFile is the on-disk YAML shape for `create`.
type draftFile struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Questions   []struct {
		Question      string   `yaml:"question"`
		Options       []string `yaml:"options"`
		CorrectAnswer int      `yaml:"correctAnswer"`
	} `yaml:"questions"`
}

// NewCreateCmd builds a quiz from a YAML draft file.
func NewCreateCmd(configPath, backend *string) *cobra.Command {
	return &cobra.Command{
		Use:   "create <draft.yaml>",
		Short: "Create a quiz from a YAML draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(cmd.Context(), *configPath, *backend)
			if err != nil {
				return err
			}
			defer cleanup()

			if !a.IsAuthenticated() {
				return fmt.Errorf("sign in before creating a quiz")
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var df draftFile
			if err := yaml.Unmarshal(data, &df); err != nil {
				return fmt.Errorf("parse draft: %w", err)
			}

			draft := a.NewDraft(df.Title, df.Description)
			for i, q := range df.Questions {
				if err := draft.AddQuestion(q.Question, q.Options, q.CorrectAnswer); err != nil {
					return fmt.Errorf("question %d: %w", i+1, err)
				}
			}
			if err := a.SaveDraft(cmd.Context(), draft); err != nil {
				return err
			}
			log.Printf("created quiz %q with %d questions", strings.TrimSpace(df.Title), len(df.Questions))
			return nil
		},
	}
}

// NewListCmd prints stored quizzes.
func NewListCmd(configPath, backend *string) *cobra.Command {
	var mine bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quizzes",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(cmd.Context(), *configPath, *backend)
			if err != nil {
				return err
			}
			defer cleanup()

			quizzes := a.Quizzes()
			if mine {
				quizzes = a.UserQuizzes()
			}
			if len(quizzes) == 0 {
				fmt.Println("no quizzes")
				return nil
			}
			for _, q := range quizzes {
				fmt.Printf("%s  %-24s  %d questions  created %s\n", q.ID, q.Title, len(q.Questions), q.CreatedAt)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&mine, "mine", false, "only quizzes authored by the signed-in user")
	return cmd
}

// NewTakeCmd takes a quiz in one shot and prints the scored result.
func NewTakeCmd(configPath, backend *string) *cobra.Command {
	var answersFlag string
	cmd := &cobra.Command{
		Use:   "take <quiz-id>",
		Short: "Take a quiz and print the scored result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := openApp(cmd.Context(), *configPath, *backend)
			if err != nil {
				return err
			}
			defer cleanup()

			quiz, ok := a.QuizByID(args[0])
			if !ok {
				return domain.ErrQuizNotFound
			}

			attempt := app.NewAttempt(quiz)
			if answersFlag != "" {
				parts := strings.Split(answersFlag, ",")
				if len(parts) != len(quiz.Questions) {
					return fmt.Errorf("expected %d answers, got %d", len(quiz.Questions), len(parts))
				}
				for i, p := range parts {
					n, err := strconv.Atoi(strings.TrimSpace(p))
					if err != nil {
						return fmt.Errorf("answer %d: %w", i+1, err)
					}
					attempt.Select(i, n)
				}
			}

			result := attempt.Finish()
			fmt.Printf("%s: %d/%d in %ds\n", quiz.Title, result.Score, result.TotalQuestions, result.TimeTaken)
			for i, q := range quiz.Questions {
				mark := "x"
				if result.Answers[i] == q.CorrectAnswer {
					mark = "ok"
				}
				fmt.Printf("  [%-2s] %s\n", mark, q.Question)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&answersFlag, "answers", "", "comma-separated option indices, -1 to skip")
	return cmd
}
