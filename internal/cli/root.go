package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	backend    string
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	envConfig := os.Getenv("QUIZDECK_CONFIG")
	if envConfig == "" {
		envConfig = "config/config.yaml"
	}
	envBackend := os.Getenv("QUIZDECK_STORAGE")

	cmd := &cobra.Command{
		Use:   "quizdeck",
		Short: "Author and take multiple-choice quizzes stored locally",
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", envConfig, "path to YAML config")
	cmd.PersistentFlags().StringVar(&backend, "storage", envBackend, "storage backend: sqlite, redis or memory")
	cmd.AddCommand(NewMigrateCmd(&configPath))
	cmd.AddCommand(NewRegisterCmd(&configPath, &backend))
	cmd.AddCommand(NewLoginCmd(&configPath, &backend))
	cmd.AddCommand(NewLogoutCmd(&configPath, &backend))
	cmd.AddCommand(NewWhoamiCmd(&configPath, &backend))
	cmd.AddCommand(NewCreateCmd(&configPath, &backend))
	cmd.AddCommand(NewListCmd(&configPath, &backend))
	cmd.AddCommand(NewTakeCmd(&configPath, &backend))
	return cmd
}
