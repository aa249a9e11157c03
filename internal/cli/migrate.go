package cli

import (
	"log"

	"github.com/spf13/cobra"

	"quizdeck/internal/config"
	"quizdeck/internal/infra/sqlite"
)

// NewMigrateCmd brings the SQLite schema up to date.
func NewMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run storage migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			store, err := sqlite.Open(config.Or(cfg.Storage.SQLite.Path, defaultDBPath))
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.Migrate(cmd.Context()); err != nil {
				return err
			}
			log.Printf("migrations applied")
			return nil
		},
	}
}
