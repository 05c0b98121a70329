package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/migrations"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/repositories/repomanager"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/storage"
)

// migrateCmd represents the migrate command.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the local database and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup(cmd)
		if err != nil {
			return report(err)
		}
		defer syncLogger(log)

		ctx := cmd.Context()
		db, err := storage.Open(ctx, cfg.DatabasePath, repomanager.NewSQLiteRepositoryManager())
		if err != nil {
			return report(fmt.Errorf("migrate failed: %w", err))
		}
		defer func() { _ = db.Close() }()

		v, err := migrations.Version(context.WithoutCancel(ctx), db)
		if err != nil {
			return report(err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is at schema version %d\n", cfg.DatabasePath, v)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
