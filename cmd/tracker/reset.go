package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/storage"
)

var resetConfirmed bool

// resetCmd deletes the local database, including every account.
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the local database file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup(cmd)
		if err != nil {
			return report(err)
		}
		defer syncLogger(log)

		if !resetConfirmed {
			return report(errors.New("reset deletes every account and all study data; re-run with --yes to confirm"))
		}
		if err := storage.Remove(cfg.DatabasePath); err != nil {
			return report(err)
		}
		log.Info(cmd.Context(), "database removed", "path", cfg.DatabasePath)
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", cfg.DatabasePath)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetConfirmed, "yes", false, "confirm deletion")
	rootCmd.AddCommand(resetCmd)
}
