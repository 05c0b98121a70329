package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/buildinfo"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/cli"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/config"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/logging"
)

// rootCmd runs the interactive tracker.
var rootCmd = &cobra.Command{
	Use:   "tracker",
	Short: "Local CA Final study tracker",
	Long: `Plan chapters, log study hours and track SPOM mock exams for the
CA Final. Data lives in a local SQLite file. Usage:

	tracker [-d tracker.db] [-f]
`,
	Version:       buildinfo.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup(cmd)
		if err != nil {
			return report(err)
		}
		defer syncLogger(log)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		app, err := cli.NewApp(ctx, cfg, log)
		if err != nil {
			return report(fmt.Errorf("failed to start: %w", err))
		}
		defer func() {
			if err := app.Close(context.WithoutCancel(ctx)); err != nil {
				log.Error(ctx, "error closing app", "error", err)
			}
		}()

		app.Run(ctx)
		return nil
	},
}

func init() {
	rootCmd.SetVersionTemplate(buildinfo.String() + "\n")

	f := rootCmd.PersistentFlags()
	f.StringP("config", "c", "", "path to a JSON config file")
	f.StringP("db", "d", "tracker.db", "path of the local database file")
	f.IntP("debounce", "w", 1000, "save debounce in milliseconds")
	f.StringP("log-level", "l", "warn", "log level (debug, info, warn, error)")
	f.StringP("log-backend", "b", logging.BackendSlog, "log backend (slog or zap)")
	f.BoolP("flush-on-logout", "f", false, "write unsaved changes on logout")
	f.BoolP("seed-demo", "s", true, "create the demo account if missing")
}

// configFlags are the persistent flags handed on to config.LoadConfig.
var configFlags = []string{"config", "db", "debounce", "log-level", "log-backend", "flush-on-logout", "seed-demo"}

// configArgs renders the config flags cobra saw on the command line in the
// long --name=value form the config loader parses. Unset flags are left out
// so the JSON file and environment still apply.
func configArgs(cmd *cobra.Command) []string {
	var args []string
	for _, name := range configFlags {
		if !cmd.Flags().Changed(name) {
			continue
		}
		args = append(args, "--"+name+"="+cmd.Flags().Lookup(name).Value.String())
	}
	return args
}

func setup(cmd *cobra.Command) (*config.Config, logging.Logger, error) {
	cfg, err := config.LoadConfig(configArgs(cmd))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	log, err := logging.New(cfg.LogBackend, cfg.LogLevel, os.Stderr)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

func syncLogger(log logging.Logger) {
	if s, ok := log.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
}

func report(err error) error {
	fmt.Fprintln(os.Stderr, err)
	return err
}
