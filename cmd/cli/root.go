package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/amirasaad/ledger/infra"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	dbURL   string
	envFile string
	verbose bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ledger-cli",
		Short:         "Ledger maintenance commands",
		Long:          "Apply schema migrations and manage ledger users without going through the HTTP API.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !verbose {
				slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
			}
		},
	}
	root.PersistentFlags().StringVar(&dbURL, "db", config.GetEnv("DATABASE_URL", ""), "Database connection URL")
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file to load")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", config.GetEnvAsBool("LEDGER_CLI_VERBOSE", false), "Verbose output")

	root.AddCommand(newMigrateCmd(), newUserCmd(), newEventsCmd())
	return root
}

// openDB connects using --db, falling back to the loaded configuration.
func openDB() (*gorm.DB, error) {
	dbCfg := &config.DB{Url: dbURL}
	if !config.IsEnvSet("DATABASE_URL") && dbURL == "" {
		cfg, err := config.Load(envFile)
		if err != nil {
			return nil, fmt.Errorf("load configuration: %w", err)
		}
		dbCfg = cfg.DB
	}
	if dbCfg.Url == "" {
		return nil, fmt.Errorf("no database configured: pass --db or set DATABASE_URL")
	}
	return infra.NewDBConnection(dbCfg, config.GetEnv("APP_ENV", "development"))
}
