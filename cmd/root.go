package cmd

import (
	"fmt"
	"os"

	"lbimport/core/config"
	"lbimport/core/logger"
	"lbimport/core/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "lbimport",
	Short: "LaunchBox metadata importer for GAMES.DAT",
	Long: `lbimport fills missing publisher, year and genre fields of a DOS launcher
game database (GAMES.DAT) from a LaunchBox XML export.

Records are matched by previously persisted LaunchBox ids first and by title
similarity otherwise. Existing values are never overwritten.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with development config for readable CLI errors
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// environment bundles what every command needs.
type environment struct {
	cfg    *config.Config
	log    *zap.Logger
	client storage.Client
}

func loadEnvironment() (*environment, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return &environment{
		cfg:    cfg,
		log:    l,
		client: storage.NewClient(cfg.Storage),
	}, nil
}

// databasePath returns the database argument at index i, or the configured path.
func (e *environment) databasePath(args []string, i int) string {
	if len(args) > i && args[i] != "" {
		return args[i]
	}
	return e.cfg.Database.Path
}
