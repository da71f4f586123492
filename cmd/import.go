package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"lbimport/core/reconcile"
	"lbimport/feature/launchbox"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// importOptions holds the flags of the import command.
type importOptions struct {
	dryRun    bool
	threshold float64
	json      bool
}

var importFlags importOptions

// importCmd imports LaunchBox metadata into the game database.
var importCmd = &cobra.Command{
	Use:   "import <launchbox.xml> [games.dat]",
	Short: "Import publisher, year and genre from a LaunchBox export",
	Long: `Import metadata from a LaunchBox XML export into GAMES.DAT.

Only empty fields are filled. The original database is saved to GAMES.DAT.bak
before it is rewritten, and the LaunchBox ids of every matched record are saved
to LBMAP.DAT so later imports match them exactly.

Examples:
  # Preview without writing anything
  lbimport import MS-DOS.xml GAMES.DAT --dry-run

  # Import with a stricter title match
  lbimport import MS-DOS.xml --threshold 0.9

  # Machine readable plan
  lbimport import MS-DOS.xml --dry-run --json`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(cmd, args, importFlags)
	},
}

func init() {
	importCmd.Flags().BoolVar(&importFlags.dryRun, "dry-run", false, "Match and report without writing any file")
	importCmd.Flags().Float64Var(&importFlags.threshold, "threshold", 0, "Minimum title similarity for a fuzzy match (default from config, 0.8)")
	importCmd.Flags().BoolVar(&importFlags.json, "json", false, "Print the plan as JSON instead of the text report")

	RootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string, flags importOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	env, err := loadEnvironment()
	if err != nil {
		return err
	}
	l := env.log
	defer func() { _ = l.Sync() }()

	threshold := env.cfg.Match.Threshold
	if flags.threshold > 0 {
		threshold = flags.threshold
	}
	if threshold <= 0 || threshold > 1 {
		return fmt.Errorf("threshold must be in (0, 1], got %v", threshold)
	}

	dbPath := env.databasePath(args, 1)
	adapter := launchbox.NewAdapter(args[0])
	spec := &reconcile.Spec{
		Adapter:      adapter,
		DatabasePath: dbPath,
		MappingPath:  env.cfg.Database.MappingPath(dbPath),
		BackupPath:   env.cfg.Database.BackupPath(dbPath),
	}

	opts := reconcile.Options{
		DryRun:    flags.dryRun,
		Threshold: threshold,
	}

	l.Info("Planning import",
		zap.String("catalog", spec.Adapter.Path()),
		zap.String("database", spec.DatabasePath),
		zap.String("mappings", spec.MappingPath),
		zap.Float64("threshold", threshold),
	)

	plan, err := reconcile.ImportWithPlan(ctx, spec, env.client, opts)
	if err != nil {
		return fmt.Errorf("failed to plan import: %w", err)
	}

	stats := adapter.Stats()
	l.Info("Catalog loaded",
		zap.Int("games", stats.Games),
		zap.Int("entries", stats.Entries),
		zap.Int("untitled", stats.Untitled),
		zap.Int("duplicates", stats.Duplicates),
		zap.Int("prior_mappings", plan.Summary.PriorMappings),
		zap.Int("records", plan.Summary.Records),
	)
	if stats.InvalidIDs > 0 || stats.InvalidGUIDs > 0 {
		l.Warn("Catalog has malformed identifiers",
			zap.Int("invalid_ids", stats.InvalidIDs),
			zap.Int("invalid_guids", stats.InvalidGUIDs),
		)
	}
	for _, w := range plan.Warnings {
		l.Warn(w)
	}

	out := cmd.OutOrStdout()
	if flags.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(plan); err != nil {
			return fmt.Errorf("failed to encode plan: %w", err)
		}
	} else {
		writeImportReport(out, plan)
	}

	if flags.dryRun {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}

	written, err := reconcile.ApplyPlan(ctx, spec, env.client, plan, opts)
	if err != nil {
		return fmt.Errorf("failed to apply import: %w", err)
	}

	l.Info("Import complete",
		zap.Int("files_written", written),
		zap.String("backup", spec.BackupPath),
		zap.Int("updated", plan.Summary.Updated),
		zap.Int("mappings", plan.Summary.Mappings),
	)
	return nil
}
