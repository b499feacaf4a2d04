package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hartswf0/abundant-nes/internal/config"
	"github.com/hartswf0/abundant-nes/internal/logging"
	"github.com/hartswf0/abundant-nes/internal/manifest"
	"github.com/hartswf0/abundant-nes/internal/output"
	"github.com/hartswf0/abundant-nes/internal/scan"
	"github.com/hartswf0/abundant-nes/internal/summary"
)

func newGenerateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "generate [dir]",
		Short: "Scan a directory of HTML files and write its manifests",
		Long: `Scan a directory for *.html files, derive a deterministic identifier for
each from its filename, and write the mapping to manifest.csv and
manifest.json inside that directory. Existing manifest files are fully
overwritten.

Examples:
  manifest generate            # operate on the current directory
  manifest generate ./site     # operate on ./site`,
		Args: cobra.MaximumNArgs(1),
		RunE: runGenerate,
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		dir = args[0]
	}

	cfg, overridden, err := config.Load(dir)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	logger = logger.With(logging.String(logging.FieldRunID, uuid.NewString()))

	if overridden {
		logger.Debug("configuration overrides applied", logging.String("config", config.FileName))
	}
	logger.Info("scanning HTML files", logging.String(logging.FieldDirectory, dir))

	files, err := scan.HTMLFiles(dir, cfg.Scan.MatchUppercaseExtensions)
	if err != nil {
		return fmt.Errorf("scan %s: %w", dir, err)
	}

	records := manifest.Build(files)

	csvPath, jsonPath, err := output.Write(dir, cfg.Output.CSVName, cfg.Output.JSONName, records)
	if err != nil {
		return fmt.Errorf("write manifests: %w", err)
	}
	logger.Info("manifest files created",
		logging.String("csv", csvPath),
		logging.String("json", jsonPath),
		logging.Int("records", len(records)),
	)

	summary.Print(cmd.OutOrStdout(), records, summary.Options{
		EntryLimit:  cfg.Summary.EntryLimit,
		IDWidth:     cfg.Summary.IDWidth,
		TopPrefixes: cfg.Summary.TopPrefixes,
	})
	return nil
}
