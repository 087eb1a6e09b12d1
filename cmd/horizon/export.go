package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/shnogeorgiev/Horizon/internal/config"
	"github.com/shnogeorgiev/Horizon/internal/database"
	"github.com/shnogeorgiev/Horizon/internal/log"
	"github.com/shnogeorgiev/Horizon/internal/model"
	"github.com/shnogeorgiev/Horizon/internal/report"
	"github.com/spf13/cobra"
)

// NewExportCmd creates the export command.
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <graph.json>",
		Short: "Assemble a report from an exported engagement graph",
		Long: `Export loads an engagement graph (JSON), classifies its typed records,
and assembles the penetration test report document.

The document is Pandoc Markdown with embedded raw LaTeX blocks: severity
summary tables, per-finding detail sections ordered by CVSS, lettered
appendices, and an artifact cleanup checklist.

Examples:
  # Write the report next to the graph
  horizon export engagement.json -o report.md

  # Print the report to stdout
  horizon export engagement.json

  # Override document metadata
  horizon export engagement.json --title "ACME Corp Pentest" --author "Red Team"

  # Emit the classified records as JSON instead of the document
  horizon export --json engagement.json

  # Use a custom configuration file
  horizon export -c myconfig.yaml engagement.json

Configuration file (.horizon) example:
  report:
    title: "ACME Corp Pentest"
    author: "Red Team"
    cellWidth: 70
    evidenceDir: Evidence`,
		Args: cobra.ExactArgs(1),
		RunE: runExportCmd,
	}

	// Report flags
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().BoolP("json", "j", false,
		"Output classified records as JSON instead of the document")
	cmd.Flags().String("title", "",
		"Document title for the metadata preamble")
	cmd.Flags().String("author", "",
		"Document author for the metadata preamble")
	cmd.Flags().String("date", "",
		"Document date for the metadata preamble (default: today)")
	cmd.Flags().Int("cell-width", config.DefaultCellWidth,
		"Maximum width of compacted table cells")
	cmd.Flags().String("evidence-dir", config.DefaultEvidenceDir,
		"Evidence directory name used in conditional image blocks")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .horizon in current or home directory)")

	// Archive flags
	cmd.Flags().Bool("no-archive", false,
		"Skip archiving the generated document to the local database")

	return cmd
}

// runExportCmd executes the export command.
func runExportCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging with credential redaction
	logger := log.NewSecureLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runExport(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from the config file and cobra command flags.
// The config file applies first; flags the user actually set win over it.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.GraphPath = args[0]

	var err error

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load report settings from config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently skip when no file is found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cf.Apply(cfg)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	if cmd.Flags().Changed("title") {
		if cfg.Title, err = cmd.Flags().GetString("title"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("author") {
		if cfg.Author, err = cmd.Flags().GetString("author"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("date") {
		if cfg.Date, err = cmd.Flags().GetString("date"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("cell-width") {
		if cfg.CellWidth, err = cmd.Flags().GetInt("cell-width"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("evidence-dir") {
		if cfg.EvidenceDir, err = cmd.Flags().GetString("evidence-dir"); err != nil {
			return nil, err
		}
	}

	cfg.OutputFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	noArchive, err := cmd.Flags().GetBool("no-archive")
	if err != nil {
		return nil, err
	}
	cfg.SaveToDB = !noArchive
	cfg.DBDir = config.XDGDataDir()

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// runExport executes the export.
func runExport(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting export",
		"graph", cfg.GraphPath,
		"output", cfg.OutputFile,
		"json", cfg.JSONReport,
		"saveToDB", cfg.SaveToDB,
	)

	data, err := os.ReadFile(cfg.GraphPath) //nolint:gosec // User-provided graph path is intentional
	if err != nil {
		return fmt.Errorf("failed to read graph file: %w", err)
	}

	records, err := model.ParseGraph(data)
	if err != nil {
		return err
	}

	collections := model.Classify(records)
	logger.Debug("graph classified",
		"records", len(records),
		"hosts", len(collections.Hosts),
		"vulns", len(collections.Vulns),
	)

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	output, closeOutput, err := openOutput(cfg.OutputFile)
	if err != nil {
		return err
	}
	defer closeOutput()

	opts := assemblerOptions(cfg)

	// JSON output (classified records, no document assembly)
	if cfg.JSONReport {
		writer := report.NewJSONWriter(output, opts...)
		if _, err := writer.Write(collections); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		return nil
	}

	writer := report.NewMarkdownWriter(output, opts...)
	document := writer.Assemble(collections)
	if _, err := io.WriteString(output, document); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if cfg.OutputFile != "" {
		fmt.Printf("Report written to %s\n", cfg.OutputFile)
	}

	if cfg.SaveToDB {
		if err := archiveExport(ctx, cfg, document, collections, logger); err != nil {
			logger.Error("failed to archive export", "error", err)
		}
	}

	return nil
}

// assemblerOptions converts the config into report assembly options.
func assemblerOptions(cfg *config.Config) []report.Option {
	meta := report.Metadata{
		Title:  cfg.Title,
		Author: cfg.Author,
		Date:   cfg.Date,
	}
	return []report.Option{
		report.WithMetadata(meta),
		report.WithCellWidth(cfg.CellWidth),
		report.WithEvidenceDir(cfg.EvidenceDir),
	}
}

// openOutput resolves the report destination. An empty path means stdout.
// Reports may contain sensitive information, so files are created with
// owner-only permissions.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// archiveExport saves the assembled document to the local archive keyed by
// the graph file's base name.
func archiveExport(ctx context.Context, cfg *config.Config, document string, c *model.Collections, logger *slog.Logger) error {
	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer db.Close()

	target := targetName(cfg.GraphPath)
	if err := db.SaveExport(ctx, target, document, report.SeveritySummary(c.Vulns)); err != nil {
		return err
	}

	logger.Info("export archived", "target", target, "dir", cfg.DBDir)
	return nil
}

// targetName derives the archive target name from the graph file path.
func targetName(graphPath string) string {
	base := filepath.Base(graphPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
