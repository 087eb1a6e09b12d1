package main

import (
	"fmt"
	"strconv"

	"github.com/shnogeorgiev/Horizon/internal/config"
	"github.com/shnogeorgiev/Horizon/internal/database"
	"github.com/shnogeorgiev/Horizon/internal/render"
	"github.com/spf13/cobra"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [target]",
		Short: "List archived exports",
		Long: `History lists exports archived by previous runs.

Without arguments, it lists the known target names. With a target name,
it lists that target's exports newest first, including the severity tally
recorded at export time.

Examples:
  # List all archived targets
  horizon history

  # List exports for a target
  horizon history engagement

  # Print an archived document by its ID
  horizon history engagement --show 3`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistoryCmd,
	}

	cmd.Flags().Int64("show", 0,
		"Print the archived document with the given ID")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, args []string) error {
	// The archive is never created here; an absent archive means no
	// exports have been made yet.
	db, err := database.Open(config.XDGDataDir(), database.Options{
		CreateIfNotExists: false,
		EnableWAL:         true,
	})
	if err != nil {
		return fmt.Errorf("no export archive found (run 'horizon export' first): %w", err)
	}
	defer db.Close()

	showID, err := cmd.Flags().GetInt64("show")
	if err != nil {
		return err
	}
	if showID > 0 {
		document, err := db.GetExport(cmd.Context(), showID)
		if err != nil {
			return err
		}
		if document == "" {
			return fmt.Errorf("no archived export with ID %d", showID)
		}
		fmt.Fprint(cmd.OutOrStdout(), document)
		return nil
	}

	if len(args) == 0 {
		return listTargets(cmd, db)
	}
	return listHistory(cmd, db, args[0])
}

// listTargets prints the distinct target names in the archive.
func listTargets(cmd *cobra.Command, db *database.ArchiveDB) error {
	targets, err := db.ListTargets(cmd.Context())
	if err != nil {
		return err
	}

	if len(targets) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No archived exports.")
		return nil
	}

	for _, target := range targets {
		fmt.Fprintln(cmd.OutOrStdout(), target)
	}
	return nil
}

// listHistory prints the export history of a target as a table.
func listHistory(cmd *cobra.Command, db *database.ArchiveDB, target string) error {
	history, err := db.History(cmd.Context(), target)
	if err != nil {
		return err
	}

	if len(history) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No archived exports for %s.\n", target)
		return nil
	}

	rows := make([][]string, 0, len(history))
	for _, meta := range history {
		rows = append(rows, []string{
			strconv.FormatInt(meta.ID, 10),
			meta.Timestamp.Format("2006-01-02 15:04:05"),
			strconv.Itoa(meta.SeveritySummary["critical"]),
			strconv.Itoa(meta.SeveritySummary["high"]),
			strconv.Itoa(meta.SeveritySummary["medium"]),
			strconv.Itoa(meta.SeveritySummary["low"]),
			strconv.Itoa(meta.SeveritySummary["info"]),
		})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exports for %s:\n\n", target)
	fmt.Fprint(cmd.OutOrStdout(), render.MarkdownTable(
		[]string{"ID", "Timestamp", "Critical", "High", "Medium", "Low", "Info"},
		rows,
	))
	return nil
}
