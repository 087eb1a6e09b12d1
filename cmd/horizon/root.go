// Package main provides the entry point for the Horizon CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for Horizon.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "horizon",
		Short: "Assemble penetration test reports from engagement graphs",
		Long: `Horizon assembles a Pandoc Markdown penetration test report from an
exported engagement graph (JSON). Hosts, findings, credentials, hashes,
flags, and captured artifacts are classified, ordered by CVSS, and laid
out as narrative sections, full-width LaTeX tables, and appendices.

The emitted document is meant to be typeset with Pandoc into a PDF.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewExportCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
