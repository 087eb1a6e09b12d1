// Package main provides the entry point for the Horizon CLI.
//
// Horizon turns an exported engagement graph (hosts, findings, credentials,
// captured artifacts) into a single Pandoc Markdown report ready for PDF
// typesetting.
//
// Usage:
//
//	horizon export <graph.json>
//	horizon export --json <graph.json>
//
// See --help for all available options.
package main

// main is the entry point for Horizon.
func main() {
	Execute()
}
