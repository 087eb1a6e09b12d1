package report

import (
	"encoding/json"
	"io"

	"github.com/shnogeorgiev/Horizon/internal/model"
)

// JSONWriter outputs the classified collections in JSON format.
// This format is designed for tool integration and programmatic processing.
//
// Design decision: We use standard encoding/json rather than a third-party
// JSON library because:
// 1. It's part of the standard library (no extra dependencies)
// 2. It's sufficient for our needs
// 3. It provides consistent behavior across Go versions
type JSONWriter struct {
	baseWriter

	meta Metadata
}

// JSONExport is the wire shape of the JSON output: document metadata,
// the severity tally, and the classified collections.
type JSONExport struct {
	Metadata Metadata `json:"metadata"`

	// Summary maps severity names to finding counts.
	Summary map[string]int `json:"summary"`

	Collections *model.Collections `json:"collections"`
}

// NewWriter creates a writer for the requested format. JSON output carries
// the classified collections; everything else gets the assembled document.
func NewWriter(output io.Writer, asJSON bool, opts ...Option) Writer {
	if asJSON {
		return NewJSONWriter(output, opts...)
	}
	return NewMarkdownWriter(output, opts...)
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
// Assembly options are accepted so metadata flags apply to both formats.
func NewJSONWriter(output io.Writer, opts ...Option) *JSONWriter {
	return &JSONWriter{
		baseWriter: newBaseWriter(output),
		meta:       NewAssembler(opts...).Metadata(),
	}
}

// Write outputs the collections as indented JSON.
func (w *JSONWriter) Write(c *model.Collections) (int, error) {
	export := JSONExport{
		Metadata:    w.meta,
		Summary:     SeveritySummary(c.Vulns),
		Collections: c,
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return 0, err
	}

	// Trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}

// SeveritySummary tallies vulnerability records into a map keyed by
// lower-cased severity name, the shape the export archive stores.
func SeveritySummary(vulns []model.Record) map[string]int {
	counts := model.CountBySeverity(vulns)
	summary := make(map[string]int, len(counts))
	for s := model.SeverityInfo; s <= model.SeverityCritical; s++ {
		summary[severityKey(s)] = counts[s]
	}
	return summary
}

// severityKey is the stable lower-case key used in JSON output and the
// export archive.
func severityKey(s model.Severity) string {
	switch s {
	case model.SeverityCritical:
		return "critical"
	case model.SeverityHigh:
		return "high"
	case model.SeverityMedium:
		return "medium"
	case model.SeverityLow:
		return "low"
	default:
		return "info"
	}
}
