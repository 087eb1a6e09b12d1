package report

import (
	"io"

	"github.com/shnogeorgiev/Horizon/internal/model"
)

// Writer defines the interface for report output.
// Implementations render classified record collections in various formats.
//
// Design decision: We use an interface to allow different output formats
// and destinations. This enables writing to files, stdout, or network
// connections with the same API.
type Writer interface {
	// Write renders the collections and outputs the result to the
	// configured destination. Returns the number of bytes written and
	// any error encountered.
	Write(c *model.Collections) (int, error)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// MarkdownWriter outputs the assembled report document.
// This is the primary output format, consumed by the downstream typesetter.
type MarkdownWriter struct {
	baseWriter

	assembler *Assembler
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given
// writer, assembling the document with the given options.
func NewMarkdownWriter(output io.Writer, opts ...Option) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
		assembler:  NewAssembler(opts...),
	}
}

// Write assembles the document and writes it verbatim.
func (w *MarkdownWriter) Write(c *model.Collections) (int, error) {
	return io.WriteString(w.output, w.assembler.Assemble(c))
}

// Assemble exposes the underlying document assembly, for callers that need
// the document text itself (archiving, tests) rather than a write.
func (w *MarkdownWriter) Assemble(c *model.Collections) string {
	return w.assembler.Assemble(c)
}
