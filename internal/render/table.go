// Package render emits the two table dialects used by the report.
//
// Markdown pipe tables are portable but unreliable for wide content once the
// document reaches the typesetter, so every listing that must stretch across
// the page (severity summaries, object counts, appendix tables) uses a raw
// LaTeX tabular* instead. Both renderers share the same headers/rows contract
// and neither validates that a row matches the header arity: rows are emitted
// as given.
package render

import (
	"io"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/shnogeorgiev/Horizon/internal/format"
)

// latexSyntax marks a fenced block as raw LaTeX for the downstream
// typesetting tool (Pandoc passes ```{=latex} blocks through verbatim).
const latexSyntax = markdown.SyntaxHighlight("{=latex}")

// MarkdownTable renders a Markdown pipe table: a header row, a delimiter
// row matching the header column count, then one row per input row.
// Cell content must already be escaped with format.MarkdownCell.
func MarkdownTable(headers []string, rows [][]string) string {
	md := markdown.NewMarkdown(io.Discard)
	md.CustomTable(markdown.TableSet{
		Header: headers,
		Rows:   rows,
	}, markdown.TableOptions{
		AutoWrapText:      false,
		AutoFormatHeaders: false,
	})
	return md.String() + "\n"
}

// LatexTable renders a full-width LaTeX table with left-aligned columns.
// Headers are emitted bold; every cell, headers included, is LaTeX-escaped
// here so callers never hand-escape for this dialect.
func LatexTable(headers []string, rows [][]string) string {
	cols := make([]string, len(headers))
	for i := range headers {
		cols[i] = "l"
	}
	return LatexTableSpec(strings.Join(cols, " "), headers, rows)
}

// LatexTableSpec renders a full-width LaTeX table with an explicit column
// specification, for the rare table that is not all left-aligned (the
// object count summary right-aligns its numbers).
//
// The tabular* environment is stretched to \textwidth with an elastic
// inter-column separator, which keeps wide tables stable regardless of
// content width.
func LatexTableSpec(spec string, headers []string, rows [][]string) string {
	var b strings.Builder

	b.WriteString(`\begin{tabular*}{\textwidth}{@{\extracolsep{\fill}} ` + spec + "}\n")
	b.WriteString("\\hline\n")

	bold := make([]string, len(headers))
	for i, h := range headers {
		bold[i] = `\textbf{` + format.LatexEscape(h) + `}`
	}
	b.WriteString(strings.Join(bold, " & ") + " \\\\\n")
	b.WriteString("\\hline\n")

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = format.LatexEscape(c)
		}
		b.WriteString(strings.Join(cells, " & ") + " \\\\\n")
	}

	b.WriteString("\\hline\n")
	b.WriteString(`\end{tabular*}`)

	return LatexBlock(b.String())
}

// LatexBlock wraps raw LaTeX in a Pandoc raw block fence.
func LatexBlock(body string) string {
	md := markdown.NewMarkdown(io.Discard)
	md.CodeBlocks(latexSyntax, body)
	return md.String() + "\n"
}
