package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/shnogeorgiev/Horizon/internal/format"
	"github.com/shnogeorgiev/Horizon/internal/model"
	"github.com/shnogeorgiev/Horizon/internal/render"
)

// SummaryOfFindings builds the findings summary section: a severity bucket
// count table followed by the full finding list ordered by CVSS score.
// With no vulnerability records it degrades to an explicit "no findings"
// sentence rather than an empty fragment, so the section header always
// appears in the document.
func (a *Assembler) SummaryOfFindings(vulns []model.Record) string {
	md := markdown.NewMarkdown(io.Discard)
	md.PlainText("\\newpage")
	md.PlainText("")
	md.H1("Summary of Findings")
	md.PlainText("")

	if len(vulns) == 0 {
		md.PlainText("_No findings identified._")
		md.PlainText("")
		return md.String() + "\n"
	}

	counts := model.CountBySeverity(vulns)
	headers := make([]string, 0, len(counts))
	row := make([]string, 0, len(counts))
	for s := model.SeverityCritical; s >= model.SeverityInfo; s-- {
		headers = append(headers, severityName(s))
		row = append(row, strconv.Itoa(counts[s]))
	}

	md.H2("Finding Severity")
	md.PlainText("")
	md.PlainText(render.LatexTable(headers, [][]string{row}))

	rows := make([][]string, 0, len(vulns))
	for i, v := range model.SortByScore(vulns) {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			format.MarkdownCell(v.String("cvss")),
			format.MarkdownCell(format.SafeTitle(v.String("severity"), "Unknown")),
			format.MarkdownCell(format.SafeTitle(v.String("type"), "Finding")),
		})
	}

	md.H2("Finding List (CVSS Ordered)")
	md.PlainText("")
	md.PlainText(render.LatexTable([]string{"#", "CVSS", "Severity", "Finding Name"}, rows))

	return md.String() + "\n"
}
