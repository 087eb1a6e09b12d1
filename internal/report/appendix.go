package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shnogeorgiev/Horizon/internal/format"
	"github.com/shnogeorgiev/Horizon/internal/model"
	"github.com/shnogeorgiev/Horizon/internal/render"
)

// letterer hands out appendix labels sequentially, starting at 'A'.
//
// Lettering is purely positional: a section that emits nothing never asks
// for a label, so skipped appendices leave no gaps. Holding the counter in
// an explicit value rather than a captured variable keeps each appendix
// emission testable on its own.
type letterer struct {
	next rune
}

func newLetterer() *letterer {
	return &letterer{next: 'A'}
}

// label returns the next unused appendix letter.
func (l *letterer) label() string {
	label := string(l.next)
	l.next++
	return label
}

// Appendices builds the appendix section. The severity legend and the
// object count summary are always present; the remaining appendices are
// emitted only for non-empty collections, in fixed priority order: hosts,
// infrastructure (web + database), credentials, hashes, flags.
func (a *Assembler) Appendices(c *model.Collections) string {
	var b strings.Builder
	b.WriteString("\\newpage\n\n# Appendices\n\n")

	letters := newLetterer()

	a.severityLegend(&b, letters)
	a.objectSummary(&b, c, letters)
	a.exploitedHosts(&b, c.Hosts, letters)
	a.exploitedInfrastructure(&b, c.WebApps, c.Databases, letters)
	a.credentialsSummary(&b, c.Credentials, letters)
	a.hashesSummary(&b, c.Hashes, letters)
	a.flagsCaptured(&b, c.Flags, letters)

	return b.String()
}

// severityLegend emits the severity ratings appendix. Always present.
func (a *Assembler) severityLegend(b *strings.Builder, letters *letterer) {
	fmt.Fprintf(b, "## Appendix %s - Severity Ratings Explained\n\n", letters.label())
	b.WriteString(severityLegendIntro + "\n")

	rows := make([][]string, 0, len(model.SeverityLegend()))
	for _, entry := range model.SeverityLegend() {
		rows = append(rows, []string{severityName(entry.Severity), entry.Description})
	}
	b.WriteString(render.LatexTable([]string{"Severity", "Description"}, rows))
	b.WriteString("\n")
}

// objectSummary emits the identified object counts. Always present.
// Zones are counted here even though they get no appendix of their own.
func (a *Assembler) objectSummary(b *strings.Builder, c *model.Collections, letters *letterer) {
	fmt.Fprintf(b, "## Appendix %s - Summary of Identified Objects\n\n", letters.label())

	rows := [][]string{
		{"Hosts", strconv.Itoa(len(c.Hosts))},
		{"Credentials", strconv.Itoa(len(c.Credentials))},
		{"Hashes", strconv.Itoa(len(c.Hashes))},
		{"Flags", strconv.Itoa(len(c.Flags))},
		{"Web", strconv.Itoa(len(c.WebApps))},
		{"SQL", strconv.Itoa(len(c.Databases))},
		{"Zones", strconv.Itoa(len(c.Zones))},
	}
	b.WriteString(render.LatexTableSpec("l r", []string{"Object Type", "Count"}, rows))
	b.WriteString("\n")
}

// exploitedHosts lists compromised hosts. Skipped when empty.
func (a *Assembler) exploitedHosts(b *strings.Builder, hosts []model.Record, letters *letterer) {
	if len(hosts) == 0 {
		return
	}

	fmt.Fprintf(b, "\\newpage\n\n## Appendix %s - Exploited Hosts\n\n", letters.label())

	rows := make([][]string, 0, len(hosts))
	for i, h := range hosts {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			format.MarkdownCell(h.String("hostname")),
			format.MarkdownCell(h.String("os")),
			format.CompactCell(h.String("network"), a.cellWidth),
		})
	}
	b.WriteString(render.LatexTable([]string{"#", "Hostname", "OS", "Network"}, rows))
	b.WriteString("\n")
}

// exploitedInfrastructure lists web applications and databases in one
// table. Skipped when both collections are empty.
func (a *Assembler) exploitedInfrastructure(b *strings.Builder, webs, sqls []model.Record, letters *letterer) {
	if len(webs) == 0 && len(sqls) == 0 {
		return
	}

	fmt.Fprintf(b, "\\newpage\n\n## Appendix %s - Exploited Infrastructure\n\n", letters.label())

	rows := make([][]string, 0, len(webs)+len(sqls))
	for _, w := range webs {
		name := w.String("hostname")
		if name == "" {
			name = w.String("url")
		}
		rows = append(rows, []string{
			strconv.Itoa(len(rows) + 1),
			"WEB",
			format.MarkdownCell(name),
			format.MarkdownCell(w.String("ip")),
		})
	}
	for _, s := range sqls {
		rows = append(rows, []string{
			strconv.Itoa(len(rows) + 1),
			"SQL",
			format.MarkdownCell(s.String("hostname")),
			format.MarkdownCell(s.String("ip")),
		})
	}
	b.WriteString(render.LatexTable([]string{"#", "Type", "Name", "IP"}, rows))
	b.WriteString("\n")
}

// credentialsSummary lists captured credentials. Skipped when empty.
func (a *Assembler) credentialsSummary(b *strings.Builder, creds []model.Record, letters *letterer) {
	if len(creds) == 0 {
		return
	}

	fmt.Fprintf(b, "\\newpage\n\n## Appendix %s - Credentials Summary\n\n", letters.label())

	rows := make([][]string, 0, len(creds))
	for i, c := range creds {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			format.MarkdownCell(c.String("privilege")),
			format.MarkdownCell(c.String("username")),
			format.MarkdownCell(c.String("password")),
		})
	}
	b.WriteString(render.LatexTable([]string{"#", "Privilege", "Username", "Password"}, rows))
	b.WriteString("\n")
}

// hashesSummary lists captured hashes. Skipped when empty.
// A hash counts as cracked when its record carries a recovered password.
func (a *Assembler) hashesSummary(b *strings.Builder, hashes []model.Record, letters *letterer) {
	if len(hashes) == 0 {
		return
	}

	fmt.Fprintf(b, "\\newpage\n\n## Appendix %s - Hashes Summary\n\n", letters.label())

	rows := make([][]string, 0, len(hashes))
	for i, h := range hashes {
		cracked := "No"
		if h.Has("password") {
			cracked = "Yes"
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			format.MarkdownCell(h.String("type")),
			format.MarkdownCell(h.String("algorithm")),
			cracked,
			format.MarkdownCell(h.String("target")),
			format.CompactCell(h.String("source"), a.cellWidth),
		})
	}
	b.WriteString(render.LatexTable([]string{"#", "Type", "Algorithm", "Cracked", "Target", "Source"}, rows))
	b.WriteString("\n")
}

// flagsCaptured lists captured flags. Skipped when empty.
func (a *Assembler) flagsCaptured(b *strings.Builder, flags []model.Record, letters *letterer) {
	if len(flags) == 0 {
		return
	}

	fmt.Fprintf(b, "\\newpage\n\n## Appendix %s - Flags Captured\n\n", letters.label())

	rows := make([][]string, 0, len(flags))
	for i, f := range flags {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			format.MarkdownCell(f.String("value")),
			format.CompactCell(f.String("source"), a.cellWidth),
		})
	}
	b.WriteString(render.LatexTable([]string{"#", "Flag", "Source"}, rows))
	b.WriteString("\n")
}
