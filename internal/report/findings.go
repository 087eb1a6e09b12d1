package report

import (
	"fmt"
	"strings"

	"github.com/shnogeorgiev/Horizon/internal/format"
	"github.com/shnogeorgiev/Horizon/internal/model"
)

// TechnicalFindings builds the per-finding detail section, one page per
// vulnerability in descending CVSS order. Every block inside a finding is
// optional and vanishes when the record lacks the attribute; the finding
// header itself is always present. With no vulnerability records the whole
// section is an empty fragment.
func (a *Assembler) TechnicalFindings(vulns []model.Record) string {
	if len(vulns) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\\newpage\n\n# Technical Findings Details\n\n")

	for i, v := range model.SortByScore(vulns) {
		if i > 0 {
			b.WriteString("\\newpage\n\n")
		}

		title := format.SafeTitle(v.String("type"), "Finding")
		fmt.Fprintf(&b, "## %s (CVSS: %s / Severity: %s)\n\n",
			title, v.String("cvss"), v.String("severity"))

		b.WriteString(format.KV("CVE", v.String("cve")))
		b.WriteString(format.CWELink(v.String("cwe")))
		b.WriteString(format.Block("Affected", v.String("affected")))
		b.WriteString(format.Block("Description", v.String("description")))

		if evidence := strings.TrimSpace(v.String("evidence")); evidence != "" {
			b.WriteString(a.evidenceBlock(evidence, findingEvidenceFallback))
		}

		b.WriteString(format.Block("Impact", v.String("impact")))
		b.WriteString(format.CodeBlock("Exploit / Reproduction", v.String("exploit")))
		b.WriteString(format.Block("Remediation", v.String("remediation")))
		b.WriteString("\n")
	}

	return b.String()
}
