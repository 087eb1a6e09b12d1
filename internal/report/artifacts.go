package report

import (
	"fmt"
	"strings"

	"github.com/shnogeorgiev/Horizon/internal/format"
	"github.com/shnogeorgiev/Horizon/internal/model"
)

// ArtifactsCleanup builds the artifacts/cleanup section: the cleanup
// preamble followed by one page per artifact left behind during testing.
// With no artifact records the whole section is an empty fragment.
func (a *Assembler) ArtifactsCleanup(artifacts []model.Record) string {
	if len(artifacts) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\\newpage\n\n# Artifacts / Cleanup\n\n")
	b.WriteString(artifactsPreamble + "\n")

	for _, r := range artifacts {
		fmt.Fprintf(&b, "\\newpage\n\n## Artifact: %s\n\n",
			format.MarkdownCell(artifactTitle(r)))

		b.WriteString(format.Block("Type", r.String("type")))
		b.WriteString(format.Block("Location", r.String("location")))
		b.WriteString(format.Block("Purpose", r.String("purpose")))
		b.WriteString(format.Block("Cleanup", r.String("cleanup")))

		if evidence := strings.TrimSpace(r.String("evidence")); evidence != "" {
			b.WriteString(a.evidenceBlock(evidence, artifactEvidenceFallback))
		}

		b.WriteString(format.KV("Created By", r.String("created_by")))
		b.WriteString(format.Block("Notes", r.String("notes")))
		b.WriteString("\n")
	}

	return b.String()
}

// artifactTitle derives the artifact heading from its type and location,
// falling back to a generic name when the record carries neither.
func artifactTitle(r model.Record) string {
	parts := make([]string, 0, 2)
	if t := strings.TrimSpace(r.String("type")); t != "" {
		parts = append(parts, t)
	}
	if loc := strings.TrimSpace(r.String("location")); loc != "" {
		parts = append(parts, loc)
	}
	if len(parts) == 0 {
		return "Unnamed Artifact"
	}
	return strings.Join(parts, " - ")
}
