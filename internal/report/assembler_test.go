package report

import (
	"strings"
	"testing"

	"github.com/shnogeorgiev/Horizon/internal/model"
)

// createTestCollections creates classified collections with sample data
// for testing.
func createTestCollections() *model.Collections {
	return &model.Collections{
		Hosts: []model.Record{
			{Type: "host", Data: map[string]any{"hostname": "dc01", "os": "Windows Server 2022", "network": "10.0.0.0/24"}},
		},
		Vulns: []model.Record{
			{Type: "vuln", Data: map[string]any{
				"type":        "SQL Injection",
				"cvss":        9.8,
				"severity":    "Critical",
				"cve":         "CVE-2024-1234",
				"cwe":         "https://cwe.mitre.org/data/definitions/89.html",
				"affected":    "https://portal.example.com/login",
				"description": "The login form concatenates user input into SQL.",
				"evidence":    "sqli_login.png",
				"impact":      "Full database read access.",
				"exploit":     "sqlmap -u https://portal.example.com/login --batch",
				"remediation": "Use parameterized queries.",
			}},
			{Type: "vuln", Data: map[string]any{
				"type": "Verbose Server Banner", "severity": "Info",
			}},
		},
		Credentials: []model.Record{
			{Type: "credential", Data: map[string]any{"privilege": "Domain Admin", "username": "administrator", "password": "Winter2026!"}},
		},
		Hashes: []model.Record{
			{Type: "hash", Data: map[string]any{"type": "NTLM", "algorithm": "NT", "target": "dc01", "source": "secretsdump", "password": "Winter2026!"}},
		},
		Artifacts: []model.Record{
			{Type: "artifact", Data: map[string]any{
				"type": "Web Shell", "location": "/var/www/html/s.php",
				"purpose": "Initial foothold", "cleanup": "rm /var/www/html/s.php",
			}},
		},
		Flags: []model.Record{
			{Type: "flag", Data: map[string]any{"value": "HTB{example}", "source": "dc01"}},
		},
		WebApps: []model.Record{
			{Type: "webapp", Data: map[string]any{"hostname": "portal.example.com", "ip": "10.0.0.5"}},
		},
		Databases: []model.Record{
			{Type: "database", Data: map[string]any{"hostname": "db01", "ip": "10.0.0.6"}},
		},
		Zones: []model.Record{
			{Type: "zone", Data: map[string]any{"name": "example.com"}},
		},
	}
}

// TestAssemblerOptions tests option application and defaults.
func TestAssemblerOptions(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		a := NewAssembler()
		meta := a.Metadata()
		if meta.Title != "Penetration Test Report" {
			t.Errorf("unexpected default title: %q", meta.Title)
		}
		if meta.Date == "" {
			t.Error("expected date to default to the export day")
		}
	})

	t.Run("metadata overrides", func(t *testing.T) {
		t.Parallel()

		a := NewAssembler(WithMetadata(Metadata{Title: "ACME Pentest", Author: "Red Team"}))
		meta := a.Metadata()
		if meta.Title != "ACME Pentest" || meta.Author != "Red Team" {
			t.Errorf("unexpected metadata: %+v", meta)
		}
		if meta.Date == "" {
			t.Error("empty date must keep the default")
		}
	})
}

// TestMetadataHeader tests the Pandoc front matter.
func TestMetadataHeader(t *testing.T) {
	t.Parallel()

	a := NewAssembler(WithMetadata(Metadata{Title: "ACME Pentest", Author: "Red Team", Date: "2026-01-15"}))
	got := a.metadataHeader()

	if !strings.HasPrefix(got, "---\n") {
		t.Errorf("front matter must open the document: %q", got)
	}
	if !strings.Contains(got, "header-includes") {
		t.Errorf("missing header-includes block: %q", got)
	}
	if !strings.Contains(got, `\usepackage{graphicx}`) {
		t.Errorf("missing graphicx package: %q", got)
	}
	if !strings.Contains(got, "title: ACME Pentest") {
		t.Errorf("missing title: %q", got)
	}
	if !strings.Contains(got, "author: Red Team") {
		t.Errorf("missing author: %q", got)
	}
	if !strings.Contains(got, `date: "2026-01-15"`) && !strings.Contains(got, "date: 2026-01-15") {
		t.Errorf("missing date: %q", got)
	}
}

// TestSummaryOfFindings tests the findings summary section.
func TestSummaryOfFindings(t *testing.T) {
	t.Parallel()

	t.Run("empty degrades to a sentence", func(t *testing.T) {
		t.Parallel()

		got := NewAssembler().SummaryOfFindings(nil)
		if !strings.Contains(got, "# Summary of Findings") {
			t.Errorf("missing section header: %q", got)
		}
		if !strings.Contains(got, "_No findings identified._") {
			t.Errorf("missing no-findings sentence: %q", got)
		}
	})

	t.Run("counts findings by severity", func(t *testing.T) {
		t.Parallel()

		got := NewAssembler().SummaryOfFindings(createTestCollections().Vulns)
		if !strings.Contains(got, `\textbf{Critical} & \textbf{High} & \textbf{Medium} & \textbf{Low} & \textbf{Info}`) {
			t.Errorf("missing severity count headers: %q", got)
		}
		if !strings.Contains(got, `1 & 0 & 0 & 0 & 1 \\`) {
			t.Errorf("missing severity counts: %q", got)
		}
	})

	t.Run("lists findings in CVSS order", func(t *testing.T) {
		t.Parallel()

		got := NewAssembler().SummaryOfFindings(createTestCollections().Vulns)
		if !strings.Contains(got, "## Finding List (CVSS Ordered)") {
			t.Errorf("missing finding list: %q", got)
		}
		if !strings.Contains(got, `1 & 9.8 & Critical & SQL Injection \\`) {
			t.Errorf("missing ordered finding row: %q", got)
		}
		if !strings.Contains(got, `2 &  & Info & Verbose Server Banner \\`) {
			t.Errorf("unscored finding must sort last with an empty score cell: %q", got)
		}
	})
}

// TestTechnicalFindings tests the per-finding detail section.
func TestTechnicalFindings(t *testing.T) {
	t.Parallel()

	t.Run("empty is an empty fragment", func(t *testing.T) {
		t.Parallel()

		if got := NewAssembler().TechnicalFindings(nil); got != "" {
			t.Errorf("expected empty fragment, got %q", got)
		}
	})

	t.Run("renders the finding header", func(t *testing.T) {
		t.Parallel()

		got := NewAssembler().TechnicalFindings(createTestCollections().Vulns)
		if !strings.Contains(got, "## SQL Injection (CVSS: 9.8 / Severity: Critical)") {
			t.Errorf("missing finding header: %q", got)
		}
	})

	t.Run("renders optional blocks only when present", func(t *testing.T) {
		t.Parallel()

		got := NewAssembler().TechnicalFindings(createTestCollections().Vulns)
		if !strings.Contains(got, "**CVE:** CVE-2024-1234") {
			t.Errorf("missing CVE line: %q", got)
		}
		if !strings.Contains(got, "[CWE-89](https://cwe.mitre.org/data/definitions/89.html)") {
			t.Errorf("missing CWE link: %q", got)
		}
		if !strings.Contains(got, "**Remediation:**") {
			t.Errorf("missing remediation block: %q", got)
		}

		// The second finding carries none of the optional attributes
		tail := got[strings.Index(got, "Verbose Server Banner"):]
		if strings.Contains(tail, "**CVE:**") || strings.Contains(tail, "**Impact:**") {
			t.Errorf("sparse finding must not render dangling labels: %q", tail)
		}
	})

	t.Run("emits the evidence block for evidence-bearing findings", func(t *testing.T) {
		t.Parallel()

		got := NewAssembler().TechnicalFindings(createTestCollections().Vulns)
		if !strings.Contains(got, `\IfFileExists{Evidence/sqli_login.png}`) {
			t.Errorf("missing conditional evidence block: %q", got)
		}
		if !strings.Contains(got, `width=0.85\linewidth,height=0.45\textheight,keepaspectratio`) {
			t.Errorf("missing image constraints: %q", got)
		}
		if !strings.Contains(got, findingEvidenceFallback) {
			t.Errorf("missing evidence fallback: %q", got)
		}
	})

	t.Run("honors a custom evidence directory", func(t *testing.T) {
		t.Parallel()

		a := NewAssembler(WithEvidenceDir("Screenshots"))
		got := a.TechnicalFindings(createTestCollections().Vulns)
		if !strings.Contains(got, `\IfFileExists{Screenshots/sqli_login.png}`) {
			t.Errorf("custom evidence dir not honored: %q", got)
		}
	})

	t.Run("separates findings with page breaks", func(t *testing.T) {
		t.Parallel()

		got := NewAssembler().TechnicalFindings(createTestCollections().Vulns)
		first := strings.Index(got, "## SQL Injection")
		second := strings.Index(got, "## Verbose Server Banner")
		if first < 0 || second < 0 || second < first {
			t.Fatalf("findings out of CVSS order: %q", got)
		}
		if !strings.Contains(got[first:second], "\\newpage") {
			t.Errorf("missing page break between findings: %q", got)
		}
	})
}

// TestAppendices tests appendix assembly and lettering.
func TestAppendices(t *testing.T) {
	t.Parallel()

	t.Run("legend and object summary are always present", func(t *testing.T) {
		t.Parallel()

		got := NewAssembler().Appendices(&model.Collections{})
		if !strings.Contains(got, "## Appendix A - Severity Ratings Explained") {
			t.Errorf("missing legend appendix: %q", got)
		}
		if !strings.Contains(got, "## Appendix B - Summary of Identified Objects") {
			t.Errorf("missing object summary appendix: %q", got)
		}
		if strings.Contains(got, "Appendix C") {
			t.Errorf("empty collections must not produce more appendices: %q", got)
		}
	})

	t.Run("letters skip empty collections without gaps", func(t *testing.T) {
		t.Parallel()

		// Hosts and hashes only: credentials must not consume a letter
		c := &model.Collections{
			Hosts:  createTestCollections().Hosts,
			Hashes: createTestCollections().Hashes,
		}
		got := NewAssembler().Appendices(c)
		if !strings.Contains(got, "## Appendix C - Exploited Hosts") {
			t.Errorf("hosts must take the next letter: %q", got)
		}
		if !strings.Contains(got, "## Appendix D - Hashes Summary") {
			t.Errorf("hashes must follow without a gap: %q", got)
		}
		if strings.Contains(got, "Credentials Summary") || strings.Contains(got, "Flags Captured") {
			t.Errorf("empty collections must be skipped: %q", got)
		}
	})

	t.Run("full collections letter in priority order", func(t *testing.T) {
		t.Parallel()

		got := NewAssembler().Appendices(createTestCollections())
		sections := []string{
			"## Appendix A - Severity Ratings Explained",
			"## Appendix B - Summary of Identified Objects",
			"## Appendix C - Exploited Hosts",
			"## Appendix D - Exploited Infrastructure",
			"## Appendix E - Credentials Summary",
			"## Appendix F - Hashes Summary",
			"## Appendix G - Flags Captured",
		}
		last := -1
		for _, section := range sections {
			idx := strings.Index(got, section)
			if idx < 0 {
				t.Fatalf("missing section %q in %q", section, got)
			}
			if idx < last {
				t.Errorf("section %q out of order", section)
			}
			last = idx
		}
	})

	t.Run("object summary counts every collection", func(t *testing.T) {
		t.Parallel()

		got := NewAssembler().Appendices(createTestCollections())
		for _, row := range []string{
			`Hosts & 1 \\`, `Credentials & 1 \\`, `Hashes & 1 \\`,
			`Flags & 1 \\`, `Web & 1 \\`, `SQL & 1 \\`, `Zones & 1 \\`,
		} {
			if !strings.Contains(got, row) {
				t.Errorf("missing object count row %q", row)
			}
		}
	})

	t.Run("infrastructure merges web and database records", func(t *testing.T) {
		t.Parallel()

		got := NewAssembler().Appendices(createTestCollections())
		if !strings.Contains(got, `1 & WEB & portal.example.com & 10.0.0.5 \\`) {
			t.Errorf("missing web row: %q", got)
		}
		if !strings.Contains(got, `2 & SQL & db01 & 10.0.0.6 \\`) {
			t.Errorf("missing database row: %q", got)
		}
	})

	t.Run("hashes report cracked status", func(t *testing.T) {
		t.Parallel()

		got := NewAssembler().Appendices(createTestCollections())
		if !strings.Contains(got, `1 & NTLM & NT & Yes & dc01 & secretsdump \\`) {
			t.Errorf("missing cracked hash row: %q", got)
		}

		uncracked := &model.Collections{
			Hashes: []model.Record{{Type: "hash", Data: map[string]any{"type": "NTLM"}}},
		}
		got = NewAssembler().Appendices(uncracked)
		if !strings.Contains(got, `1 & NTLM &  & No &  &  \\`) {
			t.Errorf("missing uncracked hash row: %q", got)
		}
	})
}

// TestArtifactsCleanup tests the artifacts section.
func TestArtifactsCleanup(t *testing.T) {
	t.Parallel()

	t.Run("empty is an empty fragment", func(t *testing.T) {
		t.Parallel()

		if got := NewAssembler().ArtifactsCleanup(nil); got != "" {
			t.Errorf("expected empty fragment, got %q", got)
		}
	})

	t.Run("renders the preamble and artifact pages", func(t *testing.T) {
		t.Parallel()

		got := NewAssembler().ArtifactsCleanup(createTestCollections().Artifacts)
		if !strings.Contains(got, "# Artifacts / Cleanup") {
			t.Errorf("missing section header: %q", got)
		}
		if !strings.Contains(got, "controlled security testing activities") {
			t.Errorf("missing preamble: %q", got)
		}
		if !strings.Contains(got, "## Artifact: Web Shell - /var/www/html/s.php") {
			t.Errorf("missing artifact heading: %q", got)
		}
		if !strings.Contains(got, "rm /var/www/html/s.php") {
			t.Errorf("missing cleanup instructions: %q", got)
		}
	})

	t.Run("nameless artifacts get a generic heading", func(t *testing.T) {
		t.Parallel()

		artifacts := []model.Record{{Type: "artifact", Data: map[string]any{"notes": "leftover"}}}
		got := NewAssembler().ArtifactsCleanup(artifacts)
		if !strings.Contains(got, "## Artifact: Unnamed Artifact") {
			t.Errorf("missing generic heading: %q", got)
		}
	})
}

// TestAssemble tests whole-document assembly.
func TestAssemble(t *testing.T) {
	t.Parallel()

	t.Run("sections appear in contractual order", func(t *testing.T) {
		t.Parallel()

		got := NewAssembler().Assemble(createTestCollections())
		sections := []string{
			"# Engagement Overview",
			"# Summary of Findings",
			"# Executive Summary",
			"# Chain of Compromise",
			"# Remediation Summary",
			"# Technical Findings Details",
			"# Appendices",
			"# Artifacts / Cleanup",
		}
		last := -1
		for _, section := range sections {
			idx := strings.Index(got, section)
			if idx < 0 {
				t.Fatalf("missing section %q", section)
			}
			if idx < last {
				t.Errorf("section %q out of order", section)
			}
			last = idx
		}
	})

	t.Run("front matter opens the document", func(t *testing.T) {
		t.Parallel()

		got := NewAssembler().Assemble(createTestCollections())
		if !strings.HasPrefix(got, "---\n") {
			t.Errorf("document must open with front matter, got %q", got[:40])
		}
	})

	t.Run("no runs of blank lines survive normalization", func(t *testing.T) {
		t.Parallel()

		got := NewAssembler().Assemble(createTestCollections())
		if strings.Contains(got, "\n\n\n") {
			t.Error("found a run of three or more newlines")
		}
	})

	t.Run("assembly is deterministic", func(t *testing.T) {
		t.Parallel()

		a := NewAssembler(WithMetadata(Metadata{Date: "2026-01-15"}))
		c := createTestCollections()
		if a.Assemble(c) != a.Assemble(c) {
			t.Error("assembling the same collections twice must yield identical output")
		}
	})

	t.Run("empty collections still yield the fixed sections", func(t *testing.T) {
		t.Parallel()

		got := NewAssembler().Assemble(&model.Collections{})
		if !strings.Contains(got, "# Summary of Findings") {
			t.Error("missing summary section")
		}
		if !strings.Contains(got, "_No findings identified._") {
			t.Error("missing no-findings sentence")
		}
		if strings.Contains(got, "# Technical Findings Details") {
			t.Error("findings details must vanish with no findings")
		}
		if strings.Contains(got, "# Artifacts / Cleanup") {
			t.Error("artifacts section must vanish with no artifacts")
		}
		if strings.Contains(got, "\n\n\n") {
			t.Error("empty fragments must not widen the document")
		}
	})

	t.Run("placeholder sections are marked for the author", func(t *testing.T) {
		t.Parallel()

		got := NewAssembler().Assemble(&model.Collections{})
		if strings.Count(got, "PLACEHOLDER - to be completed by the report author.") != 3 {
			t.Error("expected exactly three placeholder sections")
		}
	})
}
