package report

import (
	"regexp"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/shnogeorgiev/Horizon/internal/format"
	"github.com/shnogeorgiev/Horizon/internal/model"
	"github.com/shnogeorgiev/Horizon/internal/render"
)

// Metadata is the document-level metadata injected into the Pandoc front
// matter at the top of the report.
type Metadata struct {
	Title  string `yaml:"title" json:"title"`
	Author string `yaml:"author" json:"author"`
	Date   string `yaml:"date" json:"date"`
}

// pandocIncludes is the first front matter block: packages the typesetter
// needs for evidence image embedding.
type pandocIncludes struct {
	HeaderIncludes []string `yaml:"header-includes"`
}

// Assembler builds the final document from classified record collections.
//
// All section builders are pure functions of their input collections; the
// assembler holds only configuration (metadata, cell width, evidence
// directory) fixed at construction time, so assembling the same collections
// twice yields byte-identical output.
type Assembler struct {
	meta        Metadata
	cellWidth   int
	evidenceDir string
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithMetadata sets the document metadata. Empty fields keep their defaults.
func WithMetadata(m Metadata) Option {
	return func(a *Assembler) {
		if m.Title != "" {
			a.meta.Title = m.Title
		}
		if m.Author != "" {
			a.meta.Author = m.Author
		}
		if m.Date != "" {
			a.meta.Date = m.Date
		}
	}
}

// WithCellWidth sets the maximum width of compacted table cells.
func WithCellWidth(n int) Option {
	return func(a *Assembler) {
		if n > 0 {
			a.cellWidth = n
		}
	}
}

// WithEvidenceDir sets the directory evidence filenames resolve against
// at typesetting time. The assembler never opens these files itself.
func WithEvidenceDir(dir string) Option {
	return func(a *Assembler) {
		if dir != "" {
			a.evidenceDir = dir
		}
	}
}

// NewAssembler creates an Assembler with sensible defaults: a generic
// report title, today's date, and the standard evidence directory.
func NewAssembler(opts ...Option) *Assembler {
	a := &Assembler{
		meta: Metadata{
			Title: "Penetration Test Report",
			Date:  time.Now().Format("2006-01-02"),
		},
		cellWidth:   format.DefaultCellWidth,
		evidenceDir: "Evidence",
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Metadata returns the document metadata the assembler was built with.
func (a *Assembler) Metadata() Metadata {
	return a.meta
}

// Fragment indices fixing the section order of the document.
// The order is part of the report contract and is not configurable.
const (
	idxMetadata = iota
	idxOverview
	idxSummary
	idxExecutive
	idxChain
	idxRemediation
	idxFindings
	idxAppendices
	idxArtifacts
	fragmentCount
)

// Assemble builds the complete document for the given collections.
//
// Section builders only read from disjoint record collections, so they run
// concurrently; the results land in fixed slots and are serialized into the
// contractual section order before the final whitespace pass. Builders
// cannot fail, which keeps the errgroup error path unused by construction.
func (a *Assembler) Assemble(c *model.Collections) string {
	fragments := make([]string, fragmentCount)

	var g errgroup.Group
	g.Go(func() error {
		fragments[idxMetadata] = a.metadataHeader()
		fragments[idxOverview] = engagementOverview
		fragments[idxExecutive] = "\\newpage\n\n# Executive Summary\n\n" + placeholderText
		fragments[idxChain] = "\\newpage\n\n# Chain of Compromise\n\n" + chainOfCompromiseOverview + "\n" + placeholderText
		fragments[idxRemediation] = "\\newpage\n\n# Remediation Summary\n\n" + placeholderText
		return nil
	})
	g.Go(func() error {
		fragments[idxSummary] = a.SummaryOfFindings(c.Vulns)
		return nil
	})
	g.Go(func() error {
		fragments[idxFindings] = a.TechnicalFindings(c.Vulns)
		return nil
	})
	g.Go(func() error {
		fragments[idxAppendices] = a.Appendices(c)
		return nil
	})
	g.Go(func() error {
		fragments[idxArtifacts] = a.ArtifactsCleanup(c.Artifacts)
		return nil
	})
	_ = g.Wait() //nolint:errcheck // builders never return errors

	return normalize(strings.Join(fragments, "\n"))
}

// metadataHeader renders the Pandoc front matter: one block with the
// LaTeX packages the typesetter needs, one with the document metadata.
func (a *Assembler) metadataHeader() string {
	includes, err := yaml.Marshal(pandocIncludes{
		HeaderIncludes: []string{`\usepackage{graphicx}`},
	})
	if err != nil {
		includes = nil
	}
	meta, err := yaml.Marshal(a.meta)
	if err != nil {
		meta = nil
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(includes)
	b.WriteString("---\n")
	b.WriteString("---\n")
	b.Write(meta)
	b.WriteString("---\n")
	return b.String()
}

// blankRuns matches any run of three or more consecutive newlines.
var blankRuns = regexp.MustCompile(`\n{3,}`)

// normalize collapses excess blank lines across the whole document.
// This runs once, globally, after concatenation: the contiguous-blank-line
// property only exists across fragment boundaries, so per-fragment
// normalization would miss exactly the runs this pass is for. Empty builder
// outputs therefore never widen the document.
func normalize(doc string) string {
	return blankRuns.ReplaceAllString(doc, "\n\n")
}

// titleCaser renders severity names in document casing ("CRITICAL" ->
// "Critical") for tables and legend rows.
var titleCaser = cases.Title(language.English)

// severityName returns the document-facing display name of a severity.
func severityName(s model.Severity) string {
	return titleCaser.String(strings.ToLower(s.String()))
}

// evidenceBlock emits the conditional evidence construct for a non-empty
// evidence filename. The existence check runs in the typesetter, not here:
// the block embeds the image when the file exists under the evidence
// directory and falls back to an italic sentence otherwise. The image is
// constrained to 85% of line width and 45% of page height, centered,
// preserving aspect ratio.
func (a *Assembler) evidenceBlock(filename, fallback string) string {
	path := a.evidenceDir + "/" + filename
	body := `\IfFileExists{` + path + `}{%` + "\n" +
		"  \\begin{center}\n" +
		`  \includegraphics[width=0.85\linewidth,height=0.45\textheight,keepaspectratio]{` + path + `}` + "\n" +
		"  \\end{center}\n" +
		"}{%\n" +
		`  \textit{` + fallback + `}` + "\n" +
		"}"
	return "**Evidence:**\n\n" + render.LatexBlock(body) + "\n"
}
