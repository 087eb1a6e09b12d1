package format

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
)

// DefaultCellWidth is the maximum number of characters kept by CompactCell
// before the value is truncated with an ellipsis. Wide cells break the
// full-width LaTeX tables the appendices are built from, so listing tables
// only ever show the first line of a value, clipped to this width.
const DefaultCellWidth = 70

// latexReplacer escapes the LaTeX special characters that may appear in
// record attributes. Backslash, tilde, and caret are intentionally not
// escaped: attribute values that carry raw LaTeX (none so far) would be
// destroyed.
var latexReplacer = strings.NewReplacer(
	"&", `\&`,
	"%", `\%`,
	"#", `\#`,
	"$", `\$`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
)

// LatexEscape escapes a value for use inside a raw LaTeX block.
// It must be applied to every cell placed in a LaTeX table, headers included.
func LatexEscape(s string) string {
	if s == "" {
		return ""
	}
	return latexReplacer.Replace(s)
}

// MarkdownCell escapes a value for use inside a Markdown table cell.
// Backslashes and the column delimiter are escaped, then all line break
// variants are collapsed into a literal <br> marker so multi-line values
// render within a single cell.
func MarkdownCell(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, `\`, `\textbackslash{}`)
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.ReplaceAll(s, "\n", "<br>")
}

// CompactCell reduces a value to its first line, truncated to max runes with
// a trailing ellipsis, and escapes the result for a table cell.
// If max is not positive, DefaultCellWidth is used.
// Empty or whitespace-only input yields empty output.
func CompactCell(s string, max int) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if max <= 0 {
		max = DefaultCellWidth
	}
	first, _, _ := strings.Cut(s, "\n")
	if runes := []rune(first); len(runes) > max {
		first = string(runes[:max-1]) + "…"
	}
	return MarkdownCell(first)
}

// Stringify converts an arbitrary record attribute value to its string form.
// Nil becomes the empty string, never the word "nil" or "null". Numbers use
// their shortest decimal representation so a JSON 9.8 renders as "9.8" and a
// JSON 9 renders as "9".
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// TryFloat attempts to parse a value as a floating-point number.
// The boolean result distinguishes "no numeric value" from "value is zero":
// callers bucket records differently depending on which one they got.
// Malformed input never produces an error or a panic.
func TryFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// SafeTitle returns the trimmed value, or fallback when the value is empty.
func SafeTitle(s, fallback string) string {
	if t := strings.TrimSpace(s); t != "" {
		return t
	}
	return fallback
}

// KV renders a one-line labeled value: "**Label:** value". Empty values
// produce no output at all, so sparse records leave no dangling labels.
func KV(label, value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	return markdown.Bold(label+":") + " " + value + "\n\n"
}

// Block renders a labeled paragraph with the value on its own lines.
func Block(label, value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return ""
	}
	return markdown.Bold(label+":") + "\n\n" + v + "\n\n"
}

// CodeBlock renders a labeled fenced code block for terminal transcripts
// and reproduction steps.
func CodeBlock(label, value string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return ""
	}
	md := markdown.NewMarkdown(io.Discard)
	md.CodeBlocks(markdown.SyntaxHighlightText, v)
	return markdown.Bold(label+":") + "\n\n" + md.String() + "\n\n"
}

// cwePattern extracts the numeric CWE identifier from a MITRE definitions
// URL such as https://cwe.mitre.org/data/definitions/89.html.
var cwePattern = regexp.MustCompile(`/definitions/(\d+)\.html`)

// CWELink renders a labeled Markdown link for a CWE reference URL.
// Values that do not look like a MITRE definitions URL produce no output.
func CWELink(url string) string {
	if url == "" {
		return ""
	}
	m := cwePattern.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return markdown.Bold("CWE Link:") + " " + markdown.Link("CWE-"+m[1], url) + "\n\n"
}
