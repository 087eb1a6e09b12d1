// Package format provides the text sanitizers shared by all report builders.
//
// The generated document mixes two markup dialects: Pandoc Markdown for
// prose and tables, and raw LaTeX blocks for full-width tables and evidence
// embedding. Each dialect has its own escaping rules, and every record
// attribute that reaches the document passes through exactly one of them.
//
// All helpers in this package accept arbitrary attribute values, treat nil
// and empty string as "no value", return empty output for empty input, and
// never panic. Builders rely on this contract to degrade gracefully when
// records are sparse or malformed.
package format
