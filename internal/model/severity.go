package model

import "strings"

// Severity represents the risk bucket assigned to a finding.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and sorting. The String() method provides
// human-readable output when needed.
type Severity int

const (
	// SeverityInfo is the default bucket for findings with no usable score
	// and no recognizable severity label.
	SeverityInfo Severity = iota

	// SeverityLow covers scored findings with limited standalone impact.
	SeverityLow

	// SeverityMedium covers exploitable weaknesses that may need extra
	// conditions or user interaction.
	SeverityMedium

	// SeverityHigh covers serious weaknesses granting significant control
	// or access to sensitive data.
	SeverityHigh

	// SeverityCritical covers findings with immediate risk of full system
	// or domain compromise.
	SeverityCritical
)

// String returns a human-readable representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityLow:
		return "LOW"
	case SeverityMedium:
		return "MEDIUM"
	case SeverityHigh:
		return "HIGH"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// BucketFor derives the severity bucket for a vulnerability record.
//
// The derivation is two-tier: a numeric "cvss" score, when present, is
// bucketed by threshold; otherwise the free-text "severity" label is
// matched case-insensitively, most severe first. A record with neither
// defaults to SeverityInfo.
//
// When score and label disagree, the numeric score wins. That precedence
// matches the upstream exporter and is a product decision, not an accident:
// analysts who want the label honored must clear the score.
func BucketFor(r Record) Severity {
	if score, ok := r.Float("cvss"); ok {
		switch {
		case score >= 9:
			return SeverityCritical
		case score >= 7:
			return SeverityHigh
		case score >= 4:
			return SeverityMedium
		case score > 0:
			return SeverityLow
		default:
			return SeverityInfo
		}
	}

	label := strings.ToLower(r.String("severity"))
	switch {
	case strings.Contains(label, "critical"):
		return SeverityCritical
	case strings.Contains(label, "high"):
		return SeverityHigh
	case strings.Contains(label, "medium"):
		return SeverityMedium
	case strings.Contains(label, "low"):
		return SeverityLow
	default:
		return SeverityInfo
	}
}

// CountBySeverity tallies the severity buckets across vulnerability records.
// The result is indexed by Severity.
func CountBySeverity(vulns []Record) [SeverityCritical + 1]int {
	var counts [SeverityCritical + 1]int
	for _, v := range vulns {
		counts[BucketFor(v)]++
	}
	return counts
}

// LegendEntry is one row of the severity legend appendix.
type LegendEntry struct {
	Severity    Severity
	Description string
}

// SeverityLegend returns the non-technical explanation of each severity
// level, most severe first, for the severity ratings appendix.
func SeverityLegend() []LegendEntry {
	return []LegendEntry{
		{SeverityCritical, "Immediate risk of full system or domain compromise with no meaningful barriers to exploitation."},
		{SeverityHigh, "Serious security weakness that allows attackers to gain significant control or sensitive data."},
		{SeverityMedium, "Exploitable weakness that may require additional conditions or user interaction."},
		{SeverityLow, "Limited impact issue or defense-in-depth gap with minimal exploitation value on its own."},
		{SeverityInfo, "Informational finding that does not directly pose a security risk but may aid attackers."},
	}
}
