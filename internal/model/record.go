package model

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/shnogeorgiev/Horizon/internal/format"
)

// Record is a single typed node exported from the engagement graph.
// Its attributes are an open mapping with no compile-time contract:
// hosts carry hostnames and networks, vulnerabilities carry CVSS scores
// and descriptions, credentials carry usernames and passwords, and so on.
// Absent keys and empty strings are equivalent and both mean "no value".
//
// Records are immutable once loaded. Classification into collections
// happens exactly once, at load time, using the normalized Type tag.
type Record struct {
	// ID is the graph node identifier. It is carried through for JSON
	// output but plays no role in document assembly.
	ID string `json:"id"`

	// Type is the lower-cased record type tag. A record whose type matches
	// none of the known categories is dropped from every section; a missing
	// type normalizes to the empty string and is dropped the same way.
	Type string `json:"type"`

	// Data is the open attribute mapping as parsed from JSON.
	Data map[string]any `json:"data"`
}

// String returns the attribute value for key as a string.
// Absent keys, nil values, and empty strings all yield "".
func (r Record) String(key string) string {
	return format.Stringify(r.Data[key])
}

// Float returns the attribute value for key as a float, if it parses as one.
// The boolean result is false for absent, empty, and malformed values,
// which is distinct from a parsed value of zero.
func (r Record) Float(key string) (float64, bool) {
	return format.TryFloat(r.Data[key])
}

// Has reports whether the attribute for key holds a non-empty value.
func (r Record) Has(key string) bool {
	return r.String(key) != ""
}

// graphFile mirrors the wire shape of the exported graph JSON.
// ID and type are decoded as any because the exporting tool is not strict
// about scalar types; numeric identifiers show up in real exports.
type graphFile struct {
	Nodes []struct {
		ID   any            `json:"id"`
		Type any            `json:"type"`
		Data map[string]any `json:"data"`
	} `json:"nodes"`
}

// ParseGraph parses an exported graph document into records.
// The type tag is lower-cased here, once; classification and every later
// lookup use the normalized form. Structurally invalid JSON is fatal and
// surfaced to the caller, per the ingestion contract.
func ParseGraph(data []byte) ([]Record, error) {
	var g graphFile
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("failed to parse graph: %w", err)
	}

	records := make([]Record, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		d := n.Data
		if d == nil {
			d = map[string]any{}
		}
		records = append(records, Record{
			ID:   format.Stringify(n.ID),
			Type: strings.ToLower(format.Stringify(n.Type)),
			Data: d,
		})
	}
	return records, nil
}

// Collections holds the records partitioned by type tag.
// The partition is disjoint: a record lands in exactly one slice, or in
// none when its type matches no known category.
type Collections struct {
	Hosts       []Record `json:"hosts,omitempty"`
	Vulns       []Record `json:"vulns,omitempty"`
	Credentials []Record `json:"credentials,omitempty"`
	Hashes      []Record `json:"hashes,omitempty"`
	Artifacts   []Record `json:"artifacts,omitempty"`
	Flags       []Record `json:"flags,omitempty"`
	WebApps     []Record `json:"webapps,omitempty"`
	Databases   []Record `json:"databases,omitempty"`
	Zones       []Record `json:"zones,omitempty"`
}

// Classify partitions records into collections by their normalized type tag.
// Slice order preserves load order, which later acts as the tie-breaker for
// severity-ordered listings.
func Classify(records []Record) *Collections {
	c := &Collections{}
	for _, r := range records {
		switch r.Type {
		case "host":
			c.Hosts = append(c.Hosts, r)
		case "vuln":
			c.Vulns = append(c.Vulns, r)
		case "credential":
			c.Credentials = append(c.Credentials, r)
		case "hash":
			c.Hashes = append(c.Hashes, r)
		case "artifact":
			c.Artifacts = append(c.Artifacts, r)
		case "flag":
			c.Flags = append(c.Flags, r)
		case "webapp":
			c.WebApps = append(c.WebApps, r)
		case "database":
			c.Databases = append(c.Databases, r)
		case "zone":
			c.Zones = append(c.Zones, r)
		}
	}
	return c
}

// SortByScore returns the records ordered by CVSS score, highest first.
// Records without a usable numeric score sort after every scored record.
// The sort is stable, so equal scores and unscored records keep their
// load order. The input slice is not modified.
func SortByScore(records []Record) []Record {
	ordered := make([]Record, len(records))
	copy(ordered, records)

	sort.SliceStable(ordered, func(i, j int) bool {
		return scoreKey(ordered[i]) > scoreKey(ordered[j])
	})
	return ordered
}

// scoreKey maps a record to its ordering key. Unscored records get -1 so
// they land after any record with a non-negative score.
func scoreKey(r Record) float64 {
	if score, ok := r.Float("cvss"); ok {
		return score
	}
	return -1
}
