// Package model defines the core data structures used throughout Horizon.
//
// This package contains the following main types:
//   - Record: a typed graph node with an open attribute mapping
//   - Collections: the records partitioned by type tag at load time
//   - Severity: the five-level risk bucket derived per vulnerability
//
// Design decision: We separate models into their own package to avoid
// circular dependencies. The render and report packages both consume these
// types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output and
// export archiving.
package model
