package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoGraph is returned when no graph file is specified.
	ErrNoGraph = errors.New("no graph specified: provide an exported graph JSON file")

	// ErrInvalidCellWidth is returned when the cell width cannot hold at
	// least one character plus the truncation marker.
	ErrInvalidCellWidth = errors.New("invalid cell width: must be at least 2")

	// ErrEmptyEvidenceDir is returned when the evidence directory name is
	// blank; the emitted conditional blocks would reference bare filenames.
	ErrEmptyEvidenceDir = errors.New("invalid evidence directory: must not be empty")
)
