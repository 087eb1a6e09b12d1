package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "horizon"

	// DefaultCellWidth is the maximum width of compacted table cells.
	// Values longer than this are clipped to their first line and
	// truncated with an ellipsis so full-width tables stay readable.
	DefaultCellWidth = 70

	// DefaultEvidenceDir is the directory, relative to the typesetter's
	// working directory, where evidence filenames are resolved. Horizon
	// never opens these files; the name only appears in the emitted
	// conditional blocks.
	DefaultEvidenceDir = "Evidence"

	// DefaultTitle is the document title when neither the config file nor
	// the CLI provides one.
	DefaultTitle = "Penetration Test Report"

	// DefaultOutputFile is the report path used when exporting without an
	// explicit output flag and stdout is not wanted.
	DefaultOutputFile = "horizon_report.md"
)

// Config holds all configuration options for a Horizon export.
// This struct is populated from CLI flags and the optional config file and
// passed through the application via dependency injection rather than
// global state.
//
// Design decision: We use a single flat struct instead of nested structs
// for simplicity. The number of options is manageable, and nesting would
// add complexity without significant benefit.
type Config struct {
	// GraphPath is the exported graph JSON file to load records from.
	GraphPath string

	// OutputFile is the report destination. Empty means stdout.
	OutputFile string

	// Title, Author, and Date populate the document metadata preamble.
	// Empty fields fall back to assembler defaults (generic title,
	// export day).
	Title  string
	Author string
	Date   string

	// CellWidth is the maximum width of compacted table cells.
	CellWidth int

	// EvidenceDir is the evidence directory name emitted into the
	// conditional image blocks.
	EvidenceDir string

	// JSONReport switches output from the assembled document to the
	// classified collections as JSON.
	JSONReport bool

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .horizon in the current directory
	// and then in the user's home directory.
	ConfigFilePath string

	// DBDir is the directory holding the export archive database.
	// Defaults to the XDG data directory.
	DBDir string

	// SaveToDB indicates whether to archive the generated document.
	SaveToDB bool
}

// NewConfig creates a new Config with default values.
// Users can override specific values after creation.
func NewConfig() *Config {
	return &Config{
		Title:       DefaultTitle,
		CellWidth:   DefaultCellWidth,
		EvidenceDir: DefaultEvidenceDir,
	}
}

// XDGDataDir returns the XDG data directory for Horizon.
// On Linux: ~/.local/share/horizon
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for Horizon.
// On Linux: ~/.config/horizon
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGCacheDir returns the XDG cache directory for Horizon.
// On Linux: ~/.cache/horizon
func XDGCacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// The first error found is returned because fixing one error often makes
// others irrelevant.
func (c *Config) Validate() error {
	if c.GraphPath == "" {
		return ErrNoGraph
	}

	// Width 1 leaves no room for the ellipsis marker
	if c.CellWidth < 2 {
		return ErrInvalidCellWidth
	}

	if c.EvidenceDir == "" {
		return ErrEmptyEvidenceDir
	}

	return nil
}
