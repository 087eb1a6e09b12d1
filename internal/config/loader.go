package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".horizon"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// ReportSettings holds the report-shaping options of the config file.
// Every field is optional; zero values defer to the built-in defaults.
type ReportSettings struct {
	// Title, Author, and Date populate the document metadata preamble.
	Title  string `yaml:"title,omitempty"`
	Author string `yaml:"author,omitempty"`
	Date   string `yaml:"date,omitempty"`

	// CellWidth overrides the compacted table cell width.
	CellWidth int `yaml:"cellWidth,omitempty"`

	// EvidenceDir overrides the evidence directory name.
	EvidenceDir string `yaml:"evidenceDir,omitempty"`
}

// File represents the structure of the .horizon configuration file.
type File struct {
	Report ReportSettings `yaml:"report,omitempty"`
}

// Apply copies the file's non-zero settings onto the config.
// CLI flags are applied after this, so flags win over the file.
func (f *File) Apply(c *Config) {
	if f.Report.Title != "" {
		c.Title = f.Report.Title
	}
	if f.Report.Author != "" {
		c.Author = f.Report.Author
	}
	if f.Report.Date != "" {
		c.Date = f.Report.Date
	}
	if f.Report.CellWidth > 0 {
		c.CellWidth = f.Report.CellWidth
	}
	if f.Report.EvidenceDir != "" {
		c.EvidenceDir = f.Report.EvidenceDir
	}
}

// LoadConfigFile loads report settings from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound. Callers should
// handle this error based on whether the path was explicitly specified.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .horizon in the current directory
// 3. Look for .horizon in the user's home directory
//
// Returns the path to the configuration file if found, or empty string.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}
