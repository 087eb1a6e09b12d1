package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestNewConfig tests default values.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	if cfg.Title != DefaultTitle {
		t.Errorf("unexpected default title: %q", cfg.Title)
	}
	if cfg.CellWidth != DefaultCellWidth {
		t.Errorf("unexpected default cell width: %d", cfg.CellWidth)
	}
	if cfg.EvidenceDir != DefaultEvidenceDir {
		t.Errorf("unexpected default evidence dir: %q", cfg.EvidenceDir)
	}
}

// TestValidate tests configuration validation.
func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Config {
		cfg := NewConfig()
		cfg.GraphPath = "graph.json"
		return cfg
	}

	t.Run("valid config passes", func(t *testing.T) {
		t.Parallel()

		if err := valid().Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("missing graph path", func(t *testing.T) {
		t.Parallel()

		cfg := valid()
		cfg.GraphPath = ""
		if err := cfg.Validate(); !errors.Is(err, ErrNoGraph) {
			t.Errorf("expected ErrNoGraph, got %v", err)
		}
	})

	t.Run("cell width below minimum", func(t *testing.T) {
		t.Parallel()

		cfg := valid()
		cfg.CellWidth = 1
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidCellWidth) {
			t.Errorf("expected ErrInvalidCellWidth, got %v", err)
		}
	})

	t.Run("empty evidence dir", func(t *testing.T) {
		t.Parallel()

		cfg := valid()
		cfg.EvidenceDir = ""
		if err := cfg.Validate(); !errors.Is(err, ErrEmptyEvidenceDir) {
			t.Errorf("expected ErrEmptyEvidenceDir, got %v", err)
		}
	})
}

// TestXDGDirs tests XDG directory paths.
func TestXDGDirs(t *testing.T) {
	t.Parallel()

	for name, dir := range map[string]string{
		"data":   XDGDataDir(),
		"config": XDGConfigDir(),
		"cache":  XDGCacheDir(),
	} {
		if !strings.HasSuffix(dir, AppName) {
			t.Errorf("%s dir %q must end with the app name", name, dir)
		}
	}
}

// TestLoadConfigFile tests YAML config loading.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("loads report settings", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".horizon")
		content := `report:
  title: "ACME Pentest"
  author: "Red Team"
  cellWidth: 50
`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cf.Report.Title != "ACME Pentest" {
			t.Errorf("unexpected title: %q", cf.Report.Title)
		}
		if cf.Report.CellWidth != 50 {
			t.Errorf("unexpected cell width: %d", cf.Report.CellWidth)
		}
	})

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("malformed YAML is an error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".horizon")
		if err := os.WriteFile(path, []byte("report: [broken"), 0600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected error for malformed YAML")
		}
	})
}

// TestFileApply tests merging file settings into the config.
func TestFileApply(t *testing.T) {
	t.Parallel()

	t.Run("non-zero settings override defaults", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cf := &File{Report: ReportSettings{Title: "ACME Pentest", CellWidth: 50}}
		cf.Apply(cfg)

		if cfg.Title != "ACME Pentest" {
			t.Errorf("title not applied: %q", cfg.Title)
		}
		if cfg.CellWidth != 50 {
			t.Errorf("cell width not applied: %d", cfg.CellWidth)
		}
	})

	t.Run("zero settings keep defaults", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		(&File{}).Apply(cfg)

		if cfg.Title != DefaultTitle || cfg.CellWidth != DefaultCellWidth || cfg.EvidenceDir != DefaultEvidenceDir {
			t.Errorf("defaults were clobbered: %+v", cfg)
		}
	})
}

// TestFindConfigFile tests config file discovery.
func TestFindConfigFile(t *testing.T) {
	// Not parallel: changes the working directory.

	t.Run("explicit path wins when it exists", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(path, []byte("report: {}\n"), 0600); err != nil {
			t.Fatal(err)
		}
		if got := FindConfigFile(path); got != path {
			t.Errorf("got %q, want %q", got, path)
		}
	})

	t.Run("missing explicit path yields empty", func(t *testing.T) {
		if got := FindConfigFile(filepath.Join(t.TempDir(), "absent.yaml")); got != "" {
			t.Errorf("got %q, want empty", got)
		}
	})

	t.Run("finds the file in the current directory", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte("report: {}\n"), 0600); err != nil {
			t.Fatal(err)
		}
		oldWD, err := os.Getwd()
		if err != nil {
			t.Fatal(err)
		}
		if err := os.Chdir(dir); err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() {
			if err := os.Chdir(oldWD); err != nil {
				t.Fatal(err)
			}
		})

		got := FindConfigFile("")
		if filepath.Base(got) != DefaultConfigFile {
			t.Errorf("got %q, want a %s in the working directory", got, DefaultConfigFile)
		}
	})
}
