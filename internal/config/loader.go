package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"csv-adui-converter/internal/logger"
)

const (
	// ProjectConfigFile is searched for in the working directory and its parents.
	ProjectConfigFile = "csv-adui.yaml"
	// UserConfigDir is relative to the home directory.
	UserConfigDir = ".config/csv-adui-converter"
	// UserConfigFile is the file name inside UserConfigDir.
	UserConfigFile = "config.yaml"
)

// Loader reads configuration layers from a filesystem.
type Loader struct {
	Fs      afero.Fs
	Logger  logger.Logger
	HomeDir string
	WorkDir string
}

// NewLoader returns a Loader rooted at the user's home and working directory.
func NewLoader(fsys afero.Fs, log logger.Logger) *Loader {
	home, _ := os.UserHomeDir()
	wd, _ := os.Getwd()

	return &Loader{Fs: fsys, Logger: log, HomeDir: home, WorkDir: wd}
}

// Load merges, in increasing precedence: defaults, the user file, the nearest
// project file, the explicit file, then overrides. A missing or broken user or
// project file is skipped; a missing or broken explicit file is an error.
func (l *Loader) Load(explicit string, overrides *Config) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range []string{l.userConfigPath(), l.findProjectConfig()} {
		if path == "" {
			continue
		}

		layer, err := l.LoadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}

		if err != nil {
			l.log().Warn("Skipping config file", "path", path, "error", err)

			continue
		}

		l.log().Debug("Loaded config", "path", path)

		err = cfg.Merge(layer)
		if err != nil {
			return nil, fmt.Errorf("failed to merge %s: %w", path, err)
		}
	}

	if explicit != "" {
		layer, err := l.LoadFile(explicit)
		if err != nil {
			return nil, err
		}

		l.log().Debug("Loaded config", "path", explicit)

		err = cfg.Merge(layer)
		if err != nil {
			return nil, fmt.Errorf("failed to merge %s: %w", explicit, err)
		}
	}

	err := cfg.Merge(overrides)
	if err != nil {
		return nil, fmt.Errorf("failed to apply overrides: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile reads a single YAML layer.
func (l *Loader) LoadFile(path string) (*Config, error) {
	data, err := afero.ReadFile(l.Fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

func (l *Loader) log() logger.Logger {
	if l.Logger == nil {
		return logger.Discard()
	}

	return l.Logger
}

func (l *Loader) userConfigPath() string {
	if l.HomeDir == "" {
		return ""
	}

	return filepath.Join(l.HomeDir, UserConfigDir, UserConfigFile)
}

// findProjectConfig walks up from WorkDir to the root.
func (l *Loader) findProjectConfig() string {
	if l.WorkDir == "" {
		return ""
	}

	dir := l.WorkDir

	for {
		path := filepath.Join(dir, ProjectConfigFile)

		ok, err := afero.Exists(l.Fs, path)
		if err == nil && ok {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}

		dir = parent
	}
}
