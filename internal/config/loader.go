package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory under $HOME for config, logs and data.
const AppDir = ".pong"

// Format is a configuration file syntax.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// FormatOf picks the syntax from the file extension. Anything that is not
// .toml is read as YAML.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// SkippedError reports an implicit config file that exists but could not
// be used. Load returns it together with a usable fallback config.
type SkippedError struct {
	Path string
	Err  error
}

func (e *SkippedError) Error() string {
	return fmt.Sprintf("config: skipped %s: %v", e.Path, e.Err)
}

func (e *SkippedError) Unwrap() error {
	return e.Err
}

// Load loads the configuration.
// Search order: customPath -> ~/.pong/pong.{yaml,toml} -> ./configs/pong.{yaml,toml}
// -> embedded default -> hard-coded Default.
// Only an explicit customPath that cannot be read or parsed is an error.
// An implicit file that exists but is broken is skipped; the config from
// the rest of the search order is returned with a *SkippedError.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		return LoadFile(customPath)
	}

	var skipped error
	for _, path := range searchPaths() {
		cfg, err := LoadFile(path)
		if err == nil {
			return cfg, skipped
		}
		if skipped == nil && !errors.Is(err, fs.ErrNotExist) {
			skipped = &SkippedError{Path: path, Err: err}
		}
	}

	cfg, err := Parse(defaultYAML, FormatYAML)
	if err != nil {
		return Default(), skipped
	}
	return cfg, skipped
}

// LoadFile reads and parses a single configuration file.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data, FormatOf(path))
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data on top of Default, so omitted keys keep their defaults.
func Parse(data []byte, format Format) (Config, error) {
	cfg := Default()

	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return Config{}, err
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, err
		}
	}

	cfg.normalize()
	return cfg, nil
}

// searchPaths lists the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if dir := HomeDir(); dir != "" {
		paths = append(paths,
			filepath.Join(dir, "pong.yaml"),
			filepath.Join(dir, "pong.toml"),
		)
	}
	return append(paths,
		filepath.Join("configs", "pong.yaml"),
		filepath.Join("configs", "pong.toml"),
	)
}

// HomeDir returns ~/.pong, or empty if home is unavailable.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir)
}

// DataPath resolves a file name inside ~/.pong. It falls back to the
// working directory when home is unavailable.
func DataPath(name string) string {
	if dir := HomeDir(); dir != "" {
		return filepath.Join(dir, name)
	}
	return name
}
