package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the name looked up by Discover.
const FileName = "txtpb.toml"

// Config mirrors txtpb.toml. Zero values are never used directly: Load
// starts from Default and only overwrites keys the file defines.
type Config struct {
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
	Parse       ParseConfig       `toml:"parse"`
	Check       CheckConfig       `toml:"check"`
}

type DiagnosticsConfig struct {
	Max   int    `toml:"max"`
	Color string `toml:"color"` // auto|on|off
}

type ParseConfig struct {
	EmptyList string `toml:"empty_list"` // scalar|message
}

type CheckConfig struct {
	Jobs       int      `toml:"jobs"` // 0 = GOMAXPROCS
	Extensions []string `toml:"extensions"`
	Cache      bool     `toml:"cache"`
}

// Default returns the configuration used when no txtpb.toml is found.
func Default() Config {
	return Config{
		Diagnostics: DiagnosticsConfig{Max: 100, Color: "auto"},
		Parse:       ParseConfig{EmptyList: "scalar"},
		Check: CheckConfig{
			Extensions: []string{".textproto", ".txtpb", ".pbtxt", ".prototxt"},
			Cache:      true,
		},
	}
}

// Find walks up from startDir looking for txtpb.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Discover finds and loads txtpb.toml above startDir. Without a file it
// returns Default and an empty path.
func Discover(startDir string) (Config, string, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, "", err
	}
	if !ok {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, path, err
	}
	return cfg, path, nil
}

// Load decodes path on top of Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	// пустой список расширений в файле означает "по умолчанию", а не "ничего"
	if meta.IsDefined("check", "extensions") && len(cfg.Check.Extensions) == 0 {
		cfg.Check.Extensions = Default().Check.Extensions
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated values and numeric ranges.
func (c *Config) Validate() error {
	switch c.Diagnostics.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("[diagnostics].color must be auto, on or off, got %q", c.Diagnostics.Color)
	}
	if c.Diagnostics.Max < 0 {
		return fmt.Errorf("[diagnostics].max must not be negative, got %d", c.Diagnostics.Max)
	}
	switch c.Parse.EmptyList {
	case "scalar", "message":
	default:
		return fmt.Errorf("[parse].empty_list must be scalar or message, got %q", c.Parse.EmptyList)
	}
	if c.Check.Jobs < 0 {
		return fmt.Errorf("[check].jobs must not be negative, got %d", c.Check.Jobs)
	}
	for _, ext := range c.Check.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("[check].extensions entries must start with '.', got %q", ext)
		}
	}
	return nil
}
