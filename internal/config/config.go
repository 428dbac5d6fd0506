// Package config loads the synth.toml project configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"synth-generator/internal/mapping"
	"synth-generator/internal/plan"
)

// FileName is the name of the project configuration file.
const FileName = "synth.toml"

// Config is the project configuration.
type Config struct {
	// Root is the directory containing the configuration file. Relative
	// paths are resolved against it.
	Root string `toml:"-"`

	Generate Generate `toml:"generate"`
	Log      Log      `toml:"log"`
}

// Generate holds the [generate] section.
type Generate struct {
	// File is the YAML synthesis file.
	File string `toml:"file"`
	// Packages are Go package patterns analyzed for declarations.
	Packages []string `toml:"packages"`
	// Snapshots are msgpack oracle snapshots consulted after the packages.
	Snapshots []string `toml:"snapshots"`
	// Out is the directory artifacts are written to.
	Out string `toml:"out"`
	// Package is the default package clause of artifacts.
	Package string `toml:"package"`
	// Pattern and Policy are defaults for requests that leave them empty.
	Pattern string `toml:"pattern"`
	Policy  string `toml:"policy"`
	// Jobs bounds parallel requests; 0 means GOMAXPROCS.
	Jobs int `toml:"jobs"`
	// Prune removes synthesized files no request produced.
	Prune bool `toml:"prune"`
}

// Log holds the [log] section.
type Log struct {
	Level string `toml:"level"`
}

// Default returns the configuration used without a synth.toml.
func Default() *Config {
	return &Config{
		Root: ".",
		Generate: Generate{
			File:    "synth.yaml",
			Out:     ".",
			Package: "main",
		},
		Log: Log{Level: "warn"},
	}
}

// Find walks up from startDir looking for synth.toml.
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

// Load parses a synth.toml file on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}

		sort.Strings(keys)

		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	cfg.Root = filepath.Dir(abs)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Discover loads the synth.toml found from startDir, or the defaults when
// there is none.
func Discover(startDir string) (*Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}

	if !ok {
		return Default(), nil
	}

	return Load(path)
}

// Validate checks the values the rest of the tool relies on.
func (c *Config) Validate() error {
	var errs []error

	if c.Generate.Jobs < 0 {
		errs = append(errs, fmt.Errorf("generate.jobs must not be negative, got %d", c.Generate.Jobs))
	}

	if _, err := plan.ParsePattern(c.Generate.Pattern); err != nil {
		errs = append(errs, fmt.Errorf("generate.pattern: %w", err))
	}

	if _, err := plan.ParsePolicy(c.Generate.Policy); err != nil {
		errs = append(errs, fmt.Errorf("generate.policy: %w", err))
	}

	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// LogLevel parses the configured log level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelWarn, fmt.Errorf("log.level: %w", err)
	}

	return level, nil
}

// Path resolves p against the configuration root.
func (c *Config) Path(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(c.Root, p)
}

// Defaults returns the request defaults of the [generate] section.
func (c *Config) Defaults() mapping.Defaults {
	return mapping.Defaults{
		Package: c.Generate.Package,
		Policy:  c.Generate.Policy,
		Pattern: c.Generate.Pattern,
	}
}
