package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the optional per-directory override file.
const FileName = "manifest.toml"

// Output contains the manifest output filenames.
type Output struct {
	CSVName  string `toml:"csv_name"`
	JSONName string `toml:"json_name"`
}

// Scan contains directory scanning behavior.
type Scan struct {
	// MatchUppercaseExtensions widens the .html match to uppercase/mixed
	// variants (.HTML, .Html). Off by default: the canonical behavior
	// matches the lowercase extension only.
	MatchUppercaseExtensions bool `toml:"match_uppercase_extensions"`
}

// Summary contains console summary limits.
type Summary struct {
	EntryLimit  int `toml:"entry_limit"`
	IDWidth     int `toml:"id_width"`
	TopPrefixes int `toml:"top_prefixes"`
}

// Logging contains log verbosity and format settings.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config centralizes every knob the CLI needs.
type Config struct {
	Output  Output  `toml:"output"`
	Scan    Scan    `toml:"scan"`
	Summary Summary `toml:"summary"`
	Logging Logging `toml:"logging"`
}

// Load returns the effective configuration for a target directory:
// defaults, overlaid with dir/manifest.toml when that file exists. The
// returned bool reports whether an override file was read.
func Load(dir string) (*Config, bool, error) {
	cfg := Default()

	path := filepath.Join(dir, FileName)
	file, err := os.Open(path)
	exists := err == nil
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, false, fmt.Errorf("open config: %w", err)
	}

	if exists {
		defer file.Close()
		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, false, err
	}

	return &cfg, exists, nil
}

// normalize trims user-supplied values and fills blanks with defaults so
// a sparse override file never disables an output.
func (c *Config) normalize() {
	c.Output.CSVName = strings.TrimSpace(c.Output.CSVName)
	if c.Output.CSVName == "" {
		c.Output.CSVName = defaultCSVName
	}
	c.Output.JSONName = strings.TrimSpace(c.Output.JSONName)
	if c.Output.JSONName == "" {
		c.Output.JSONName = defaultJSONName
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}
