package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is looked up in the default storage directory
const ConfigFileName = "config.toml"

// Loader handles loading configuration from multiple sources
type Loader struct {
	config   *Config
	filePath string
}

// NewLoader creates a new configuration loader. The config file defaults to
// ~/.argus/config.toml and can be moved with ARGUS_CONFIG.
func NewLoader() *Loader {
	path := os.Getenv("ARGUS_CONFIG")
	if path == "" {
		path = filepath.Join(DefaultDir(), ConfigFileName)
	}
	return NewLoaderWithFile(path)
}

// NewLoaderWithFile creates a loader reading the given TOML file
func NewLoaderWithFile(path string) *Loader {
	return &Loader{
		config:   NewConfig(),
		filePath: path,
	}
}

// FilePath returns the config file the loader reads
func (l *Loader) FilePath() string {
	return l.filePath
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the TOML config file, if present
// 3. Override with environment variables
// 4. Override with command line flags (LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	if err := l.loadFromFile(); err != nil {
		return nil, err
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// loadFromFile decodes the TOML file over the current configuration. Keys
// missing from the file keep their previous value.
func (l *Loader) loadFromFile() error {
	if l.filePath == "" {
		return nil
	}
	if _, err := os.Stat(l.filePath); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	meta, err := toml.DecodeFile(l.filePath, l.config)
	if err != nil {
		return &ConfigError{Field: "file", Message: "cannot parse " + l.filePath + ": " + err.Error()}
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return &ConfigError{Field: undecoded[0].String(), Message: "unknown key in " + l.filePath}
	}
	return nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Storage overrides
	Dir      *string
	Filename *string
	Backend  *string

	// Display overrides
	ShowAges *bool
	NoColor  *bool

	// Application overrides
	LogLevel *string
	Verbose  *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.Dir != nil {
		config.Storage.Dir = *overrides.Dir
	}
	if overrides.Filename != nil {
		config.Storage.Filename = *overrides.Filename
	}
	if overrides.Backend != nil {
		config.Storage.Backend = *overrides.Backend
	}

	if overrides.ShowAges != nil {
		config.Display.ShowAges = *overrides.ShowAges
	}
	if overrides.NoColor != nil {
		config.Display.NoColor = *overrides.NoColor
	}

	if overrides.LogLevel != nil {
		config.Application.LogLevel = *overrides.LogLevel
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
