package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Storage backends
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds all configuration options for argus
type Config struct {
	Storage     StorageConfig     `toml:"storage"`
	Display     DisplayConfig     `toml:"display"`
	Validation  ValidationConfig  `toml:"validation"`
	Application ApplicationConfig `toml:"application"`
}

// StorageConfig locates the persisted task document. It is passed explicitly
// to the stores; nothing in the program keeps the path as global state.
type StorageConfig struct {
	Dir            string `toml:"dir" env:"ARGUS_DIR"`
	Filename       string `toml:"filename" env:"ARGUS_FILENAME"`
	Backend        string `toml:"backend" env:"ARGUS_BACKEND"`
	DirPermissions uint32 `toml:"dir_permissions" env:"ARGUS_DIR_PERMISSIONS"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	ShowAges bool `toml:"show_ages" env:"ARGUS_SHOW_AGES"`
	NoColor  bool `toml:"no_color" env:"ARGUS_NO_COLOR"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	DescriptionMinLength int `toml:"description_min_length" env:"ARGUS_DESCRIPTION_MIN"`
	DescriptionMaxLength int `toml:"description_max_length" env:"ARGUS_DESCRIPTION_MAX"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	LogLevel  string `toml:"log_level" env:"ARGUS_LOG_LEVEL"`
	LogFormat string `toml:"log_format" env:"ARGUS_LOG_FORMAT"`
	Verbose   bool   `toml:"verbose" env:"ARGUS_VERBOSE"`
}

// DefaultDir returns ~/.argus, or .argus in the working directory when the
// home directory cannot be resolved.
func DefaultDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".argus"
	}
	return filepath.Join(homeDir, ".argus")
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Dir:            DefaultDir(),
			Backend:        BackendJSON,
			DirPermissions: 0755,
		},
		Display: DisplayConfig{
			ShowAges: false,
			NoColor:  false,
		},
		Validation: ValidationConfig{
			DescriptionMinLength: 1,
			DescriptionMaxLength: 500,
		},
		Application: ApplicationConfig{
			LogLevel:  "warn",
			LogFormat: "text",
			Verbose:   false,
		},
	}
}

// DefaultFilename returns the document name used by a backend when no
// filename is configured.
func DefaultFilename(backend string) string {
	if backend == BackendSQLite {
		return "data.db"
	}
	return "data.json"
}

// Path returns the full path of the persisted task document
func (s StorageConfig) Path() string {
	name := s.Filename
	if name == "" {
		name = DefaultFilename(s.Backend)
	}
	return filepath.Join(s.Dir, name)
}

// Perm returns the directory permissions as a file mode
func (s StorageConfig) Perm() os.FileMode {
	if s.DirPermissions == 0 {
		return 0755
	}
	return os.FileMode(s.DirPermissions)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	if dir := os.Getenv("ARGUS_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("ARGUS_FILENAME"); filename != "" {
		c.Storage.Filename = filename
	}
	if backend := os.Getenv("ARGUS_BACKEND"); backend != "" {
		c.Storage.Backend = backend
	}
	if perms := os.Getenv("ARGUS_DIR_PERMISSIONS"); perms != "" {
		c.Storage.DirPermissions = ParseUint32WithFallback(perms, 8, c.Storage.DirPermissions)
	}

	if ages := os.Getenv("ARGUS_SHOW_AGES"); ages != "" {
		c.Display.ShowAges = ParseBoolWithFallback(ages, c.Display.ShowAges)
	}
	if noColor := os.Getenv("ARGUS_NO_COLOR"); noColor != "" {
		c.Display.NoColor = ParseBoolWithFallback(noColor, c.Display.NoColor)
	}

	if minLen := os.Getenv("ARGUS_DESCRIPTION_MIN"); minLen != "" {
		c.Validation.DescriptionMinLength = ParseIntWithFallback(minLen, c.Validation.DescriptionMinLength)
	}
	if maxLen := os.Getenv("ARGUS_DESCRIPTION_MAX"); maxLen != "" {
		c.Validation.DescriptionMaxLength = ParseIntWithFallback(maxLen, c.Validation.DescriptionMaxLength)
	}

	if level := os.Getenv("ARGUS_LOG_LEVEL"); level != "" {
		c.Application.LogLevel = level
	}
	if format := os.Getenv("ARGUS_LOG_FORMAT"); format != "" {
		c.Application.LogFormat = format
	}
	if verbose := os.Getenv("ARGUS_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "storage directory cannot be empty"}
	}
	switch c.Storage.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return &ConfigError{Field: "storage.backend", Message: "backend must be one of: json, sqlite (got " + strconv.Quote(c.Storage.Backend) + ")"}
	}
	if c.Storage.DirPermissions > 0777 {
		return &ConfigError{Field: "storage.dir_permissions", Message: "directory permissions must be at most 0777"}
	}

	if c.Validation.DescriptionMinLength < 1 {
		return &ConfigError{Field: "validation.description_min_length", Message: "description minimum length must be at least 1"}
	}
	if c.Validation.DescriptionMaxLength < c.Validation.DescriptionMinLength {
		return &ConfigError{Field: "validation.description_max_length", Message: "description maximum length must be greater than minimum length"}
	}

	switch c.Application.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ConfigError{Field: "application.log_level", Message: "log level must be one of: debug, info, warn, error"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
