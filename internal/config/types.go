package config

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource
	// Files lists the config files that were read, lowest priority first.
	Files []string
	// Warnings holds non-fatal problems such as unknown keys in a config file.
	Warnings []string
}

// Default values.
const (
	DefaultTitle     = "My Tasks"
	DefaultIDScheme  = IDSchemeUUID
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultAltScreen = true
)

// ID schemes for new tasks.
const (
	IDSchemeUUID       = "uuid"
	IDSchemeSequential = "sequential"
)

// Config holds the full configuration for todoapp.
type Config struct {
	// Screen
	Title     string `toml:"title"`
	AltScreen bool   `toml:"alt_screen"`

	// Task identifiers: "uuid" or "sequential"
	IDScheme string `toml:"id_scheme"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`
	LogFile       string `toml:"log_file"` // Empty: stderr for headless commands, discarded under the TUI

	// Working directory (computed)
	WorkDir string `toml:"-"`
}

// configFields returns the list of configurable field names for source tracking.
func configFields() []string {
	return []string{
		"title",
		"alt_screen",
		"id_scheme",
		"log_level",
		"log_format",
		"log_timestamps",
		"log_caller",
		"log_file",
	}
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.Title = DefaultTitle
	cfg.AltScreen = DefaultAltScreen
	cfg.IDScheme = DefaultIDScheme
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = false
	cfg.LogCaller = false
	cfg.LogFile = ""
}
