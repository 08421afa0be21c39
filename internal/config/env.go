package config

import "os"

// loadFromEnv overrides config from TODOAPP_* environment variables and
// updates source tracking.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) {
	setEnv := func(field string) {
		if sources != nil {
			sources[field] = SourceEnv
		}
	}

	if v := os.Getenv("TODOAPP_TITLE"); v != "" {
		cfg.Title = v
		setEnv("title")
	}
	if v := os.Getenv("TODOAPP_ALT_SCREEN"); v != "" {
		cfg.AltScreen = boolFromString(v)
		setEnv("alt_screen")
	}
	if v := os.Getenv("TODOAPP_ID_SCHEME"); v != "" {
		cfg.IDScheme = v
		setEnv("id_scheme")
	}
	if v := os.Getenv("TODOAPP_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
		setEnv("log_level")
	}
	if v := os.Getenv("TODOAPP_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
		setEnv("log_format")
	}
	if v := os.Getenv("TODOAPP_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = boolFromString(v)
		setEnv("log_timestamps")
	}
	if v := os.Getenv("TODOAPP_LOG_CALLER"); v != "" {
		cfg.LogCaller = boolFromString(v)
		setEnv("log_caller")
	}
	if v := os.Getenv("TODOAPP_LOG_FILE"); v != "" {
		cfg.LogFile = v
		setEnv("log_file")
	}
}
