package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# todoapp configuration file
# Values can be overridden by TODOAPP_* environment variables or CLI flags

# Title shown above the task list
title = "My Tasks"

# Use the terminal alternate screen for the TUI
alt_screen = true

# Task identifiers: "uuid" (random) or "sequential" (T1, T2, ...)
id_scheme = "uuid"

# Logging: level is debug, info, warn or error; format is text, json or logfmt
log_level = "info"
log_format = "text"
log_timestamps = false
log_caller = false

# Append logs to a file (supports ~ expansion). When empty, logs go to
# stderr for headless commands and are discarded while the TUI runs.
# log_file = "~/.todoapp/todoapp.log"
`
}
