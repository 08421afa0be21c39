package config

import "flag"

// flagFields maps flag names to the config fields they set.
var flagFields = map[string]string{
	"title":          "title",
	"alt-screen":     "alt_screen",
	"id-scheme":      "id_scheme",
	"log-level":      "log_level",
	"log-format":     "log_format",
	"log-timestamps": "log_timestamps",
	"log-caller":     "log_caller",
	"log-file":       "log_file",
}

// parseFlags defines global CLI flags on fs, parses args, and records
// explicitly set flags in sources. Unparsed arguments stay in fs.Args().
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet("todoapp", flag.ContinueOnError)
	}

	fs.StringVar(&cfg.Title, "title", cfg.Title, "Screen title")
	fs.BoolVar(&cfg.AltScreen, "alt-screen", cfg.AltScreen, "Use the terminal alternate screen")
	fs.StringVar(&cfg.IDScheme, "id-scheme", cfg.IDScheme, "Task ID scheme (uuid|sequential)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text|json|logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Include timestamps in log output")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Include caller location in log output")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Append logs to this file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if sources != nil {
		fs.Visit(func(f *flag.Flag) {
			if field, ok := flagFields[f.Name]; ok {
				sources[field] = SourceFlag
			}
		})
	}
	return nil
}
