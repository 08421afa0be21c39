// Package config tests configuration loading.
package config

import (
	"flag"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// clearEnv blanks every TODOAPP_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"TODOAPP_TITLE",
		"TODOAPP_ALT_SCREEN",
		"TODOAPP_ID_SCHEME",
		"TODOAPP_LOG_LEVEL",
		"TODOAPP_LOG_FORMAT",
		"TODOAPP_LOG_TIMESTAMPS",
		"TODOAPP_LOG_CALLER",
		"TODOAPP_LOG_FILE",
	} {
		t.Setenv(name, "")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)

	if cfg.Title != DefaultTitle {
		t.Errorf("Title: got %q, want %q", cfg.Title, DefaultTitle)
	}
	if cfg.IDScheme != IDSchemeUUID {
		t.Errorf("IDScheme: got %q, want uuid", cfg.IDScheme)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel: got %q, want info", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat: got %q, want text", cfg.LogFormat)
	}
	if !cfg.AltScreen {
		t.Error("AltScreen: got false, want true")
	}
}

func TestLoadFromNothing(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cws, err := loadFrom(dir, "", flag.NewFlagSet("test", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("loadFrom: %v", err)
	}

	if cws.Config.Title != "My Tasks" {
		t.Errorf("Title: got %q", cws.Config.Title)
	}
	if cws.Config.WorkDir != dir {
		t.Errorf("WorkDir: got %q, want %q", cws.Config.WorkDir, dir)
	}
	if len(cws.Files) != 0 {
		t.Errorf("Files: got %v, want none", cws.Files)
	}
	for _, field := range configFields() {
		if cws.Sources[field] != SourceDefault {
			t.Errorf("source of %s: got %q, want default", field, cws.Sources[field])
		}
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("TODOAPP_TITLE", "Groceries")
	t.Setenv("TODOAPP_ID_SCHEME", "sequential")
	t.Setenv("TODOAPP_LOG_TIMESTAMPS", "yes")
	t.Setenv("TODOAPP_ALT_SCREEN", "0")

	cfg := &Config{}
	setDefaults(cfg)
	sources := make(map[string]ConfigSource)
	loadFromEnv(cfg, sources)

	if cfg.Title != "Groceries" {
		t.Errorf("Title: got %q, want Groceries", cfg.Title)
	}
	if cfg.IDScheme != "sequential" {
		t.Errorf("IDScheme: got %q, want sequential", cfg.IDScheme)
	}
	if !cfg.LogTimestamps {
		t.Error("LogTimestamps: got false, want true")
	}
	if cfg.AltScreen {
		t.Error("AltScreen: got true, want false")
	}
	if sources["title"] != SourceEnv || sources["log_level"] != "" {
		t.Errorf("unexpected sources: %v", sources)
	}
}

func TestLoadConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "todoapp.toml")
	writeFile(t, configFile, `title = "Chores"
log_format = "json"
colour = "blue"
`)

	cws := &ConfigWithSources{Config: &Config{}, Sources: make(map[string]ConfigSource)}
	setDefaults(cws.Config)
	if err := loadConfigFile(cws, configFile, SourceProjFile); err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}

	if cws.Config.Title != "Chores" {
		t.Errorf("Title: got %q, want Chores", cws.Config.Title)
	}
	if cws.Config.LogFormat != "json" {
		t.Errorf("LogFormat: got %q, want json", cws.Config.LogFormat)
	}
	if cws.Sources["title"] != SourceProjFile {
		t.Errorf("title source: got %q", cws.Sources["title"])
	}
	if _, ok := cws.Sources["log_level"]; ok {
		t.Errorf("log_level should not be tracked, got %q", cws.Sources["log_level"])
	}
	if len(cws.Warnings) != 1 || !strings.Contains(cws.Warnings[0], `"colour"`) {
		t.Errorf("Warnings: got %v", cws.Warnings)
	}
}

func TestLoadConfigFileInvalid(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "todoapp.toml"), "title = \n")

	_, err := loadFrom(dir, "", flag.NewFlagSet("test", flag.ContinueOnError), nil)
	if err == nil {
		t.Fatal("expected error for malformed TOML")
	}
	if !strings.Contains(err.Error(), "loading project config file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadPriority(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	userFile := filepath.Join(t.TempDir(), "todoapp.toml")

	writeFile(t, userFile, `title = "User"
log_level = "debug"
log_format = "logfmt"
id_scheme = "sequential"
`)
	writeFile(t, filepath.Join(dir, ".todoapp.toml"), `title = "Project"
log_level = "warn"
log_format = "json"
`)
	t.Setenv("TODOAPP_LOG_LEVEL", "error")
	t.Setenv("TODOAPP_LOG_FORMAT", "text")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cws, err := loadFrom(dir, userFile, fs, []string{"-log-format", "JSON", "replay", "x.json"})
	if err != nil {
		t.Fatalf("loadFrom: %v", err)
	}
	cfg := cws.Config

	tests := []struct {
		field      string
		got        string
		want       string
		wantSource ConfigSource
	}{
		{"id_scheme", cfg.IDScheme, "sequential", SourceUserFile},
		{"title", cfg.Title, "Project", SourceProjFile},
		{"log_level", cfg.LogLevel, "error", SourceEnv},
		{"log_format", cfg.LogFormat, "json", SourceFlag},
		{"alt_screen", boolString(cfg.AltScreen), "true", SourceDefault},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("value: got %q, want %q", tt.got, tt.want)
			}
			if cws.Sources[tt.field] != tt.wantSource {
				t.Errorf("source: got %q, want %q", cws.Sources[tt.field], tt.wantSource)
			}
		})
	}

	if len(cws.Files) != 2 || cws.Files[0] != userFile {
		t.Errorf("Files: got %v", cws.Files)
	}
	if args := fs.Args(); len(args) != 2 || args[0] != "replay" {
		t.Errorf("remaining args: got %v", args)
	}
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func TestFinalizeConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		apply func(*Config)
		want  string
	}{
		{"log level", func(c *Config) { c.LogLevel = "loud" }, "invalid log_level"},
		{"log format", func(c *Config) { c.LogFormat = "xml" }, "invalid log_format"},
		{"id scheme", func(c *Config) { c.IDScheme = "random" }, "invalid id_scheme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			setDefaults(cfg)
			tt.apply(cfg)

			err := finalizeConfig(cfg)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error: got %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestFinalizeConfigNormalizes(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{WorkDir: dir}
	setDefaults(cfg)
	cfg.Title = "   "
	cfg.LogLevel = " DEBUG "
	cfg.LogFile = "logs/todoapp.log"

	if err := finalizeConfig(cfg); err != nil {
		t.Fatalf("finalizeConfig: %v", err)
	}
	if cfg.Title != DefaultTitle {
		t.Errorf("Title: got %q, want default", cfg.Title)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q, want debug", cfg.LogLevel)
	}
	if want := filepath.Join(dir, "logs", "todoapp.log"); cfg.LogFile != want {
		t.Errorf("LogFile: got %q, want %q", cfg.LogFile, want)
	}
}

func TestParseFlagsUnknownFlag(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	if err := parseFlags(cfg, fs, []string{"-nope"}, nil); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot get home directory")
	}
	t.Setenv("TODOAPP_TEST_DIR", "/tmp/todoapp")

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"~/test", filepath.Join(home, "test")},
		{"~", home},
		{"/absolute/path", "/absolute/path"},
		{"relative", "relative"},
		{"$TODOAPP_TEST_DIR/log", "/tmp/todoapp/log"},
	}
	if runtime.GOOS != "windows" {
		tests = append(tests, struct {
			input string
			want  string
		}{`~\test`, `~\test`})
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := expandPath(tt.input)
			if got != tt.want {
				t.Errorf("expandPath(%q): got %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExpandPercentVars(t *testing.T) {
	t.Setenv("TODOAPP_PCT", "value")

	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"%TODOAPP_PCT%", "value"},
		{`%TODOAPP_PCT%\logs`, `value\logs`},
		{"%TODOAPP_UNSET_VAR%", "%TODOAPP_UNSET_VAR%"},
		{"100%", "100%"},
		{"%%", "%%"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := expandPercentVars(tt.input); got != tt.want {
				t.Errorf("expandPercentVars(%q): got %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExampleConfigParses(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "todoapp.toml")
	writeFile(t, path, ExampleConfig())

	cws := &ConfigWithSources{Config: &Config{}, Sources: make(map[string]ConfigSource)}
	if err := loadConfigFile(cws, path, SourceProjFile); err != nil {
		t.Fatalf("example config does not parse: %v", err)
	}
	if len(cws.Warnings) != 0 {
		t.Errorf("example config has unknown keys: %v", cws.Warnings)
	}
	if cws.Config.Title != DefaultTitle {
		t.Errorf("Title: got %q", cws.Config.Title)
	}
}
