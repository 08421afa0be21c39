// Package cmd implements the CLI command structure for todoapp.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/nibzard/todoapp-go/internal/config"
	"github.com/nibzard/todoapp-go/internal/logging"
	"github.com/nibzard/todoapp-go/internal/replay"
	"github.com/nibzard/todoapp-go/internal/todo"
	"github.com/nibzard/todoapp-go/internal/ui"
)

// Version is set via ldflags at build time.
var Version = "dev"

// ErrInvalidScript is returned by validate for scripts that fail the schema.
var ErrInvalidScript = errors.New("replay script is invalid")

// runTUI is replaced in tests.
var runTUI = ui.RunTUI

// Run executes the todoapp CLI.
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("todoapp", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		printUsage(fs, stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := cws.Config
	if *help {
		printUsage(fs, stdout)
		return nil
	}
	if *showVersion {
		return versionCommand(stdout)
	}

	// Determine the subcommand; no arguments opens the TUI
	subcommand := "tui"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	switch subcommand {
	case "tui":
		return tuiCommand(ctx, cws, remainingArgs, stderr)
	case "replay":
		return replayCommand(cfg, remainingArgs, stdout, stderr)
	case "validate":
		return validateCommand(remainingArgs, stdout, stderr)
	case "schema":
		_, err := stdout.Write(replay.Schema())
		return err
	case "config":
		return configCommand(cws, remainingArgs, stdout, stderr)
	case "version":
		return versionCommand(stdout)
	case "help":
		printUsage(fs, stdout)
		return nil
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// newStore builds an empty store using the configured ID scheme.
func newStore(cfg *config.Config) *todo.Store {
	if cfg.IDScheme == config.IDSchemeSequential {
		return todo.NewStore(todo.WithIDGenerator(todo.SequentialIDs("T")))
	}
	return todo.NewStore()
}

// tuiCommand launches the TUI over an empty store.
func tuiCommand(ctx context.Context, cws *config.ConfigWithSources, args []string, stderr io.Writer) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments: %v", args)
	}
	cfg := cws.Config

	// The screen owns the terminal, so logs only go to a configured file.
	logger, closer, err := logging.Open(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()
	for _, w := range cws.Warnings {
		fmt.Fprintf(stderr, "warning: %s\n", w)
		logger.Warn("config", "detail", w)
	}

	store := newStore(cfg)
	stop := logging.ObserveStore(logger, store)
	defer stop()

	logger.Info("tui started", "title", cfg.Title, "id_scheme", cfg.IDScheme)
	err = runTUI(ctx, cfg, store, ui.WithLogger(logger))
	open, done := store.Counts()
	logger.Info("tui stopped", "open", open, "done", done)
	return err
}

// replayCommand applies a replay script to a fresh store and prints the result.
func replayCommand(cfg *config.Config, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("todoapp replay", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", "text", "Output format (text|json)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	remaining := fs.Args()
	if len(remaining) == 0 {
		return fmt.Errorf("replay requires a script file")
	}
	if len(remaining) > 1 {
		return fmt.Errorf("unexpected arguments: %v", remaining[1:])
	}
	if *format != "text" && *format != "json" {
		return fmt.Errorf("invalid format %q, must be text or json", *format)
	}

	logger, closer, err := logging.Open(cfg, stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	script, err := replay.Load(remaining[0])
	if err != nil {
		return err
	}

	store := newStore(cfg)
	stop := logging.ObserveStore(logger, store)
	defer stop()

	res := script.Apply(store, logger)
	logger.Info("replay finished", "added", res.Added, "toggled", res.Toggled, "missed", res.Missed)

	if *format == "json" {
		return store.Snapshot().Write(stdout)
	}
	replay.WriteText(stdout, cfg.Title, store.List())
	return nil
}

// validateCommand checks a replay script against the schema without running it.
func validateCommand(args []string, stdout, stderr io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("validate requires exactly one script file")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read replay script: %w", err)
	}

	result := replay.Validate(data)
	if result.Valid {
		fmt.Fprintf(stdout, "%s: valid\n", args[0])
		return nil
	}
	for _, e := range result.Errors {
		fmt.Fprintf(stderr, "%s: %v\n", args[0], e)
	}
	return ErrInvalidScript
}

// configCommand prints the effective configuration and where each value came from.
func configCommand(cws *config.ConfigWithSources, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("todoapp config", flag.ContinueOnError)
	fs.SetOutput(stderr)
	example := fs.Bool("example", false, "Print an example config file")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *example {
		fmt.Fprint(stdout, config.ExampleConfig())
		return nil
	}

	cfg := cws.Config
	values := map[string]string{
		"title":          cfg.Title,
		"alt_screen":     fmt.Sprint(cfg.AltScreen),
		"id_scheme":      cfg.IDScheme,
		"log_level":      cfg.LogLevel,
		"log_format":     cfg.LogFormat,
		"log_timestamps": fmt.Sprint(cfg.LogTimestamps),
		"log_caller":     fmt.Sprint(cfg.LogCaller),
		"log_file":       cfg.LogFile,
	}

	fmt.Fprintln(stdout, "Config files:")
	if len(cws.Files) == 0 {
		fmt.Fprintln(stdout, "  (none)")
	}
	for _, f := range cws.Files {
		fmt.Fprintf(stdout, "  %s\n", f)
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Values:")
	for _, field := range cws.SortedSources() {
		fmt.Fprintf(stdout, "  %-15s %-12q (%s)\n", field, values[field], cws.Sources[field])
	}
	for _, w := range cws.Warnings {
		fmt.Fprintf(stderr, "warning: %s\n", w)
	}
	return nil
}

func versionCommand(w io.Writer) error {
	fmt.Fprintf(w, "todoapp version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "todoapp - a single-screen to-do list")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  todoapp [options] [command] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  tui                     Launch the task list (default command)")
	fmt.Fprintln(w, "  replay [-format f] file Apply a replay script and print the result")
	fmt.Fprintln(w, "  validate file           Check a replay script against the schema")
	fmt.Fprintln(w, "  schema                  Print the replay script JSON Schema")
	fmt.Fprintln(w, "  config [-example]       Show effective configuration")
	fmt.Fprintln(w, "  version                 Show version information")
	fmt.Fprintln(w, "  help                    Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tasks live in memory and are discarded on exit.")
}
