// Package cmd implements the CLI command structure for todolit.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Chriiiiiss/to-do-lit/internal/config"
	"github.com/Chriiiiiss/to-do-lit/internal/list"
	"github.com/Chriiiiiss/to-do-lit/internal/logging"
	"github.com/Chriiiiiss/to-do-lit/internal/store"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Run executes the todolit CLI.
func Run(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("todolit", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	cfg, err := config.Load(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	// Determine the subcommand; default to the interactive checklist.
	subcommand := "tui"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	switch subcommand {
	case "tui":
		return tuiCommand(ctx, cfg, remainingArgs)
	case "ls":
		return lsCommand(cfg, remainingArgs)
	case "add":
		return addCommand(cfg, remainingArgs)
	case "toggle":
		return toggleCommand(cfg, remainingArgs)
	case "rm":
		return rmCommand(cfg, remainingArgs)
	case "version", "--version", "-v":
		return versionCommand()
	case "help", "--help", "-h":
		printUsage(fs, os.Stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// newService builds the task service over the configured file store.
// The returned cleanup stops the debouncer and closes the session log.
func newService(cfg *config.Config) (*list.Service, func(), error) {
	st, err := store.NewFile(cfg.DataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening task store: %w", err)
	}

	// Logging is best effort; a mutation must never fail because the
	// log dir is unusable.
	logger, err := logging.NewSession(cfg.LogDir)
	if err != nil {
		logger = nil
	}

	svc := list.New(list.Options{
		Store:  st,
		Key:    cfg.StorageKey,
		Window: cfg.DebounceWindow(),
		Logger: logger,
	})
	cleanup := func() {
		svc.Stop()
		logger.Close()
	}
	return svc, cleanup, nil
}

func versionCommand() error {
	fmt.Printf("todolit %s\n", Version)
	return nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, `todolit - a local to-do checklist

Usage:
  todolit [flags] [command]

Commands:
  tui             Open the interactive checklist (default)
  ls              Print tasks in display order
  add <title...>  Add a task
  toggle <id>     Toggle a task by id or unique id prefix
  rm <id>         Delete a task by id or unique id prefix
  version         Show version
  help            Show this help

Flags:
`)
	fs.SetOutput(w)
	fs.PrintDefaults()
}
