package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jbdamask/deskmate/pkg/actions"
	"github.com/jbdamask/deskmate/pkg/command"
	"github.com/jbdamask/deskmate/pkg/config"
	"github.com/jbdamask/deskmate/pkg/logger"
	"github.com/jbdamask/deskmate/pkg/processor"
	"github.com/jbdamask/deskmate/pkg/ui"
)

const version = "v0.1.0"

func main() {
	// Check for subcommands
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "exec":
			handleExec(os.Args[2:])
			return
		case "commands":
			handleCommands()
			return
		case "help", "--help", "-h":
			printHelp()
			return
		case "version", "--version", "-v":
			fmt.Println("Deskmate " + version)
			return
		}
	}

	// Default: run the interactive assistant
	cfg, registry, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var log *logger.Logger
	if cfg.LogEnabled {
		log, err = logger.New(cfg.Home)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: session log disabled: %v\n", err)
		}
	}

	proc := processor.New(registry, actions.NewOSHandler())
	if err := ui.Run(proc, registry, log, version); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads config and builds the registry: user commands first so their
// triggers win resolution priority, then the built-in defaults.
func setup() (*config.Config, *command.Registry, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	registry := command.NewRegistry()

	userCmds, err := config.LoadCommands(cfg.CommandsFile, cfg.Home)
	if err != nil {
		return nil, nil, err
	}
	if err := registry.RegisterAll(userCmds); err != nil {
		return nil, nil, fmt.Errorf("registering user commands: %w", err)
	}

	if !cfg.SkipDefaults {
		if err := registry.RegisterAll(command.Defaults(cfg.Home)); err != nil {
			return nil, nil, fmt.Errorf("registering default commands: %w", err)
		}
	}

	return cfg, registry, nil
}

// handleExec runs one command non-interactively and prints the result.
// This is the entry point scripting or voice front-ends use.
func handleExec(args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: deskmate exec <command text...>")
		os.Exit(1)
	}

	_, registry, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	proc := processor.New(registry, actions.NewOSHandler())
	fmt.Println(proc.Process(context.Background(), strings.Join(args, " ")))
}

func handleCommands() {
	_, registry, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Registered commands:")
	fmt.Println()
	for _, cmd := range registry.Commands() {
		fmt.Printf("  %s\n", cmd.Name)
		fmt.Printf("    Triggers: %s\n", strings.Join(cmd.Triggers, " / "))
		fmt.Printf("    %s\n", cmd.Description)
		fmt.Println()
	}
}

func printHelp() {
	fmt.Println(`Deskmate - Personal Command Assistant

Usage:
  deskmate                    Start the interactive assistant
  deskmate exec <text...>     Run one command and print the result
  deskmate commands           List registered commands
  deskmate help               Show this help message
  deskmate version            Show version

Configuration:
  DESKMATE_COMMANDS           Path to a TOML file of user commands
                              (default ~/.deskmate/commands.toml)
  DESKMATE_NO_DEFAULTS        Set to skip the built-in command set
  DESKMATE_LOG                Set to enable the JSONL session log

Examples:
  deskmate exec "open downloads"
  deskmate exec "크롬 켜줘"
  deskmate exec "https://example.com"`)
}
