package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/jbdamask/deskmate/pkg/command"
)

// Config carries the runtime settings read from the environment.
type Config struct {
	// CommandsFile is the TOML file with user-defined commands.
	// Missing file is fine - the assistant runs on defaults alone.
	CommandsFile string

	// SkipDefaults disables the built-in command set.
	SkipDefaults bool

	// LogEnabled turns on the JSONL session log.
	LogEnabled bool

	// Home is the user home directory the default commands are rooted at.
	Home string
}

func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home dir: %w", err)
	}

	commandsFile := os.Getenv("DESKMATE_COMMANDS")
	if commandsFile == "" {
		commandsFile = filepath.Join(home, ".deskmate", "commands.toml")
	}

	return &Config{
		CommandsFile: commandsFile,
		SkipDefaults: os.Getenv("DESKMATE_NO_DEFAULTS") != "",
		LogEnabled:   os.Getenv("DESKMATE_LOG") != "",
		Home:         home,
	}, nil
}

// commandsFile is the TOML shape of a user command file:
//
//	[[command]]
//	name = "open_projects"
//	description = "Opens the projects folder."
//	triggers = ["projects", "프로젝트 열어줘"]
//	action = "folder"
//	target = "~/code"
//	message = "Opened the projects folder."
type commandsFile struct {
	Commands []commandEntry `toml:"command"`
}

type commandEntry struct {
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	Triggers    []string `toml:"triggers"`
	Action      string   `toml:"action"`
	Target      string   `toml:"target"`
	Message     string   `toml:"message"`
}

// LoadCommands parses a user command file. A missing file returns an empty
// slice, not an error.
func LoadCommands(path string, home string) ([]command.Command, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var file commandsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	cmds := make([]command.Command, 0, len(file.Commands))
	for _, entry := range file.Commands {
		cmd, err := entry.toCommand(home)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

func (e commandEntry) toCommand(home string) (command.Command, error) {
	var action command.Action
	switch e.Action {
	case "launch":
		action = command.LaunchProgram{Target: e.Target, Message: e.Message}
	case "folder":
		action = command.OpenFolder{Path: expandHome(e.Target, home), Message: e.Message}
	case "url":
		action = command.OpenURL{URL: e.Target, Message: e.Message}
	case "fetch":
		action = command.FetchPage{URL: e.Target, Message: e.Message}
	default:
		return command.Command{}, fmt.Errorf("command %q has unknown action %q", e.Name, e.Action)
	}

	return command.Command{
		Name:        e.Name,
		Description: e.Description,
		Triggers:    e.Triggers,
		Action:      action,
	}, nil
}

func expandHome(path string, home string) string {
	if path == "~" {
		return home
	}
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
