package command

import (
	"fmt"
	"strings"
	"sync"
)

// Registry holds the registered commands and resolves free text against
// their trigger phrases.
//
// Resolution priority is registration order: the first registered command
// with a matching trigger wins. There is no scoring and no longest-match
// preference - callers relying on priority should register in priority order.
type Registry struct {
	mu       sync.RWMutex
	commands []Command
	names    map[string]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		names: make(map[string]struct{}),
	}
}

// Register appends a command to the registry. Command names must be unique
// and every command needs at least one trigger phrase.
func (r *Registry) Register(cmd Command) error {
	if cmd.Name == "" {
		return fmt.Errorf("command name is required")
	}
	if len(cmd.Triggers) == 0 {
		return fmt.Errorf("command %q has no trigger phrases", cmd.Name)
	}
	if cmd.Action == nil {
		return fmt.Errorf("command %q has no action", cmd.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.names[cmd.Name]; exists {
		return fmt.Errorf("command %q is already registered", cmd.Name)
	}
	r.names[cmd.Name] = struct{}{}
	r.commands = append(r.commands, cmd)
	return nil
}

// RegisterAll registers commands in order, stopping at the first error.
func (r *Registry) RegisterAll(cmds []Command) error {
	for _, cmd := range cmds {
		if err := r.Register(cmd); err != nil {
			return err
		}
	}
	return nil
}

// Resolve returns the first registered command whose trigger phrase is a
// substring of the normalized input. The second return value reports
// whether a command matched.
func (r *Registry) Resolve(text string) (Command, bool) {
	normalized := normalize(text)
	if normalized == "" {
		return Command{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, cmd := range r.commands {
		for _, trigger := range cmd.Triggers {
			if strings.Contains(normalized, strings.ToLower(trigger)) {
				return cmd, true
			}
		}
	}
	return Command{}, false
}

// Commands returns a snapshot of the registered commands in registration order.
func (r *Registry) Commands() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.commands)
}

// normalize trims surrounding whitespace and lowercases for matching.
func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
