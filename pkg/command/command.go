package command

import (
	"context"

	"github.com/jbdamask/deskmate/pkg/actions"
)

// Command binds a set of trigger phrases to one action.
// Commands are immutable once registered.
type Command struct {
	// Name uniquely identifies the command within a registry
	Name string

	// Description is a short human-readable summary shown in help output
	Description string

	// Triggers are literal phrases matched as substrings of normalized input.
	// Declaration order matters: the first trigger that matches wins.
	Triggers []string

	// Action is what the command does when it fires
	Action Action
}

// Action is one executable side effect. Invoke returns the success message
// to show the user, or the handler's error.
type Action interface {
	Invoke(ctx context.Context, h actions.Handler) (string, error)
}

// LaunchProgram starts an external program by name or alias.
type LaunchProgram struct {
	Target  string
	Message string
}

func (a LaunchProgram) Invoke(ctx context.Context, h actions.Handler) (string, error) {
	if err := h.LaunchProgram(a.Target); err != nil {
		return "", err
	}
	return a.Message, nil
}

// OpenFolder opens a filesystem location with the OS default handler.
type OpenFolder struct {
	Path    string
	Message string
}

func (a OpenFolder) Invoke(ctx context.Context, h actions.Handler) (string, error) {
	if err := h.OpenPath(a.Path); err != nil {
		return "", err
	}
	return a.Message, nil
}

// OpenURL opens a URL in the default browser.
type OpenURL struct {
	URL     string
	Message string
}

func (a OpenURL) Invoke(ctx context.Context, h actions.Handler) (string, error) {
	if err := h.OpenURL(a.URL); err != nil {
		return "", err
	}
	return a.Message, nil
}

// FetchPage retrieves a web page and returns its content as markdown.
// Unlike the other actions the fetched text itself is the result, so the
// Message field is optional and prepended when set.
type FetchPage struct {
	URL     string
	Message string
}

func (a FetchPage) Invoke(ctx context.Context, h actions.Handler) (string, error) {
	content, err := h.FetchPage(ctx, a.URL)
	if err != nil {
		return "", err
	}
	if a.Message != "" {
		return a.Message + "\n\n" + content, nil
	}
	return content, nil
}
