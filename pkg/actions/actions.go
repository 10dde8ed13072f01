package actions

import (
	"context"
	"errors"
	"fmt"
)

// Handler is the OS-side capability surface the assistant drives.
// Implementations perform one side effect per call and report failure
// through *Error so callers can tell the kinds apart.
type Handler interface {
	// LaunchProgram starts an external program by name or alias.
	LaunchProgram(name string) error

	// OpenPath opens a filesystem location with the OS default handler.
	OpenPath(path string) error

	// OpenURL opens a URL in the default browser.
	OpenURL(url string) error

	// FetchPage retrieves a web page and returns it as markdown text.
	FetchPage(ctx context.Context, url string) (string, error)
}

// Kind classifies a capability failure.
type Kind string

const (
	// KindUnsupported means the capability was invoked on an OS that
	// doesn't support it.
	KindUnsupported Kind = "unsupported"

	// KindNotFound means the target path or resource doesn't exist.
	KindNotFound Kind = "not_found"

	// KindLaunchFailed means the underlying OS call rejected the request.
	KindLaunchFailed Kind = "launch_failed"
)

// Error is the typed failure raised by Handler implementations.
type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	return e.Detail
}

func Unsupported(format string, args ...interface{}) *Error {
	return &Error{Kind: KindUnsupported, Detail: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Detail: fmt.Sprintf(format, args...)}
}

func LaunchFailed(format string, args ...interface{}) *Error {
	return &Error{Kind: KindLaunchFailed, Detail: fmt.Sprintf(format, args...)}
}

// KindOf returns the failure kind of err, or "" if err is not an *Error.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}
