package processor

import (
	"context"
	"strings"
	"testing"

	"github.com/jbdamask/deskmate/pkg/actions"
	"github.com/jbdamask/deskmate/pkg/command"
)

// fakeHandler records capability calls and optionally fails them.
type fakeHandler struct {
	launched []string
	paths    []string
	urls     []string
	err      error
}

func (f *fakeHandler) LaunchProgram(name string) error {
	f.launched = append(f.launched, name)
	return f.err
}

func (f *fakeHandler) OpenPath(path string) error {
	f.paths = append(f.paths, path)
	return f.err
}

func (f *fakeHandler) OpenURL(url string) error {
	f.urls = append(f.urls, url)
	return f.err
}

func (f *fakeHandler) FetchPage(ctx context.Context, url string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "fetched " + url, nil
}

func newTestProcessor(t *testing.T) (*Processor, *command.Registry, *fakeHandler) {
	t.Helper()
	registry := command.NewRegistry()
	cmds := []command.Command{
		{
			Name:        "open_chrome",
			Description: "Launches the Google Chrome browser.",
			Triggers:    []string{"크롬 켜줘", "chrome"},
			Action:      command.LaunchProgram{Target: "chrome", Message: "Launched Chrome."},
		},
		{
			Name:        "open_downloads",
			Description: "Opens the Downloads folder.",
			Triggers:    []string{"다운로드 열어줘", "downloads"},
			Action:      command.OpenFolder{Path: "/home/test/Downloads", Message: "Opened the Downloads folder."},
		},
		{
			Name:        "open_naver",
			Description: "Opens the Naver homepage.",
			Triggers:    []string{"네이버 열어줘"},
			Action:      command.OpenURL{URL: "https://www.naver.com", Message: "Opened Naver."},
		},
	}
	if err := registry.RegisterAll(cmds); err != nil {
		t.Fatalf("Failed to register commands: %v", err)
	}

	handler := &fakeHandler{}
	return New(registry, handler), registry, handler
}

func TestProcessEmptyInput(t *testing.T) {
	proc, _, handler := newTestProcessor(t)

	for _, input := range []string{"", "   ", "\t\n"} {
		result := proc.Process(context.Background(), input)
		if result != emptyInputMessage {
			t.Errorf("Expected prompt message for %q, got %q", input, result)
		}
	}
	if len(handler.launched)+len(handler.paths)+len(handler.urls) != 0 {
		t.Error("Empty input must not invoke any handler")
	}
}

func TestProcessMatchedCommand(t *testing.T) {
	proc, _, handler := newTestProcessor(t)

	result := proc.Process(context.Background(), "크롬 켜줘")
	if result != "Launched Chrome." {
		t.Errorf("Expected success message, got %q", result)
	}
	if len(handler.launched) != 1 || handler.launched[0] != "chrome" {
		t.Errorf("Expected one launch of chrome, got %v", handler.launched)
	}
}

func TestProcessHandlerFailureBecomesMessage(t *testing.T) {
	proc, _, handler := newTestProcessor(t)
	handler.err = actions.NotFound("path not found: /home/test/Downloads")

	result := proc.Process(context.Background(), "downloads")
	if !strings.Contains(result, "Opens the Downloads folder.") {
		t.Errorf("Error message should name the command description. Got: %q", result)
	}
	if !strings.Contains(result, "path not found: /home/test/Downloads") {
		t.Errorf("Error message should include the failure detail. Got: %q", result)
	}
}

func TestProcessDirectURL(t *testing.T) {
	proc, _, handler := newTestProcessor(t)

	result := proc.Process(context.Background(), "https://example.com")
	if !strings.Contains(result, "https://example.com") {
		t.Errorf("Confirmation should contain the URL. Got: %q", result)
	}
	if len(handler.urls) != 1 || handler.urls[0] != "https://example.com" {
		t.Errorf("Expected exactly one OpenURL with the literal URL, got %v", handler.urls)
	}
}

func TestProcessDirectURLCaseInsensitiveScheme(t *testing.T) {
	proc, _, handler := newTestProcessor(t)

	proc.Process(context.Background(), "HTTP://Example.com/Path")
	if len(handler.urls) != 1 || handler.urls[0] != "HTTP://Example.com/Path" {
		t.Errorf("Scheme check is case-insensitive but the URL is passed verbatim, got %v", handler.urls)
	}
}

func TestProcessSiteMarkerInference(t *testing.T) {
	cases := []struct {
		input string
		url   string
	}{
		{"naver 사이트", "https://naver"},
		{"github site", "https://github"},
		{"naver 웹사이트 열어줘", "https://naver"},
		{"daum website", "https://daum"},
		// The inferred host keeps the input's casing
		{"Naver 사이트", "https://Naver"},
		{"GitHub SITE", "https://GitHub"},
	}

	for _, tc := range cases {
		proc, _, handler := newTestProcessor(t)
		result := proc.Process(context.Background(), tc.input)
		if len(handler.urls) != 1 || handler.urls[0] != tc.url {
			t.Errorf("%q: expected OpenURL(%q), got %v", tc.input, tc.url, handler.urls)
		}
		if !strings.Contains(result, tc.url) {
			t.Errorf("%q: confirmation should mention %q. Got: %q", tc.input, tc.url, result)
		}
	}
}

func TestProcessMarkerNeedsWordBoundary(t *testing.T) {
	// A marker glued onto another word is not a marker: "abc사이트" and
	// "mysite" get the help listing, not an inferred URL.
	for _, input := range []string{"abc사이트", "mysite"} {
		proc, _, handler := newTestProcessor(t)
		result := proc.Process(context.Background(), input)
		if len(handler.urls) != 0 {
			t.Errorf("%q: expected no OpenURL call, got %v", input, handler.urls)
		}
		if !strings.Contains(result, "Example commands:") {
			t.Errorf("%q: expected the help listing, got %q", input, result)
		}
	}
}

func TestProcessTLDInference(t *testing.T) {
	cases := []struct {
		input string
		url   string
	}{
		{"example.com", "https://example.com"},
		{"news.daum.net", "https://news.daum.net"},
		{"golang.org/doc", "https://golang.org/doc"},
		{"gov.co.kr", "https://gov.co.kr"},
	}

	for _, tc := range cases {
		proc, _, handler := newTestProcessor(t)
		proc.Process(context.Background(), tc.input)
		if len(handler.urls) != 1 || handler.urls[0] != tc.url {
			t.Errorf("%q: expected OpenURL(%q), got %v", tc.input, tc.url, handler.urls)
		}
	}
}

func TestProcessHelpMessage(t *testing.T) {
	proc, registry, handler := newTestProcessor(t)

	result := proc.Process(context.Background(), "asdkjasd")
	if len(handler.launched)+len(handler.paths)+len(handler.urls) != 0 {
		t.Error("Unmatched input must not invoke any handler")
	}
	if !strings.Contains(result, "asdkjasd") {
		t.Errorf("Help should echo the input. Got: %q", result)
	}
	// Every registered command is listed with triggers and description
	for _, cmd := range registry.Commands() {
		if !strings.Contains(result, cmd.Description) {
			t.Errorf("Help missing description %q", cmd.Description)
		}
		for _, trigger := range cmd.Triggers {
			if !strings.Contains(result, trigger) {
				t.Errorf("Help missing trigger %q", trigger)
			}
		}
	}
	if !strings.Contains(result, "https://example.com") {
		t.Errorf("Help should hint that literal URLs work. Got: %q", result)
	}
}

func TestProcessHelpReflectsLiveRegistry(t *testing.T) {
	proc, registry, _ := newTestProcessor(t)

	before := proc.Process(context.Background(), "asdkjasd")
	if strings.Contains(before, "Opens the projects folder.") {
		t.Fatal("New command should not appear before registration")
	}

	err := registry.Register(command.Command{
		Name:        "open_projects",
		Description: "Opens the projects folder.",
		Triggers:    []string{"projects"},
		Action:      command.OpenFolder{Path: "/home/test/code", Message: "Opened projects."},
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	after := proc.Process(context.Background(), "asdkjasd")
	if !strings.Contains(after, "Opens the projects folder.") {
		t.Error("Help should list commands registered after processor construction")
	}
}

func TestProcessHelpIsIdempotent(t *testing.T) {
	proc, _, _ := newTestProcessor(t)

	first := proc.Process(context.Background(), "zzzz no match")
	second := proc.Process(context.Background(), "zzzz no match")
	if first != second {
		t.Error("Same unmatched input with unchanged registry should yield identical help text")
	}
}

func TestProcessInferenceFailureBecomesMessage(t *testing.T) {
	proc, _, handler := newTestProcessor(t)
	handler.err = actions.Unsupported("open is not supported on plan9")

	result := proc.Process(context.Background(), "https://example.com")
	if !strings.Contains(result, "open is not supported on plan9") {
		t.Errorf("Inference open failure should surface as text. Got: %q", result)
	}
}

func TestProcessFetchCommand(t *testing.T) {
	registry := command.NewRegistry()
	err := registry.Register(command.Command{
		Name:        "read_news",
		Description: "Fetches the news front page.",
		Triggers:    []string{"read the news"},
		Action:      command.FetchPage{URL: "https://news.example.com"},
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	handler := &fakeHandler{}
	proc := New(registry, handler)

	result := proc.Process(context.Background(), "read the news")
	if result != "fetched https://news.example.com" {
		t.Errorf("Expected fetched content as the result, got %q", result)
	}
}
