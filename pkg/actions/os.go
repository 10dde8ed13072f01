package actions

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
)

// OSHandler performs side effects with the host OS's own openers:
// cmd /c start on Windows, open on macOS, xdg-open on Linux.
// Every launch is fire-and-forget - we wait for the spawn, not the program.
type OSHandler struct {
	goos   string
	client *http.Client
}

func NewOSHandler() *OSHandler {
	return &OSHandler{
		goos:   runtime.GOOS,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (h *OSHandler) LaunchProgram(name string) error {
	var cmd *exec.Cmd
	switch h.goos {
	case "windows":
		// `start` resolves app aliases, ms-settings: URIs, etc.
		cmd = exec.Command("cmd", "/c", "start", "", name)
	case "darwin":
		cmd = exec.Command("open", "-a", name)
	case "linux":
		cmd = exec.Command(name)
	default:
		return Unsupported("program launch is not supported on %s", h.goos)
	}
	if err := cmd.Start(); err != nil {
		return LaunchFailed("could not start %q: %v", name, err)
	}
	return nil
}

func (h *OSHandler) OpenPath(path string) error {
	if _, err := os.Stat(path); err != nil {
		return NotFound("path not found: %s", path)
	}
	return h.openWithDefault(path)
}

func (h *OSHandler) OpenURL(url string) error {
	switch h.goos {
	case "windows":
		if err := exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start(); err != nil {
			return LaunchFailed("could not open browser for %s: %v", url, err)
		}
		return nil
	default:
		return h.openWithDefault(url)
	}
}

// openWithDefault hands a path or URL to the OS default handler.
func (h *OSHandler) openWithDefault(target string) error {
	var cmd *exec.Cmd
	switch h.goos {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", target)
	case "darwin":
		cmd = exec.Command("open", target)
	case "linux":
		cmd = exec.Command("xdg-open", target)
	default:
		return Unsupported("open is not supported on %s", h.goos)
	}
	if err := cmd.Start(); err != nil {
		return LaunchFailed("could not open %q: %v", target, err)
	}
	return nil
}

func (h *OSHandler) FetchPage(ctx context.Context, urlStr string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", urlStr, nil)
	if err != nil {
		return "", LaunchFailed("bad fetch request for %s: %v", urlStr, err)
	}
	req.Header.Set("User-Agent", "Deskmate/1.0")

	resp, err := h.client.Do(req)
	if err != nil {
		return "", LaunchFailed("fetch failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", NotFound("page not found: %s", urlStr)
	}
	if resp.StatusCode != http.StatusOK {
		return "", LaunchFailed("fetch error: %d from %s", resp.StatusCode, urlStr)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1024*1024)) // 1MB limit
	if err != nil {
		return "", LaunchFailed("fetch read failed: %v", err)
	}

	converter := md.NewConverter("", true, nil)
	text, err := converter.ConvertString(string(body))
	if err != nil {
		return "", LaunchFailed("html parsing failed: %v", err)
	}

	if len(text) > 20000 {
		text = text[:20000] + "\n...[Truncated]..."
	}

	return fmt.Sprintf("Content of %s:\n\n%s", urlStr, text), nil
}
