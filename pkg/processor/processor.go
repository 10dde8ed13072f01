// Package processor turns raw user text into a status string. It resolves
// the text against the command registry, runs the matched action, and falls
// back to website inference or a help listing when nothing matches.
package processor

import (
	"context"
	"fmt"
	"strings"

	"github.com/jbdamask/deskmate/pkg/actions"
	"github.com/jbdamask/deskmate/pkg/command"
)

const emptyInputMessage = "Please enter a command."

// siteMarkers are the phrases that read as "open the <x> website".
// Korean forms are kept alongside the English ones. The standalone forms
// need a leading space so "abc사이트" or "website" glued onto another word
// doesn't fire the heuristic.
var siteMarkers = []string{" 사이트", "웹사이트", " site", "website"}

// tldHints are domain suffixes that make bare text look like a URL.
var tldHints = []string{".com", ".net", ".org", ".co.kr"}

// Processor dispatches one input string at a time. It holds no state
// between calls; every Process invocation is independent.
type Processor struct {
	registry *command.Registry
	handler  actions.Handler
}

func New(registry *command.Registry, handler actions.Handler) *Processor {
	return &Processor{
		registry: registry,
		handler:  handler,
	}
}

// Process resolves and executes one command, returning the message to show
// the user. Handler failures are captured and reported as text; Process
// never lets them escape.
func (p *Processor) Process(ctx context.Context, input string) string {
	cleaned := strings.TrimSpace(input)
	if cleaned == "" {
		return emptyInputMessage
	}

	if cmd, ok := p.registry.Resolve(cleaned); ok {
		msg, err := cmd.Action.Invoke(ctx, p.handler)
		if err != nil {
			return fmt.Sprintf("❌ Error while running '%s': %v", cmd.Description, err)
		}
		return msg
	}

	if msg, ok := p.maybeOpenWebsite(ctx, cleaned); ok {
		return msg
	}

	return p.helpMessage(cleaned)
}

// maybeOpenWebsite guesses a URL from unmatched input. Three forms are
// recognized, checked in order: an explicit http(s) URL, a "<host> site"
// phrasing, and bare text containing a known domain suffix. The guess is
// deliberately loose - any token after the marker is accepted as a host.
func (p *Processor) maybeOpenWebsite(ctx context.Context, text string) (string, bool) {
	lowered := strings.ToLower(text)

	if strings.HasPrefix(lowered, "http://") || strings.HasPrefix(lowered, "https://") {
		if err := p.handler.OpenURL(text); err != nil {
			return fmt.Sprintf("❌ Could not open %s: %v", text, err), true
		}
		return fmt.Sprintf("🌐 Opened website: %s", text), true
	}

	if containsSiteMarker(lowered) {
		// Strip the marker and the "web" qualifier from the original-cased
		// text so "Naver 사이트" opens https://Naver, not https://naver.
		stripped := removeAllFold(text, "사이트")
		stripped = removeAllFold(stripped, "site")
		stripped = strings.ReplaceAll(stripped, "웹", "")
		stripped = removeAllFold(stripped, "web")
		parts := strings.Fields(stripped)
		if len(parts) > 0 {
			url := "https://" + parts[0]
			if err := p.handler.OpenURL(url); err != nil {
				return fmt.Sprintf("❌ Could not open %s: %v", url, err), true
			}
			return fmt.Sprintf("🌐 Opened the inferred address (%s).", url), true
		}
	}

	for _, tld := range tldHints {
		if strings.Contains(lowered, tld) {
			url := text
			if !strings.HasPrefix(lowered, "http") {
				url = "https://" + text
			}
			if err := p.handler.OpenURL(url); err != nil {
				return fmt.Sprintf("❌ Could not open %s: %v", url, err), true
			}
			return fmt.Sprintf("🌐 Opened website: %s", url), true
		}
	}

	return "", false
}

func containsSiteMarker(lowered string) bool {
	for _, marker := range siteMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}

// removeAllFold deletes every case-insensitive occurrence of the lowercase
// needle from s, keeping the case of everything else.
func removeAllFold(s, needle string) string {
	var sb strings.Builder
	for {
		i := strings.Index(strings.ToLower(s), needle)
		if i < 0 {
			sb.WriteString(s)
			return sb.String()
		}
		sb.WriteString(s[:i])
		s = s[i+len(needle):]
	}
}

// helpMessage lists every registered command's triggers and description.
// The listing reflects the live registry, not a baked-in copy.
func (p *Processor) helpMessage(input string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Unknown command: '%s'.\n\n", input))
	sb.WriteString("Example commands:\n")
	for _, cmd := range p.registry.Commands() {
		sb.WriteString(fmt.Sprintf("• %s → %s\n", strings.Join(cmd.Triggers, " / "), cmd.Description))
	}
	sb.WriteString("\nEnter a web address (e.g. https://example.com) to open it in your browser.")
	return sb.String()
}
