package pageload

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// markdownLinkPattern extracts the URL from a markdown link: [text](url).
var markdownLinkPattern = regexp.MustCompile(`^\[.*?\]\((https?://[^\)]+)\)$`)

// SanitizeURL cleans up common copy-paste damage on a URL: surrounding
// whitespace, markdown link syntax, and stray punctuation picked up from
// prose. Non-URL targets pass through mostly untouched.
func SanitizeURL(rawURL string) string {
	cleaned := strings.TrimSpace(rawURL)

	if matches := markdownLinkPattern.FindStringSubmatch(cleaned); len(matches) > 1 {
		cleaned = matches[1]
	}

	for _, suffix := range []string{",", ".", ")", "}", "]", "\"", "'", ">", ";"} {
		cleaned = strings.TrimSuffix(cleaned, suffix)
	}
	for _, prefix := range []string{"(", "[", "<", "\"", "'"} {
		cleaned = strings.TrimPrefix(cleaned, prefix)
	}

	return strings.TrimSpace(cleaned)
}

// validateURL rejects URLs that survive sanitizing but still cannot be
// fetched: missing host, literal spaces, or junk characters in the host.
func validateURL(cleaned string) error {
	if strings.Contains(cleaned, " ") {
		return fmt.Errorf("URL contains unencoded spaces: %q", cleaned)
	}
	parsed, err := url.Parse(cleaned)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", cleaned, err)
	}
	if parsed.Host == "" {
		return fmt.Errorf("URL %q has no host", cleaned)
	}
	if strings.ContainsAny(parsed.Host, "{}[]<>\"'") {
		return fmt.Errorf("URL %q has a malformed host", cleaned)
	}
	return nil
}
