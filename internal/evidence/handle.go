package evidence

import (
	"regexp"
	"strings"
)

var (
	githubHandleRE   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/([A-Za-z0-9_-]+)`)
	kaggleHandleRE   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?kaggle\.com/([A-Za-z0-9_-]+)`)
	linkedinHandleRE = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/([A-Za-z0-9_.-]+)`)
)

// normalizeHandle case-normalizes a free-text username or profile URL down to
// a bare handle using the given URL pattern.
func normalizeHandle(raw string, urlPattern *regexp.Regexp) string {
	handle := strings.TrimSpace(raw)
	if m := urlPattern.FindStringSubmatch(handle); m != nil {
		handle = m[1]
	}
	handle = strings.TrimPrefix(handle, "@")
	handle = strings.Trim(handle, "/")
	return strings.ToLower(handle)
}

// NormalizeGitHubHandle extracts a bare GitHub username from free text.
func NormalizeGitHubHandle(raw string) string {
	return normalizeHandle(raw, githubHandleRE)
}

// NormalizeKaggleHandle extracts a bare Kaggle username from free text.
func NormalizeKaggleHandle(raw string) string {
	return normalizeHandle(raw, kaggleHandleRE)
}

// NormalizeLinkedInHandle extracts the profile slug from a LinkedIn URL.
// Returns "" when the input does not look like a profile URL or handle.
func NormalizeLinkedInHandle(raw string) string {
	return normalizeHandle(raw, linkedinHandleRE)
}
