package utils

import (
	"net/url"
	"strings"
)

// SafeRedirectPath reduces target to a same-origin path. Absolute URLs keep
// only their path and query; error pages and API routes fall back to "/".
func SafeRedirectPath(target string) string {
	target = strings.TrimSpace(target)
	if target == "" || strings.Contains(target, `\`) {
		return "/"
	}

	parsed, err := url.Parse(target)
	if err != nil {
		return "/"
	}

	path := parsed.EscapedPath()
	if path == "" || !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") {
		return "/"
	}

	if strings.HasPrefix(path, "/error") || strings.HasPrefix(path, "/api/") {
		return "/"
	}

	if parsed.RawQuery != "" {
		path += "?" + parsed.RawQuery
	}

	return path
}
