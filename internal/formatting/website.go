package formatting

import "strings"

// stripProtocol removes a leading http:// or https:// prefix.
func stripProtocol(url string) string {
	if rest, ok := strings.CutPrefix(url, "https://"); ok {
		return rest
	}
	if rest, ok := strings.CutPrefix(url, "http://"); ok {
		return rest
	}
	return url
}

// FormatWebsiteDisplay shapes a URL for human display: the protocol is
// stripped, a bare two-label domain (acme.com) gains a www. prefix, and a
// single trailing slash is removed. Subdomains and path-bearing URLs are left
// otherwise untouched. The two-label-only www heuristic is intentional; do not
// "fix" it to cover hosts it cannot classify.
func FormatWebsiteDisplay(raw string) string {
	formatted := strings.TrimSpace(raw)
	if formatted == "" {
		return ""
	}

	formatted = stripProtocol(formatted)

	if !strings.HasPrefix(formatted, "www.") {
		host, _, _ := strings.Cut(formatted, "/")
		if strings.Count(host, ".") == 1 {
			formatted = "www." + formatted
		}
	}

	formatted = strings.TrimSuffix(formatted, "/")

	return formatted
}

// FormatWebsiteHref shapes a URL for machine use: any existing protocol is
// stripped and https:// is prefixed unconditionally, so the result is always
// an absolute link. Idempotent under re-application.
func FormatWebsiteHref(raw string) string {
	formatted := strings.TrimSpace(raw)
	if formatted == "" {
		return ""
	}

	return "https://" + stripProtocol(formatted)
}

// FormatSocialURL ensures a social profile URL carries a protocol. Unlike
// FormatWebsiteHref, an existing http:// prefix is kept as-is.
func FormatSocialURL(raw string) string {
	formatted := strings.TrimSpace(raw)
	if formatted == "" {
		return ""
	}

	if strings.HasPrefix(formatted, "https://") || strings.HasPrefix(formatted, "http://") {
		return formatted
	}

	return "https://" + formatted
}
