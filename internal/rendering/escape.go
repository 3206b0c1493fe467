// Package rendering turns a contact record plus design options into an
// email-client-safe HTML signature fragment.
package rendering

import "strings"

// EscapeHTML escapes text for insertion into HTML. Quotes are escaped too, so
// the same function is safe in both element and attribute position.
func EscapeHTML(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) + len(text)/4)

	for _, r := range text {
		switch r {
		case '&':
			result.WriteString("&amp;")
		case '<':
			result.WriteString("&lt;")
		case '>':
			result.WriteString("&gt;")
		case '"':
			result.WriteString("&#34;")
		case '\'':
			result.WriteString("&#39;")
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}
