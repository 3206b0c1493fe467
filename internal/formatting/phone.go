// Package formatting provides pure string-shaping helpers for signature fields.
// Every function is total: blank input yields blank output, never an error.
package formatting

import (
	"fmt"
	"strings"
)

// FormatPhone normalizes a US phone number to "(AAA) BBB-CCCC".
// An 11-digit number with a leading 1 has the 1 dropped first. Anything that
// does not normalize to exactly 10 digits is returned trimmed but otherwise
// untouched, preserving international formats verbatim.
func FormatPhone(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	var digits strings.Builder
	for _, r := range trimmed {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	normalized := digits.String()
	if len(normalized) == 11 && normalized[0] == '1' {
		normalized = normalized[1:]
	}

	if len(normalized) == 10 {
		return fmt.Sprintf("(%s) %s-%s", normalized[:3], normalized[3:6], normalized[6:])
	}

	return trimmed
}
