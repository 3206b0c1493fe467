package importing

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jonathan/signature-studio/internal/types"
)

// fallbackFilename names exports whose slug comes out empty.
const fallbackFilename = "signature"

// stripDiacritics decomposes accented characters and removes the combining marks.
var stripDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify turns a display name into a filesystem-safe slug: lowercased,
// diacritics stripped, characters outside [a-z0-9 space -] removed, whitespace
// runs collapsed to single hyphens, repeated hyphens collapsed, and leading or
// trailing hyphens trimmed. An empty result falls back to "signature".
func Slugify(name string) string {
	lowered := strings.ToLower(name)

	stripped, _, err := transform.String(stripDiacritics, lowered)
	if err != nil {
		stripped = lowered
	}

	var kept strings.Builder
	for _, r := range stripped {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			kept.WriteRune(r)
		case unicode.IsSpace(r):
			kept.WriteRune(' ')
		}
	}

	slug := strings.Join(strings.Fields(kept.String()), "-")
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	slug = strings.Trim(slug, "-")

	if slug == "" {
		return fallbackFilename
	}
	return slug
}

// GenerateFilename returns the export filename (without extension) for a name.
// duplicateIndex > 0 appends a numeric suffix: the second occurrence of a name
// gets "-2", the third "-3", and so on.
func GenerateFilename(name string, duplicateIndex int) string {
	filename := Slugify(name)
	if duplicateIndex > 0 {
		filename = fmt.Sprintf("%s-%d", filename, duplicateIndex+1)
	}
	return filename
}

// GenerateFilenames assigns a unique filename to every record in first-seen
// order, suffixing duplicates with -2, -3, …
func GenerateFilenames(records []types.ContactRecord) map[int]string {
	filenames := make(map[int]string, len(records))
	used := map[string]int{}

	for i, record := range records {
		base := Slugify(record.Name)
		count := used[base]
		used[base] = count + 1

		if count == 0 {
			filenames[i] = base
		} else {
			filenames[i] = fmt.Sprintf("%s-%d", base, count+1)
		}
	}

	return filenames
}
