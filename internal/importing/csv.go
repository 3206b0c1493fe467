package importing

import (
	"strings"

	"github.com/jonathan/signature-studio/internal/types"
)

// ParseCSV parses comma-delimited text into contact records with full
// quote-aware splitting: delimiters and line breaks inside quoted fields do
// not split, and a doubled quote inside a quoted field is a literal quote.
// Rows whose name is blank after mapping are skipped rather than failing.
func ParseCSV(text string) (*types.ParseResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ImportError{Kind: ErrEmptyInput, Message: "The uploaded file is empty."}
	}

	lines := splitLines(text)
	if len(lines) == 0 {
		return nil, &ImportError{Kind: ErrEmptyInput, Message: "The uploaded file contains no data."}
	}

	headers := parseLine(lines[0])
	if len(headers) == 0 {
		return nil, &ImportError{Kind: ErrNoHeaders, Message: "Could not parse headers from the file."}
	}

	if !hasNameHeader(headers) {
		return nil, &ImportError{Kind: ErrMissingNameColumn, Message: "CSV must include a 'Name' column."}
	}

	records := []types.ContactRecord{}
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}

		record := mapRow(headers, parseLine(line))
		if !record.HasName() {
			continue
		}
		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, &ImportError{Kind: ErrNoValidRows, Message: "The uploaded file contains headers but no valid employee data."}
	}

	return &types.ParseResult{Records: records, Headers: headers}, nil
}

// splitLines splits raw CSV text into logical lines, honoring quoted fields.
// A single pass over the text with one bit of state: inside quotes or not.
func splitLines(text string) []string {
	lines := []string{}
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(text); i++ {
		c := text[i]

		switch {
		case c == '"':
			if inQuotes && i+1 < len(text) && text[i+1] == '"' {
				// Escaped quote: keep both characters for parseLine to collapse.
				current.WriteString(`""`)
				i++
			} else {
				inQuotes = !inQuotes
				current.WriteByte(c)
			}
		case !inQuotes && (c == '\n' || (c == '\r' && i+1 < len(text) && text[i+1] == '\n')):
			if strings.TrimSpace(current.String()) != "" {
				lines = append(lines, current.String())
			}
			current.Reset()
			if c == '\r' {
				i++ // consume the \n of \r\n
			}
		case c != '\r':
			current.WriteByte(c)
		}
	}

	if strings.TrimSpace(current.String()) != "" {
		lines = append(lines, current.String())
	}

	return lines
}

// parseLine splits one logical line into trimmed fields with the same quoting
// rule. Enclosing quotes are consumed, not kept.
func parseLine(line string) []string {
	fields := []string{}
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]

		switch {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				current.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}

	fields = append(fields, strings.TrimSpace(current.String()))
	return fields
}
