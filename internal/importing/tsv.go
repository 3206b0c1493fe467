package importing

import (
	"strings"

	"github.com/jonathan/signature-studio/internal/types"
)

// ParseTSV parses clipboard-pasted spreadsheet data. The delimiter is
// auto-detected from the first line (tab if present, else comma) and fields
// are split naively with surrounding quote characters stripped — a deliberately
// cheaper path than ParseCSV's full quote handling, since pasted cells never
// contain embedded line breaks.
func ParseTSV(text string) (*types.ParseResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ImportError{Kind: ErrEmptyInput, Message: "No data to parse."}
	}

	lines := []string{}
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, &ImportError{Kind: ErrEmptyInput, Message: "No data to parse."}
	}

	delimiter := ","
	if strings.Contains(lines[0], "\t") {
		delimiter = "\t"
	}

	headers := splitSimple(lines[0], delimiter)
	if len(headers) == 0 {
		return nil, &ImportError{Kind: ErrNoHeaders, Message: "Could not parse headers from the data."}
	}

	if !hasNameHeader(headers) {
		return nil, &ImportError{Kind: ErrMissingNameColumn, Message: "Data must include a 'Name' column."}
	}

	records := []types.ContactRecord{}
	for _, line := range lines[1:] {
		record := mapRow(headers, splitSimple(line, delimiter))
		if !record.HasName() {
			continue
		}
		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, &ImportError{Kind: ErrNoValidRows, Message: "The pasted data contains headers but no valid employee data."}
	}

	return &types.ParseResult{Records: records, Headers: headers}, nil
}

// splitSimple splits on the delimiter and strips one surrounding quote
// character per side of each trimmed field.
func splitSimple(line, delimiter string) []string {
	raw := strings.Split(line, delimiter)
	fields := make([]string, len(raw))
	for i, value := range raw {
		fields[i] = stripSurroundingQuotes(strings.TrimSpace(value))
	}
	return fields
}

// stripSurroundingQuotes removes a single leading and/or trailing quote
// character (double or single), matching or not.
func stripSurroundingQuotes(value string) string {
	if len(value) > 0 && (value[0] == '"' || value[0] == '\'') {
		value = value[1:]
	}
	if len(value) > 0 && (value[len(value)-1] == '"' || value[len(value)-1] == '\'') {
		value = value[:len(value)-1]
	}
	return value
}
