// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/signature-studio/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintImportSummary outputs a human-readable summary of a parsed import.
func (p *Printer) PrintImportSummary(result *types.ParseResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Records:  %d\n", len(result.Records)))
	if len(result.Headers) > 0 {
		headers := strings.Join(result.Headers, ", ")
		if len(headers) > 45 {
			headers = headers[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Columns:  %s\n", headers))
	}
	sb.WriteString("\n")

	count := min(len(result.Records), maxItemsToShow)
	for i := 0; i < count; i++ {
		record := result.Records[i]
		sb.WriteString(fmt.Sprintf("  • %s", record.Name))
		if record.Title != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", record.Title))
		}
		sb.WriteString("\n")
	}
	if len(result.Records) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Records)-maxItemsToShow))
	}

	p.printBox("IMPORTED RECORDS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBatchSummary outputs the filenames assigned to a rendered batch.
func (p *Printer) PrintBatchSummary(records []types.ContactRecord, filenames map[int]string) {
	if len(records) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Rendered %d signature(s):\n\n", len(records)))

	count := min(len(records), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  %s.html\n", filenames[i]))
	}
	if len(records) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(records)-maxItemsToShow))
	}

	p.printBox("BATCH OUTPUT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDesignSummary outputs the effective design options for a render,
// flagging colors that may be hard to read on dark backgrounds.
func (p *Printer) PrintDesignSummary(opts types.DesignOptions) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Font:       %s\n", opts.FontFamily))
	sb.WriteString(fmt.Sprintf("Separator:  %s\n", opts.SeparatorStyle))
	sb.WriteString(fmt.Sprintf("Logo:       %s / %s\n", opts.LogoPosition, opts.LogoSize))
	sb.WriteString(fmt.Sprintf("Colors:     name %s, title %s, link %s\n", opts.NameColor, opts.TitleColor, opts.LinkColor))

	lowContrast := []string{}
	for _, c := range []struct{ label, hex string }{
		{"name", opts.NameColor},
		{"title", opts.TitleColor},
		{"link", opts.LinkColor},
		{"icon", opts.IconColor},
	} {
		if types.IsValidHexColor(c.hex) && types.IsLowContrastForDarkMode(c.hex) {
			lowContrast = append(lowContrast, c.label)
		}
	}
	if len(lowContrast) > 0 && !opts.AddBackground {
		sb.WriteString(fmt.Sprintf("\n⚠ low dark-mode contrast: %s", strings.Join(lowContrast, ", ")))
	}

	p.printBox("DESIGN OPTIONS", strings.TrimSuffix(sb.String(), "\n"))
}
