package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/signature-studio/internal/types"
)

func TestPrintImportSummary_ShowsRecordsAndColumns(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintImportSummary(&types.ParseResult{
		Records: []types.ContactRecord{
			{Name: "Jane Doe", Title: "Manager"},
			{Name: "Alan Turing"},
		},
		Headers: []string{"Name", "Title"},
	})

	out := buf.String()
	assert.Contains(t, out, "IMPORTED RECORDS")
	assert.Contains(t, out, "Records:  2")
	assert.Contains(t, out, "Name, Title")
	assert.Contains(t, out, "Jane Doe (Manager)")
	assert.Contains(t, out, "Alan Turing")
}

func TestPrintImportSummary_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	records := make([]types.ContactRecord, 8)
	for i := range records {
		records[i] = types.ContactRecord{Name: "Person"}
	}
	p.PrintImportSummary(&types.ParseResult{Records: records})

	out := buf.String()
	assert.Contains(t, out, "... and 3 more")
	assert.Equal(t, 5, strings.Count(out, "• Person"))
}

func TestPrintImportSummary_NilResult(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintImportSummary(nil)
	assert.Empty(t, buf.String())
}

func TestPrintBatchSummary_ListsFilenames(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	records := []types.ContactRecord{{Name: "Jane Doe"}, {Name: "Sam Lee"}}
	p.PrintBatchSummary(records, map[int]string{0: "jane-doe", 1: "sam-lee"})

	out := buf.String()
	assert.Contains(t, out, "BATCH OUTPUT")
	assert.Contains(t, out, "Rendered 2 signature(s)")
	assert.Contains(t, out, "jane-doe.html")
	assert.Contains(t, out, "sam-lee.html")
}

func TestPrintBatchSummary_EmptyBatchPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintBatchSummary(nil, nil)
	assert.Empty(t, buf.String())
}

func TestPrintDesignSummary_ShowsOptions(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintDesignSummary(types.DefaultDesignOptions())

	out := buf.String()
	assert.Contains(t, out, "DESIGN OPTIONS")
	assert.Contains(t, out, "arial")
	assert.Contains(t, out, "pipe")
	assert.Contains(t, out, "left / medium")
}

func TestPrintDesignSummary_WarnsOnLowContrast(t *testing.T) {
	var buf bytes.Buffer
	opts := types.DefaultDesignOptions()
	opts.NameColor = "#000000"
	NewPrinter(&buf).PrintDesignSummary(opts)

	assert.Contains(t, buf.String(), "low dark-mode contrast")
}

func TestPrintDesignSummary_NoWarningWithBackground(t *testing.T) {
	var buf bytes.Buffer
	opts := types.DefaultDesignOptions()
	opts.NameColor = "#000000"
	opts.AddBackground = true
	NewPrinter(&buf).PrintDesignSummary(opts)

	assert.NotContains(t, buf.String(), "low dark-mode contrast")
}
