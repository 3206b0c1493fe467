package export

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jonathan/signature-studio/internal/importing"
	"github.com/jonathan/signature-studio/internal/types"
)

// BuildArchive renders every record and packs the results into a ZIP, one
// "<slug>.html" entry per record in input order. Duplicate names receive the
// -2, -3, … suffix in first-seen order.
func BuildArchive(ctx context.Context, records []types.ContactRecord, opts types.DesignOptions) ([]byte, error) {
	rendered, err := RenderBatch(ctx, records, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to render batch: %w", err)
	}

	filenames := importing.GenerateFilenames(records)

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	for i, html := range rendered {
		entry, err := w.Create(filenames[i] + ".html")
		if err != nil {
			return nil, fmt.Errorf("failed to create archive entry: %w", err)
		}
		if _, err := entry.Write([]byte(html)); err != nil {
			return nil, fmt.Errorf("failed to write archive entry: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}

	return buf.Bytes(), nil
}

// ArchiveName returns the dated download name for a batch archive.
func ArchiveName(now time.Time) string {
	return fmt.Sprintf("signatures-%s.zip", now.UTC().Format("2006-01-02"))
}
