// Package export assembles bulk-import results into downloadable artifacts:
// rendered batches, ZIP archives, preview pages, and the CSV starter template.
package export

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/signature-studio/internal/rendering"
	"github.com/jonathan/signature-studio/internal/types"
)

// RenderBatch renders every record with the same design options. Records are
// independent, so rendering fans out across CPUs; the result preserves input
// order. Records without a name are rendered as-is — callers filter those
// before building a batch.
func RenderBatch(ctx context.Context, records []types.ContactRecord, opts types.DesignOptions) ([]string, error) {
	results := make([]string, len(records))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, record := range records {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = rendering.Render(record, opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
