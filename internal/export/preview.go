package export

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/signature-studio/internal/rendering"
	"github.com/jonathan/signature-studio/internal/types"
)

// previewStyles keeps the preview page readable without external assets.
const previewStyles = `    * { box-sizing: border-box; }
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
      max-width: 900px;
      margin: 0 auto;
      padding: 24px;
      background: #f8f9fa;
    }
    h1 { color: #1a1a2e; margin-bottom: 8px; }
    .subtitle { color: #6c757d; margin-bottom: 32px; }
    .signature-item {
      background: white;
      border: 1px solid #e9ecef;
      border-radius: 10px;
      margin-bottom: 20px;
      overflow: hidden;
    }
    .signature-header {
      padding: 12px 16px;
      background: #f8f9fa;
      border-bottom: 1px solid #e9ecef;
    }
    .signature-header h3 {
      margin: 0;
      font-size: 14px;
      color: #1a1a2e;
    }
    .signature-content { padding: 20px; }`

// PreviewPage builds a standalone HTML document listing every signature in the
// batch, suitable for review in a browser before distribution.
func PreviewPage(ctx context.Context, records []types.ContactRecord, opts types.DesignOptions) (string, error) {
	rendered, err := RenderBatch(ctx, records, opts)
	if err != nil {
		return "", fmt.Errorf("failed to render batch: %w", err)
	}

	var items strings.Builder
	for i, html := range rendered {
		items.WriteString(fmt.Sprintf(`      <div class="signature-item">
        <div class="signature-header">
          <h3>%s</h3>
        </div>
        <div class="signature-content" id="sig-%d">
%s
        </div>
      </div>
`, rendering.EscapeHTML(records[i].Name), i, html))
	}

	page := fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Email Signatures Preview</title>
  <style>
%s
  </style>
</head>
<body>
  <h1>Email Signatures</h1>
  <p class="subtitle">%d signature(s) in this batch</p>
%s</body>
</html>
`, previewStyles, len(records), items.String())

	return page, nil
}
