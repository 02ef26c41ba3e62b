package driven

import (
	"context"

	"github.com/torqueware/assist/internal/core/domain"
)

// Extractor reads a source document and yields per-page text.
type Extractor interface {
	// Extract returns the document's pages in document order, numbered
	// 1-based. Pages whose text is empty or whitespace-only are dropped;
	// they add no retrievable signal. Returns an error wrapping
	// domain.ErrExtraction if the file cannot be opened or parsed.
	Extract(ctx context.Context, path string) ([]domain.Page, error)
}
