// Package pdf provides a document extractor for PDF files.
package pdf

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/torqueware/assist/internal/core/domain"
	"github.com/torqueware/assist/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor reads per-page plain text from PDF documents.
type Extractor struct{}

// New creates a new PDF extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract returns the document's non-empty pages in order, numbered
// 1-based and stamped with the source file's base name.
func (e *Extractor) Extract(ctx context.Context, path string) ([]domain.Page, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", domain.ErrExtraction, path, err)
	}
	defer f.Close()

	file := filepath.Base(path)
	total := reader.NumPage()
	pages := make([]domain.Page, 0, total)

	for num := 1; num <= total; num++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		page := reader.Page(num)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("%w: page %d of %s: %v", domain.ErrExtraction, num, file, err)
		}

		// Empty pages add no retrievable signal.
		if strings.TrimSpace(text) == "" {
			continue
		}

		pages = append(pages, domain.Page{
			Text:   text,
			Number: num,
			File:   file,
		})
	}

	return pages, nil
}
