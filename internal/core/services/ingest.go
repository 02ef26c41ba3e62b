package services

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/torqueware/assist/internal/core/domain"
	"github.com/torqueware/assist/internal/core/ports/driven"
	"github.com/torqueware/assist/internal/core/ports/driving"
	"github.com/torqueware/assist/internal/logger"
	"github.com/torqueware/assist/internal/splitter"
)

// embedBatchSize bounds how many chunk texts are sent to the
// embedding API per request.
const embedBatchSize = 64

// IngestService builds the vector index from a directory of PDF
// documents: extract pages, split them into overlapping chunks,
// embed the chunks and add them to the index.
type IngestService struct {
	extractor driven.Extractor
	embedder  driven.EmbeddingService
	index     driven.VectorIndex
	splitter  *splitter.Splitter
	corpusDir string
}

var _ driving.Indexer = (*IngestService)(nil)

func NewIngestService(
	extractor driven.Extractor,
	embedder driven.EmbeddingService,
	index driven.VectorIndex,
	split *splitter.Splitter,
	corpusDir string,
) *IngestService {
	if split == nil {
		split = splitter.New()
	}
	return &IngestService{
		extractor: extractor,
		embedder:  embedder,
		index:     index,
		splitter:  split,
		corpusDir: corpusDir,
	}
}

// Build populates the vector index from the corpus directory. When the
// index already holds documents and force is false, Build is a no-op.
// With force set, the index is cleared and rebuilt from scratch.
func (s *IngestService) Build(ctx context.Context, force bool) error {
	count := s.index.Count()
	if count > 0 && !force {
		logger.Debug("index already built (%d chunks), skipping", count)
		return nil
	}
	if force && count > 0 {
		if err := s.index.Reset(ctx); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrBuildFailed, err)
		}
	}

	paths, err := filepath.Glob(filepath.Join(s.corpusDir, "*.pdf"))
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrBuildFailed, err)
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		return domain.ErrEmptyCorpus
	}

	var chunks []domain.Chunk
	for _, path := range paths {
		pages, err := s.extractor.Extract(ctx, path)
		if err != nil {
			// A single unreadable document must not abort the build.
			logger.Warn("skipping %s: %v", filepath.Base(path), err)
			continue
		}
		chunks = append(chunks, s.chunkPages(pages)...)
	}
	if len(chunks) == 0 {
		return domain.ErrEmptyCorpus
	}

	if err := s.embedChunks(ctx, chunks); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrBuildFailed, err)
	}
	if err := s.index.Add(ctx, chunks); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrBuildFailed, err)
	}
	logger.Info("indexed %d chunks from %d documents", len(chunks), len(paths))
	return nil
}

// chunkPages splits every page into windows, carrying the source file
// and page number onto each resulting chunk.
func (s *IngestService) chunkPages(pages []domain.Page) []domain.Chunk {
	var chunks []domain.Chunk
	for _, page := range pages {
		for _, text := range s.splitter.Split(page.Text) {
			chunks = append(chunks, domain.Chunk{
				Text: text,
				File: page.File,
				Page: page.Number,
			})
		}
	}
	return chunks
}

func (s *IngestService) embedChunks(ctx context.Context, chunks []domain.Chunk) error {
	for start := 0; start < len(chunks); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		texts := make([]string, 0, end-start)
		for _, c := range chunks[start:end] {
			texts = append(texts, c.Text)
		}
		vectors, err := s.embedder.EmbedBatch(ctx, texts)
		if err != nil {
			return err
		}
		if len(vectors) != len(texts) {
			return fmt.Errorf("embedding count mismatch: got %d, want %d", len(vectors), len(texts))
		}
		for i := range vectors {
			chunks[start+i].Embedding = vectors[i]
		}
	}
	return nil
}
