package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/torqueware/assist/internal/core/domain"
	"github.com/torqueware/assist/internal/core/ports/driven"
	"github.com/torqueware/assist/internal/core/ports/driving"
)

// DefaultTopK is the number of chunks retrieved per question when the
// caller does not specify one.
const DefaultTopK = 5

// Retriever turns a natural-language question into the most relevant
// indexed chunks.
type Retriever interface {
	Search(ctx context.Context, query string, k int) ([]domain.RetrievedChunk, error)
}

// RetrieverService embeds queries and searches the vector index,
// building the index on first use if it is empty. Only one goroutine
// builds at a time; the rest wait and reuse the result.
type RetrieverService struct {
	indexer  driving.Indexer
	embedder driven.EmbeddingService
	index    driven.VectorIndex
	topK     int

	buildMu sync.Mutex
}

var _ Retriever = (*RetrieverService)(nil)

func NewRetrieverService(
	indexer driving.Indexer,
	embedder driven.EmbeddingService,
	index driven.VectorIndex,
	topK int,
) *RetrieverService {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &RetrieverService{
		indexer:  indexer,
		embedder: embedder,
		index:    index,
		topK:     topK,
	}
}

// Search returns the k chunks most similar to the query. A non-positive
// k falls back to the service default.
func (s *RetrieverService) Search(ctx context.Context, query string, k int) ([]domain.RetrievedChunk, error) {
	if err := s.ensureIndex(ctx); err != nil {
		return nil, err
	}
	if k <= 0 {
		k = s.topK
	}
	vector, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	return s.index.Search(ctx, vector, k)
}

// ensureIndex lazily builds the index when it holds no entries. The
// double count check under the mutex keeps late waiters from rebuilding
// an index a peer just finished.
func (s *RetrieverService) ensureIndex(ctx context.Context) error {
	if s.index.Count() > 0 {
		return nil
	}
	s.buildMu.Lock()
	defer s.buildMu.Unlock()
	if s.index.Count() > 0 {
		return nil
	}
	if err := s.indexer.Build(ctx, false); err != nil {
		return err
	}
	if s.index.Count() == 0 {
		return domain.ErrBuildFailed
	}
	return nil
}
