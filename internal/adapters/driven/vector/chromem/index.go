// Package chromem provides a persisted vector index backed by chromem-go.
package chromem

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/philippgille/chromem-go"

	"github.com/torqueware/assist/internal/core/domain"
	"github.com/torqueware/assist/internal/core/ports/driven"
)

// Ensure Index implements the interface.
var _ driven.VectorIndex = (*Index)(nil)

// collectionName is the single collection holding the corpus.
const collectionName = "support-docs"

// Metadata keys stored per chunk.
const (
	metaFile = "file"
	metaPage = "page"
)

// Index is a persisted similarity index over embedded chunks.
// The on-disk bundle under dir is treated as opaque; entries present
// after opening mean the index is already built.
type Index struct {
	db         *chromem.DB
	collection *chromem.Collection
	dir        string
}

// Open loads (or creates) the persisted index at dir.
func Open(dir string) (*Index, error) {
	db, err := chromem.NewPersistentDB(dir, false)
	if err != nil {
		return nil, fmt.Errorf("open vector index: %w", err)
	}

	collection, err := db.GetOrCreateCollection(collectionName, nil, rejectEmbeddingFunc)
	if err != nil {
		return nil, fmt.Errorf("open collection: %w", err)
	}

	return &Index{
		db:         db,
		collection: collection,
		dir:        dir,
	}, nil
}

// rejectEmbeddingFunc guards against the library computing embeddings
// itself; vectors always arrive precomputed from the embedding service.
func rejectEmbeddingFunc(context.Context, string) ([]float32, error) {
	return nil, errors.New("chromem: embeddings must be precomputed")
}

// Add inserts chunks with their embeddings and persists them.
func (ix *Index) Add(ctx context.Context, chunks []domain.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	docs := make([]chromem.Document, len(chunks))
	for i, chunk := range chunks {
		if len(chunk.Embedding) == 0 {
			return fmt.Errorf("chunk %d of %s page %d has no embedding", i, chunk.File, chunk.Page)
		}

		id := chunk.ID
		if id == "" {
			id = uuid.New().String()
		}

		docs[i] = chromem.Document{
			ID:        id,
			Content:   chunk.Text,
			Embedding: chunk.Embedding,
			Metadata: map[string]string{
				metaFile: chunk.File,
				metaPage: strconv.Itoa(chunk.Page),
			},
		}
	}

	if err := ix.collection.AddDocuments(ctx, docs, 1); err != nil {
		return fmt.Errorf("add documents: %w", err)
	}

	return nil
}

// Search returns up to k nearest chunks by descending similarity.
// With fewer than k entries it returns what exists, no padding.
func (ix *Index) Search(ctx context.Context, query []float32, k int) ([]domain.RetrievedChunk, error) {
	if k > ix.collection.Count() {
		k = ix.collection.Count()
	}
	if k <= 0 {
		return nil, nil
	}

	results, err := ix.collection.QueryEmbedding(ctx, query, k, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("query index: %w", err)
	}

	hits := make([]domain.RetrievedChunk, len(results))
	for i, res := range results {
		page, _ := strconv.Atoi(res.Metadata[metaPage])
		hits[i] = domain.RetrievedChunk{
			Text:  res.Content,
			File:  res.Metadata[metaFile],
			Page:  page,
			Score: float64(res.Similarity),
		}
	}

	return hits, nil
}

// Count returns the number of persisted entries.
func (ix *Index) Count() int {
	return ix.collection.Count()
}

// Reset discards all persisted entries so a rebuild starts clean.
func (ix *Index) Reset(_ context.Context) error {
	if err := ix.db.DeleteCollection(collectionName); err != nil {
		return fmt.Errorf("delete collection: %w", err)
	}

	collection, err := ix.db.GetOrCreateCollection(collectionName, nil, rejectEmbeddingFunc)
	if err != nil {
		return fmt.Errorf("recreate collection: %w", err)
	}
	ix.collection = collection

	return nil
}

// Close releases resources. The persisted bundle stays on disk.
func (ix *Index) Close() error {
	return nil
}
