package chromem

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/torqueware/assist/internal/core/domain"
)

// unitVec returns a crude unit vector pointing along one axis, good
// enough for deterministic cosine similarity in tests.
func unitVec(axis int) []float32 {
	v := make([]float32, 4)
	v[axis] = 1
	return v
}

func testChunks() []domain.Chunk {
	return []domain.Chunk{
		{Text: "engine oil capacity is 4.4 quarts", File: "2023-toyota-corolla-cross.pdf", Page: 412, Embedding: unitVec(0)},
		{Text: "tire pressure should be 33 psi", File: "2023-toyota-corolla-cross.pdf", Page: 388, Embedding: unitVec(1)},
		{Text: "hybrid battery warranty coverage", File: "2023-toyota-corolla-hybrid.pdf", Page: 12, Embedding: unitVec(2)},
	}
}

func TestOpen_EmptyIndex(t *testing.T) {
	ix, err := Open(t.TempDir())
	require.NoError(t, err)
	defer ix.Close()

	assert.Equal(t, 0, ix.Count())
}

func TestAdd_ThenSelfRetrieval(t *testing.T) {
	ix, err := Open(t.TempDir())
	require.NoError(t, err)
	defer ix.Close()

	ctx := context.Background()
	require.NoError(t, ix.Add(ctx, testChunks()))
	assert.Equal(t, 3, ix.Count())

	// Querying with an indexed chunk's own vector must return that chunk first.
	hits, err := ix.Search(ctx, unitVec(1), 1)
	require.NoError(t, err)
	require.Len(t, hits, 1)

	assert.Equal(t, "tire pressure should be 33 psi", hits[0].Text)
	assert.Equal(t, "2023-toyota-corolla-cross.pdf", hits[0].File)
	assert.Equal(t, 388, hits[0].Page)
	assert.InDelta(t, 1.0, hits[0].Score, 0.001)
}

func TestSearch_ClampsToIndexSize(t *testing.T) {
	ix, err := Open(t.TempDir())
	require.NoError(t, err)
	defer ix.Close()

	ctx := context.Background()
	require.NoError(t, ix.Add(ctx, testChunks()))

	hits, err := ix.Search(ctx, unitVec(0), 10)
	require.NoError(t, err)
	assert.Len(t, hits, 3)
}

func TestSearch_EmptyIndex(t *testing.T) {
	ix, err := Open(t.TempDir())
	require.NoError(t, err)
	defer ix.Close()

	hits, err := ix.Search(context.Background(), unitVec(0), 5)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestSearch_OrderedByDescendingSimilarity(t *testing.T) {
	ix, err := Open(t.TempDir())
	require.NoError(t, err)
	defer ix.Close()

	ctx := context.Background()
	require.NoError(t, ix.Add(ctx, testChunks()))

	hits, err := ix.Search(ctx, []float32{0.9, 0.1, 0, 0}, 3)
	require.NoError(t, err)
	require.Len(t, hits, 3)

	for i := 1; i < len(hits); i++ {
		assert.GreaterOrEqual(t, hits[i-1].Score, hits[i].Score)
	}
	assert.Equal(t, "engine oil capacity is 4.4 quarts", hits[0].Text)
}

func TestAdd_RejectsChunkWithoutEmbedding(t *testing.T) {
	ix, err := Open(t.TempDir())
	require.NoError(t, err)
	defer ix.Close()

	err = ix.Add(context.Background(), []domain.Chunk{{Text: "no vector"}})
	require.Error(t, err)
}

func TestOpen_ReloadsPersistedEntries(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	ix, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, ix.Add(ctx, testChunks()))
	require.NoError(t, ix.Close())

	reopened, err := Open(dir)
	require.NoError(t, err)
	defer reopened.Close()

	assert.Equal(t, 3, reopened.Count())

	hits, err := reopened.Search(ctx, unitVec(2), 1)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "hybrid battery warranty coverage", hits[0].Text)
}

func TestReset_DiscardsEntries(t *testing.T) {
	ix, err := Open(t.TempDir())
	require.NoError(t, err)
	defer ix.Close()

	ctx := context.Background()
	require.NoError(t, ix.Add(ctx, testChunks()))
	require.Equal(t, 3, ix.Count())

	require.NoError(t, ix.Reset(ctx))
	assert.Equal(t, 0, ix.Count())
}
