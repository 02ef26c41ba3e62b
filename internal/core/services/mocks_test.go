package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/torqueware/assist/internal/core/domain"
	"github.com/torqueware/assist/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockExtractor implements driven.Extractor for testing.
type mockExtractor struct {
	pages map[string][]domain.Page
	errs  map[string]error
	calls []string
}

func (m *mockExtractor) Extract(_ context.Context, path string) ([]domain.Page, error) {
	m.calls = append(m.calls, path)
	if err, ok := m.errs[path]; ok {
		return nil, err
	}
	return m.pages[path], nil
}

// mockEmbedder implements driven.EmbeddingService for testing. Each
// text embeds to a distinct vector so pairing mistakes are visible.
type mockEmbedder struct {
	embedErr   error
	batchErr   error
	batchCalls [][]string
}

func (m *mockEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if m.embedErr != nil {
		return nil, m.embedErr
	}
	return []float32{float32(len(text)), 1}, nil
}

func (m *mockEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	m.batchCalls = append(m.batchCalls, texts)
	if m.batchErr != nil {
		return nil, m.batchErr
	}
	result := make([][]float32, len(texts))
	for i, t := range texts {
		result[i] = []float32{float32(len(t)), float32(i)}
	}
	return result, nil
}

func (m *mockEmbedder) Dimensions() int { return 2 }

func (m *mockEmbedder) ModelName() string { return "mock-embed" }

// mockIndex implements driven.VectorIndex in memory for testing.
type mockIndex struct {
	mu        sync.Mutex
	chunks    []domain.Chunk
	addErr    error
	searchErr error
	resetErr  error
	resets    int
	searchKs  []int
}

func (m *mockIndex) Add(_ context.Context, chunks []domain.Chunk) error {
	if m.addErr != nil {
		return m.addErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chunks = append(m.chunks, chunks...)
	return nil
}

func (m *mockIndex) Search(_ context.Context, _ []float32, k int) ([]domain.RetrievedChunk, error) {
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.searchKs = append(m.searchKs, k)
	if k > len(m.chunks) {
		k = len(m.chunks)
	}
	result := make([]domain.RetrievedChunk, 0, k)
	for _, c := range m.chunks[:k] {
		result = append(result, domain.RetrievedChunk{
			Text: c.Text, File: c.File, Page: c.Page, Score: 1,
		})
	}
	return result, nil
}

func (m *mockIndex) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.chunks)
}

func (m *mockIndex) Reset(_ context.Context) error {
	if m.resetErr != nil {
		return m.resetErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resets++
	m.chunks = nil
	return nil
}

func (m *mockIndex) Close() error { return nil }

// mockIndexer implements driving.Indexer for testing.
type mockIndexer struct {
	mu       sync.Mutex
	buildErr error
	builds   int
	forces   []bool
	onBuild  func(ctx context.Context) error
}

func (m *mockIndexer) Build(ctx context.Context, force bool) error {
	m.mu.Lock()
	m.builds++
	m.forces = append(m.forces, force)
	m.mu.Unlock()
	if m.buildErr != nil {
		return m.buildErr
	}
	if m.onBuild != nil {
		return m.onBuild(ctx)
	}
	return nil
}

// mockLLM implements driven.LLMService for testing, replaying a
// scripted result and recording what it was asked.
type mockLLM struct {
	result   *driven.ChatResult
	err      error
	messages []driven.ChatMessage
	tools    []driven.Tool
	opts     driven.ChatOptions
}

func (m *mockLLM) Chat(_ context.Context, messages []driven.ChatMessage, tools []driven.Tool, opts driven.ChatOptions) (*driven.ChatResult, error) {
	m.messages = messages
	m.tools = tools
	m.opts = opts
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func (m *mockLLM) ModelName() string { return "mock-llm" }

// mockTracker implements driven.TicketTracker for testing.
type mockTracker struct {
	tickets   []domain.Ticket
	createErr error
	listErr   error
	closeErr  error
	created   []domain.TicketRequest
	closed    []int
	listLimit int
}

func (m *mockTracker) Create(_ context.Context, req domain.TicketRequest) (*domain.Ticket, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.created = append(m.created, req)
	id := len(m.created)
	return &domain.Ticket{
		ID:    id,
		Title: req.Summary,
		URL:   fmt.Sprintf("https://example.com/issues/%d", id),
		State: domain.TicketStateOpen,
	}, nil
}

func (m *mockTracker) List(_ context.Context, limit int) ([]domain.Ticket, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	m.listLimit = limit
	if limit > len(m.tickets) {
		limit = len(m.tickets)
	}
	return m.tickets[:limit], nil
}

func (m *mockTracker) Close(_ context.Context, id int) error {
	if m.closeErr != nil {
		return m.closeErr
	}
	m.closed = append(m.closed, id)
	return nil
}

// mockRetriever implements Retriever for testing the assistant without
// a real index.
type mockRetriever struct {
	chunks []domain.RetrievedChunk
	err    error
	query  string
	k      int
}

func (m *mockRetriever) Search(_ context.Context, query string, k int) ([]domain.RetrievedChunk, error) {
	m.query = query
	m.k = k
	if m.err != nil {
		return nil, m.err
	}
	return m.chunks, nil
}
